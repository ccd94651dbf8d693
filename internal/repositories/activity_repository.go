package repositories

import "fitlink/internal/models"

// ActivityRepository defines the interface for activity data access.
// Activities are immutable, so there is no Update.
type ActivityRepository interface {
	Create(activity *models.Activity) error
	GetByID(id string) (*models.Activity, error)
	GetAll() ([]models.Activity, error)
	Delete(id string) error
}
