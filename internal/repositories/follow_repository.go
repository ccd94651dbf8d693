package repositories

import "fitlink/internal/models"

// FollowRepository defines the interface for follow edge data access.
type FollowRepository interface {
	Create(follow *models.Follow) error
	GetByID(id string) (*models.Follow, error)
	GetAll() ([]models.Follow, error)
	Delete(id string) error
}
