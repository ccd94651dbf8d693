package repositories

import (
	"fmt"

	"fitlink/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMActivityRepository is a GORM implementation of ActivityRepository.
type GORMActivityRepository struct {
	db *gorm.DB
}

// NewGORMActivityRepository creates a new instance of GORMActivityRepository.
func NewGORMActivityRepository(db *gorm.DB) *GORMActivityRepository {
	return &GORMActivityRepository{
		db: db,
	}
}

// Create creates a new activity in the database.
func (r *GORMActivityRepository) Create(activity *models.Activity) error {
	if activity.ID == "" {
		activity.ID = uuid.New().String()
	}
	if err := r.db.Create(activity).Error; err != nil {
		return fmt.Errorf("failed to create activity: %w", err)
	}
	return nil
}

// GetByID retrieves a single activity by its ID from the database.
func (r *GORMActivityRepository) GetByID(id string) (*models.Activity, error) {
	var activity models.Activity
	if err := r.db.First(&activity, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("activity with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get activity by ID %s: %w", id, err)
	}
	return &activity, nil
}

// GetAll retrieves all activities from the database in id order.
func (r *GORMActivityRepository) GetAll() ([]models.Activity, error) {
	var activities []models.Activity
	if err := r.db.Order("id").Find(&activities).Error; err != nil {
		return nil, fmt.Errorf("failed to get all activities: %w", err)
	}
	return activities, nil
}

// Delete deletes an activity by its ID from the database.
func (r *GORMActivityRepository) Delete(id string) error {
	res := r.db.Delete(&models.Activity{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete activity: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("activity with ID %s not found for deletion", id)
	}
	return nil
}
