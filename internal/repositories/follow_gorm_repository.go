package repositories

import (
	"fmt"

	"fitlink/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMFollowRepository is a GORM implementation of FollowRepository.
type GORMFollowRepository struct {
	db *gorm.DB
}

// NewGORMFollowRepository creates a new instance of GORMFollowRepository.
func NewGORMFollowRepository(db *gorm.DB) *GORMFollowRepository {
	return &GORMFollowRepository{
		db: db,
	}
}

// Create creates a new follow edge in the database.
func (r *GORMFollowRepository) Create(follow *models.Follow) error {
	if follow.ID == "" {
		follow.ID = uuid.New().String()
	}
	if err := r.db.Create(follow).Error; err != nil {
		return fmt.Errorf("failed to create follow: %w", err)
	}
	return nil
}

// GetByID retrieves a single follow edge by its ID from the database.
func (r *GORMFollowRepository) GetByID(id string) (*models.Follow, error) {
	var follow models.Follow
	if err := r.db.First(&follow, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("follow with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get follow by ID %s: %w", id, err)
	}
	return &follow, nil
}

// GetAll retrieves all follow edges from the database in id order.
func (r *GORMFollowRepository) GetAll() ([]models.Follow, error) {
	var follows []models.Follow
	if err := r.db.Order("id").Find(&follows).Error; err != nil {
		return nil, fmt.Errorf("failed to get all follows: %w", err)
	}
	return follows, nil
}

// Delete deletes a follow edge by its ID from the database.
func (r *GORMFollowRepository) Delete(id string) error {
	res := r.db.Delete(&models.Follow{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete follow: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("follow with ID %s not found for deletion", id)
	}
	return nil
}
