package repositories

import (
	"fmt"

	"fitlink/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMChallengeRepository is a GORM implementation of ChallengeRepository.
// Participants are stored as a JSON column via the gorm serializer.
type GORMChallengeRepository struct {
	db *gorm.DB
}

// NewGORMChallengeRepository creates a new instance of GORMChallengeRepository.
func NewGORMChallengeRepository(db *gorm.DB) *GORMChallengeRepository {
	return &GORMChallengeRepository{
		db: db,
	}
}

// Create creates a new challenge in the database.
func (r *GORMChallengeRepository) Create(challenge *models.Challenge) error {
	if challenge.ID == "" {
		challenge.ID = uuid.New().String()
	}
	if err := r.db.Create(challenge).Error; err != nil {
		return fmt.Errorf("failed to create challenge: %w", err)
	}
	return nil
}

// GetByID retrieves a single challenge by its ID from the database.
func (r *GORMChallengeRepository) GetByID(id string) (*models.Challenge, error) {
	var challenge models.Challenge
	if err := r.db.First(&challenge, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("challenge with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get challenge by ID %s: %w", id, err)
	}
	return &challenge, nil
}

// GetAll retrieves all challenges from the database in id order.
func (r *GORMChallengeRepository) GetAll() ([]models.Challenge, error) {
	var challenges []models.Challenge
	if err := r.db.Order("id").Find(&challenges).Error; err != nil {
		return nil, fmt.Errorf("failed to get all challenges: %w", err)
	}
	return challenges, nil
}

// Update updates an existing challenge in the database.
func (r *GORMChallengeRepository) Update(challenge *models.Challenge) error {
	res := r.db.Save(challenge)
	if res.Error != nil {
		return fmt.Errorf("failed to update challenge: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("challenge with ID %s not found for update", challenge.ID)
	}
	return nil
}

// Delete deletes a challenge by its ID from the database.
func (r *GORMChallengeRepository) Delete(id string) error {
	res := r.db.Delete(&models.Challenge{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete challenge: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("challenge with ID %s not found for deletion", id)
	}
	return nil
}
