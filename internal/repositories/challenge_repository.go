package repositories

import "fitlink/internal/models"

// ChallengeRepository defines the interface for challenge data access.
// Update persists participant membership changes.
type ChallengeRepository interface {
	Create(challenge *models.Challenge) error
	GetByID(id string) (*models.Challenge, error)
	GetAll() ([]models.Challenge, error)
	Update(challenge *models.Challenge) error
	Delete(id string) error
}
