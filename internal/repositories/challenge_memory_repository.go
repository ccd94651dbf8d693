package repositories

import (
	"fmt"
	"time"

	"fitlink/internal/models"
	"fitlink/pkg/memstore"

	"github.com/google/uuid"
)

// MemoryChallengeRepository is an in-memory implementation of ChallengeRepository.
type MemoryChallengeRepository struct {
	store *memstore.Store[models.Challenge]
}

// NewMemoryChallengeRepository creates a new instance of MemoryChallengeRepository.
func NewMemoryChallengeRepository() *MemoryChallengeRepository {
	return &MemoryChallengeRepository{
		store: memstore.New[models.Challenge](),
	}
}

// Create adds a new challenge, assigning an ID and creation time when unset.
func (r *MemoryChallengeRepository) Create(challenge *models.Challenge) error {
	if challenge.ID == "" {
		challenge.ID = uuid.New().String()
	}
	if challenge.CreatedAt.IsZero() {
		challenge.CreatedAt = time.Now()
	}
	r.store.Put(challenge.ID, *challenge)
	return nil
}

// GetByID returns a challenge by its ID.
func (r *MemoryChallengeRepository) GetByID(id string) (*models.Challenge, error) {
	challenge, ok := r.store.Get(id)
	if !ok {
		return nil, fmt.Errorf("challenge with ID %s not found", id)
	}
	return &challenge, nil
}

// GetAll returns all challenges in id order.
func (r *MemoryChallengeRepository) GetAll() ([]models.Challenge, error) {
	return r.store.Values(), nil
}

// Update overwrites an existing challenge.
func (r *MemoryChallengeRepository) Update(challenge *models.Challenge) error {
	if _, ok := r.store.Get(challenge.ID); !ok {
		return fmt.Errorf("challenge with ID %s not found for update", challenge.ID)
	}
	r.store.Put(challenge.ID, *challenge)
	return nil
}

// Delete removes a challenge by its ID.
func (r *MemoryChallengeRepository) Delete(id string) error {
	if _, ok := r.store.Get(id); !ok {
		return fmt.Errorf("challenge with ID %s not found for deletion", id)
	}
	r.store.Delete(id)
	return nil
}
