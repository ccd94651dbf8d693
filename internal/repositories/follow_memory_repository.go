package repositories

import (
	"fmt"
	"time"

	"fitlink/internal/models"
	"fitlink/pkg/memstore"

	"github.com/google/uuid"
)

// MemoryFollowRepository is an in-memory implementation of FollowRepository.
type MemoryFollowRepository struct {
	store *memstore.Store[models.Follow]
}

// NewMemoryFollowRepository creates a new instance of MemoryFollowRepository.
func NewMemoryFollowRepository() *MemoryFollowRepository {
	return &MemoryFollowRepository{
		store: memstore.New[models.Follow](),
	}
}

// Create adds a new follow edge, assigning an ID and creation time when unset.
func (r *MemoryFollowRepository) Create(follow *models.Follow) error {
	if follow.ID == "" {
		follow.ID = uuid.New().String()
	}
	if follow.CreatedAt.IsZero() {
		follow.CreatedAt = time.Now()
	}
	r.store.Put(follow.ID, *follow)
	return nil
}

// GetByID returns a follow edge by its ID.
func (r *MemoryFollowRepository) GetByID(id string) (*models.Follow, error) {
	follow, ok := r.store.Get(id)
	if !ok {
		return nil, fmt.Errorf("follow with ID %s not found", id)
	}
	return &follow, nil
}

// GetAll returns all follow edges in id order.
func (r *MemoryFollowRepository) GetAll() ([]models.Follow, error) {
	return r.store.Values(), nil
}

// Delete removes a follow edge by its ID.
func (r *MemoryFollowRepository) Delete(id string) error {
	if _, ok := r.store.Get(id); !ok {
		return fmt.Errorf("follow with ID %s not found for deletion", id)
	}
	r.store.Delete(id)
	return nil
}
