package repositories

import (
	"fmt"
	"time"

	"fitlink/internal/models"
	"fitlink/pkg/memstore"

	"github.com/google/uuid"
)

// MemoryActivityRepository is an in-memory implementation of ActivityRepository.
type MemoryActivityRepository struct {
	store *memstore.Store[models.Activity]
}

// NewMemoryActivityRepository creates a new instance of MemoryActivityRepository.
func NewMemoryActivityRepository() *MemoryActivityRepository {
	return &MemoryActivityRepository{
		store: memstore.New[models.Activity](),
	}
}

// Create adds a new activity, assigning an ID and creation time when unset.
func (r *MemoryActivityRepository) Create(activity *models.Activity) error {
	if activity.ID == "" {
		activity.ID = uuid.New().String()
	}
	if activity.CreatedAt.IsZero() {
		activity.CreatedAt = time.Now()
	}
	r.store.Put(activity.ID, *activity)
	return nil
}

// GetByID returns an activity by its ID.
func (r *MemoryActivityRepository) GetByID(id string) (*models.Activity, error) {
	activity, ok := r.store.Get(id)
	if !ok {
		return nil, fmt.Errorf("activity with ID %s not found", id)
	}
	return &activity, nil
}

// GetAll returns all activities in id order.
func (r *MemoryActivityRepository) GetAll() ([]models.Activity, error) {
	return r.store.Values(), nil
}

// Delete removes an activity by its ID.
func (r *MemoryActivityRepository) Delete(id string) error {
	if _, ok := r.store.Get(id); !ok {
		return fmt.Errorf("activity with ID %s not found for deletion", id)
	}
	r.store.Delete(id)
	return nil
}
