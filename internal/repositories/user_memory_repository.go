package repositories

import (
	"fmt"
	"time"

	"fitlink/internal/models"
	"fitlink/pkg/memstore"

	"github.com/google/uuid"
)

// MemoryUserRepository is an in-memory implementation of UserRepository.
type MemoryUserRepository struct {
	store *memstore.Store[models.User]
}

// NewMemoryUserRepository creates a new instance of MemoryUserRepository.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		store: memstore.New[models.User](),
	}
}

// Create adds a new user, assigning an ID and creation time when unset.
func (r *MemoryUserRepository) Create(user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	r.store.Put(user.ID, *user)
	return nil
}

// GetByID returns a user by their ID.
func (r *MemoryUserRepository) GetByID(id string) (*models.User, error) {
	user, ok := r.store.Get(id)
	if !ok {
		return nil, fmt.Errorf("user with ID %s not found", id)
	}
	return &user, nil
}

// GetByEmail returns the user with an exactly matching email. The scan is
// case-sensitive: addresses differing only by case are distinct users.
func (r *MemoryUserRepository) GetByEmail(email string) (*models.User, error) {
	for _, user := range r.store.Values() {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user with email %s not found", email)
}

// GetAll returns all users in id order.
func (r *MemoryUserRepository) GetAll() ([]models.User, error) {
	return r.store.Values(), nil
}

// Update overwrites an existing user.
func (r *MemoryUserRepository) Update(user *models.User) error {
	if _, ok := r.store.Get(user.ID); !ok {
		return fmt.Errorf("user with ID %s not found for update", user.ID)
	}
	r.store.Put(user.ID, *user)
	return nil
}

// Delete removes a user by their ID.
func (r *MemoryUserRepository) Delete(id string) error {
	if _, ok := r.store.Get(id); !ok {
		return fmt.Errorf("user with ID %s not found for deletion", id)
	}
	r.store.Delete(id)
	return nil
}
