package services

import (
	"fmt"
	"strings"
	"sync"

	"fitlink/internal/models"
	"fitlink/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// UserService handles business logic for user accounts and point balances.
// Fiber serves requests concurrently, so every check-then-act mutation
// (duplicate-email scan before create, read-modify-write accrual) runs under
// the service mutex.
type UserService struct {
	userRepo repositories.UserRepository
	mu       sync.Mutex
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// validEmail checks the email grammar the directory enforces: exactly one
// '@', non-empty local part, a domain containing a dot, and no whitespace.
func validEmail(email string) bool {
	if strings.ContainsAny(email, " \t\r\n") {
		return false
	}
	if strings.Count(email, "@") != 1 {
		return false
	}
	local, domain, _ := strings.Cut(email, "@")
	if local == "" || domain == "" {
		return false
	}
	return strings.Contains(domain, ".")
}

// Register creates a new user with a hashed password and zero points.
// Emails are globally unique with a case-sensitive comparison.
func (s *UserService) Register(name, email, password string) (*models.User, error) {
	if name == "" || password == "" {
		return nil, fmt.Errorf("%w: name and password are required", ErrInvalidInput)
	}
	if !validEmail(email) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, err := s.userRepo.GetByEmail(email); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateEmail, email)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
		Points:   0,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return user, nil
}

// Update overwrites the user's name and email in place. Email syntax is
// re-validated; global email uniqueness is intentionally not re-checked here
// to keep the original update semantics (see DESIGN.md).
func (s *UserService) Update(id, name, email string) (*models.User, error) {
	if !validEmail(email) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, id)
	}
	user.Name = name
	user.Email = email
	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user %s: %w", id, err)
	}
	return user, nil
}

// Remove deletes the user. Activities, follows and challenge participations
// referencing the user are left in place with a dangling id.
func (s *UserService) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.userRepo.GetByID(id); err != nil {
		return fmt.Errorf("%w: user %s", ErrNotFound, id)
	}
	if err := s.userRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to remove user %s: %w", id, err)
	}
	return nil
}

// AccruePoints adds amount to the user's point balance. This is the only
// writer of Points besides registration.
func (s *UserService) AccruePoints(id string, amount int) (*models.User, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: point amount must be positive", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, id)
	}
	user.Points += amount
	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to accrue points for user %s: %w", id, err)
	}
	return user, nil
}

// FindByEmail returns the user with the exact email, or nil when absent.
func (s *UserService) FindByEmail(email string) *models.User {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil
	}
	return user
}

// Authenticate compares the presented password against the stored bcrypt
// hash. The error never reveals whether the email or the password was wrong.
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	user := s.FindByEmail(email)
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetByID retrieves a single user by their ID.
func (s *UserService) GetByID(id string) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, id)
	}
	return user, nil
}

// GetAll retrieves all users.
func (s *UserService) GetAll() ([]models.User, error) {
	return s.userRepo.GetAll()
}
