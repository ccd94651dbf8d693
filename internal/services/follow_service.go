package services

import (
	"fmt"
	"sync"

	"fitlink/internal/models"
	"fitlink/internal/repositories"
)

// FollowService handles business logic for the follow graph: directed
// edges, no self-loops, no duplicate edges in the same direction.
type FollowService struct {
	followRepo repositories.FollowRepository
	userRepo   repositories.UserRepository
	mu         sync.Mutex
}

// NewFollowService creates a new FollowService.
func NewFollowService(followRepo repositories.FollowRepository, userRepo repositories.UserRepository) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow creates a directed edge from follower to following. Check order
// matters for error precedence: both users must exist, then self-follows
// are rejected, then the duplicate-edge scan runs. The reverse edge is an
// independent record.
func (s *FollowService) Follow(followerID, followingID string) (*models.Follow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.userRepo.GetByID(followerID); err != nil {
		return nil, fmt.Errorf("%w: follower %s", ErrNotFound, followerID)
	}
	if _, err := s.userRepo.GetByID(followingID); err != nil {
		return nil, fmt.Errorf("%w: user to follow %s", ErrNotFound, followingID)
	}
	if followerID == followingID {
		return nil, fmt.Errorf("%w: user %s", ErrSelfFollow, followerID)
	}

	follows, err := s.followRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to scan follows: %w", err)
	}
	for _, f := range follows {
		if f.FollowerID == followerID && f.FollowingID == followingID {
			return nil, fmt.Errorf("%w: %s already follows %s", ErrAlreadyFollowing, followerID, followingID)
		}
	}

	follow := &models.Follow{
		FollowerID:  followerID,
		FollowingID: followingID,
	}
	if err := s.followRepo.Create(follow); err != nil {
		return nil, fmt.Errorf("failed to create follow: %w", err)
	}
	return follow, nil
}

// Unfollow deletes a follow edge by its ID.
func (s *FollowService) Unfollow(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.followRepo.GetByID(id); err != nil {
		return fmt.Errorf("%w: follow %s", ErrNotFound, id)
	}
	if err := s.followRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to remove follow %s: %w", id, err)
	}
	return nil
}

// FollowersOf returns every follow edge pointing at the user.
func (s *FollowService) FollowersOf(userID string) ([]models.Follow, error) {
	follows, err := s.followRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list follows: %w", err)
	}

	followers := make([]models.Follow, 0)
	for _, f := range follows {
		if f.FollowingID == userID {
			followers = append(followers, f)
		}
	}
	return followers, nil
}
