package services

import (
	"fmt"
	"sort"

	"fitlink/internal/models"
	"fitlink/internal/repositories"
)

// LeaderboardService derives a ranked, paginated view over the user
// directory.
type LeaderboardService struct {
	userRepo repositories.UserRepository
}

// NewLeaderboardService creates a new LeaderboardService.
func NewLeaderboardService(userRepo repositories.UserRepository) *LeaderboardService {
	return &LeaderboardService{
		userRepo: userRepo,
	}
}

// Rank sorts all users descending by points (ties broken by creation
// order), truncates to the top size, then applies the page/limit window
// over the truncated board. Because the window applies after truncation,
// later pages of a small board can be short or empty.
func (s *LeaderboardService) Rank(size, page, limit int) ([]models.User, error) {
	if size <= 0 || page <= 0 || limit <= 0 {
		return nil, fmt.Errorf("%w: size, page and limit must be positive", ErrInvalidInput)
	}

	users, err := s.userRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load users for leaderboard: %w", err)
	}

	ranked := make([]models.User, len(users))
	copy(ranked, users)
	// Establish creation order first, then stable-sort by points so ties
	// keep that order.
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].CreatedAt.Equal(ranked[j].CreatedAt) {
			return ranked[i].ID < ranked[j].ID
		}
		return ranked[i].CreatedAt.Before(ranked[j].CreatedAt)
	})
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Points > ranked[j].Points
	})

	if len(ranked) > size {
		ranked = ranked[:size]
	}

	offset := (page - 1) * limit
	if offset >= len(ranked) {
		return []models.User{}, nil
	}
	end := offset + limit
	if end > len(ranked) {
		end = len(ranked)
	}
	return ranked[offset:end], nil
}
