package services_test

import (
	"testing"
	"time"

	"fitlink/internal/models"
	"fitlink/internal/repositories"
	"fitlink/internal/services"

	"github.com/stretchr/testify/assert"
)

// seedRankedUsers creates users with the given points in creation order.
func seedRankedUsers(t *testing.T, repo repositories.UserRepository, points []int) []models.User {
	t.Helper()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	users := make([]models.User, 0, len(points))
	for i, p := range points {
		user := models.User{
			Name:      string(rune('A' + i)),
			Email:     string(rune('a'+i)) + "@x.com",
			Points:    p,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}
		if err := repo.Create(&user); err != nil {
			t.Fatalf("failed to seed user: %v", err)
		}
		users = append(users, user)
	}
	return users
}

func TestLeaderboardService_Rank(t *testing.T) {
	userRepo := repositories.NewMemoryUserRepository()
	leaderboard := services.NewLeaderboardService(userRepo)

	seeded := seedRankedUsers(t, userRepo, []int{50, 30, 30, 10})

	// Top three by points; the two 30-point users keep creation order.
	ranked, err := leaderboard.Rank(3, 1, 10)
	assert.NoError(t, err)
	assert.Len(t, ranked, 3)
	assert.Equal(t, seeded[0].ID, ranked[0].ID)
	assert.Equal(t, seeded[1].ID, ranked[1].ID)
	assert.Equal(t, seeded[2].ID, ranked[2].ID)

	// Pagination windows the truncated board: page 2 of a size-3 board with
	// limit 10 is past the end.
	ranked, err = leaderboard.Rank(3, 2, 10)
	assert.NoError(t, err)
	assert.Empty(t, ranked)
}

func TestLeaderboardService_RankWindow(t *testing.T) {
	userRepo := repositories.NewMemoryUserRepository()
	leaderboard := services.NewLeaderboardService(userRepo)

	seeded := seedRankedUsers(t, userRepo, []int{50, 30, 30, 10})

	// size truncates before the window applies: page 2 with limit 2 over a
	// size-3 board holds only the third entrant.
	ranked, err := leaderboard.Rank(3, 2, 2)
	assert.NoError(t, err)
	assert.Len(t, ranked, 1)
	assert.Equal(t, seeded[2].ID, ranked[0].ID)

	// A size larger than the directory returns everyone.
	ranked, err = leaderboard.Rank(100, 1, 10)
	assert.NoError(t, err)
	assert.Len(t, ranked, 4)
	assert.Equal(t, seeded[3].ID, ranked[3].ID)
}

func TestLeaderboardService_RankValidation(t *testing.T) {
	userRepo := repositories.NewMemoryUserRepository()
	leaderboard := services.NewLeaderboardService(userRepo)

	for _, params := range [][3]int{{0, 1, 10}, {10, 0, 10}, {10, 1, 0}, {-1, 1, 1}} {
		_, err := leaderboard.Rank(params[0], params[1], params[2])
		assert.ErrorIs(t, err, services.ErrInvalidInput)
	}
}

func TestLeaderboardService_RankEmpty(t *testing.T) {
	userRepo := repositories.NewMemoryUserRepository()
	leaderboard := services.NewLeaderboardService(userRepo)

	ranked, err := leaderboard.Rank(10, 1, 10)
	assert.NoError(t, err)
	assert.Empty(t, ranked)
}
