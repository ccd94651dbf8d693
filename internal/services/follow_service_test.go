package services_test

import (
	"testing"

	"fitlink/internal/repositories"
	"fitlink/internal/services"

	"github.com/stretchr/testify/assert"
)

func newFollowFixture(t *testing.T) (*services.FollowService, *services.UserService) {
	t.Helper()
	userRepo := repositories.NewMemoryUserRepository()
	followRepo := repositories.NewMemoryFollowRepository()
	return services.NewFollowService(followRepo, userRepo), services.NewUserService(userRepo)
}

func TestFollowService_Follow(t *testing.T) {
	followService, userService := newFollowFixture(t)
	alice, _ := userService.Register("Alice", "a@x.com", "password123")
	bob, _ := userService.Register("Bob", "b@x.com", "password123")

	follow, err := followService.Follow(alice.ID, bob.ID)
	assert.NoError(t, err)
	assert.Equal(t, alice.ID, follow.FollowerID)
	assert.Equal(t, bob.ID, follow.FollowingID)

	// Duplicate edge in the same direction is rejected.
	_, err = followService.Follow(alice.ID, bob.ID)
	assert.ErrorIs(t, err, services.ErrAlreadyFollowing)

	// The reverse edge is independent and valid.
	_, err = followService.Follow(bob.ID, alice.ID)
	assert.NoError(t, err)
}

func TestFollowService_SelfFollow(t *testing.T) {
	followService, userService := newFollowFixture(t)
	alice, _ := userService.Register("Alice", "a@x.com", "password123")

	_, err := followService.Follow(alice.ID, alice.ID)
	assert.ErrorIs(t, err, services.ErrSelfFollow)
}

func TestFollowService_UnknownUsers(t *testing.T) {
	followService, userService := newFollowFixture(t)
	alice, _ := userService.Register("Alice", "a@x.com", "password123")

	// Existence is checked before the self-follow rule, so an unknown id on
	// both sides reports not-found.
	_, err := followService.Follow("ghost", "ghost")
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = followService.Follow("ghost", alice.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = followService.Follow(alice.ID, "ghost")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestFollowService_FollowersOf(t *testing.T) {
	followService, userService := newFollowFixture(t)
	alice, _ := userService.Register("Alice", "a@x.com", "password123")
	bob, _ := userService.Register("Bob", "b@x.com", "password123")
	carol, _ := userService.Register("Carol", "c@x.com", "password123")

	followService.Follow(bob.ID, alice.ID)
	followService.Follow(carol.ID, alice.ID)
	followService.Follow(alice.ID, bob.ID)

	followers, err := followService.FollowersOf(alice.ID)
	assert.NoError(t, err)
	assert.Len(t, followers, 2)
	for _, f := range followers {
		assert.Equal(t, alice.ID, f.FollowingID)
	}

	followers, err = followService.FollowersOf(carol.ID)
	assert.NoError(t, err)
	assert.Empty(t, followers)
}

func TestFollowService_Unfollow(t *testing.T) {
	followService, userService := newFollowFixture(t)
	alice, _ := userService.Register("Alice", "a@x.com", "password123")
	bob, _ := userService.Register("Bob", "b@x.com", "password123")

	follow, _ := followService.Follow(alice.ID, bob.ID)
	assert.NoError(t, followService.Unfollow(follow.ID))
	assert.ErrorIs(t, followService.Unfollow(follow.ID), services.ErrNotFound)

	// After unfollowing, the edge can be recreated.
	_, err := followService.Follow(alice.ID, bob.ID)
	assert.NoError(t, err)
}
