package services_test

import (
	"testing"

	"fitlink/internal/repositories"
	"fitlink/internal/services"

	"github.com/stretchr/testify/assert"
)

func newChallengeFixture(t *testing.T) (*services.ChallengeService, *services.UserService) {
	t.Helper()
	userRepo := repositories.NewMemoryUserRepository()
	challengeRepo := repositories.NewMemoryChallengeRepository()
	userService := services.NewUserService(userRepo)
	challengeService := services.NewChallengeService(challengeRepo, userRepo, nil)
	return challengeService, userService
}

func TestChallengeService_Create(t *testing.T) {
	challengeService, userService := newChallengeFixture(t)
	alice, _ := userService.Register("Alice", "a@x.com", "password123")

	challenge, err := challengeService.Create(alice.ID, "August Miles", "Most minutes wins")
	assert.NoError(t, err)
	assert.NotEmpty(t, challenge.ID)
	assert.Equal(t, alice.ID, challenge.CreatorID)
	// The creator does not participate automatically.
	assert.Empty(t, challenge.Participants)

	_, err = challengeService.Create(alice.ID, "", "no title")
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	_, err = challengeService.Create("missing-user", "Ghost Challenge", "")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestChallengeService_Join(t *testing.T) {
	challengeService, userService := newChallengeFixture(t)
	alice, _ := userService.Register("Alice", "a@x.com", "password123")
	bob, _ := userService.Register("Bob", "b@x.com", "password123")

	challenge, err := challengeService.Create(alice.ID, "August Miles", "")
	assert.NoError(t, err)

	// First join succeeds and appends the participant.
	joined, err := challengeService.Join(challenge.ID, bob.ID)
	assert.NoError(t, err)
	assert.Equal(t, []string{bob.ID}, joined.Participants)

	// A second join by the same user is an error, not a no-op.
	_, err = challengeService.Join(challenge.ID, bob.ID)
	assert.ErrorIs(t, err, services.ErrAlreadyJoined)
	current, _ := challengeService.List(services.ChallengeFilter{})
	assert.Len(t, current[0].Participants, 1)

	// The creator joins like anyone else, preserving join order.
	joined, err = challengeService.Join(challenge.ID, alice.ID)
	assert.NoError(t, err)
	assert.Equal(t, []string{bob.ID, alice.ID}, joined.Participants)

	_, err = challengeService.Join("missing-challenge", bob.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = challengeService.Join(challenge.ID, "missing-user")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestChallengeService_List(t *testing.T) {
	challengeService, userService := newChallengeFixture(t)
	alice, _ := userService.Register("Alice", "a@x.com", "password123")
	bob, _ := userService.Register("Bob", "b@x.com", "password123")

	challengeService.Create(alice.ID, "August Miles", "")
	challengeService.Create(alice.ID, "Swim Week", "")
	challengeService.Create(bob.ID, "august miles redux", "")

	all, err := challengeService.List(services.ChallengeFilter{})
	assert.NoError(t, err)
	assert.Len(t, all, 3)

	byAlice, err := challengeService.List(services.ChallengeFilter{CreatorID: alice.ID})
	assert.NoError(t, err)
	assert.Len(t, byAlice, 2)

	// Title matching is a case-sensitive substring.
	titled, err := challengeService.List(services.ChallengeFilter{TitleContains: "August"})
	assert.NoError(t, err)
	assert.Len(t, titled, 1)
	assert.Equal(t, "August Miles", titled[0].Title)
}

func TestChallengeService_Remove(t *testing.T) {
	challengeService, userService := newChallengeFixture(t)
	alice, _ := userService.Register("Alice", "a@x.com", "password123")
	challenge, _ := challengeService.Create(alice.ID, "August Miles", "")

	assert.NoError(t, challengeService.Remove(challenge.ID))
	assert.ErrorIs(t, challengeService.Remove(challenge.ID), services.ErrNotFound)
}
