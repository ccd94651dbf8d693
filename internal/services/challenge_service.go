package services

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"

	"fitlink/internal/models"
	"fitlink/internal/repositories"
	"fitlink/pkg/rabbitmq"
)

// ChallengeFilter narrows List results. TitleContains is a case-sensitive
// substring match; zero-value fields are pass-through.
type ChallengeFilter struct {
	CreatorID     string
	TitleContains string
}

// ChallengeService handles business logic for challenges and participant
// membership.
type ChallengeService struct {
	challengeRepo repositories.ChallengeRepository
	userRepo      repositories.UserRepository
	mqClient      *rabbitmq.Client
	mu            sync.Mutex
}

// NewChallengeService creates a new ChallengeService. mqClient may be nil,
// in which case event publication is skipped.
func NewChallengeService(challengeRepo repositories.ChallengeRepository, userRepo repositories.UserRepository, mqClient *rabbitmq.Client) *ChallengeService {
	return &ChallengeService{
		challengeRepo: challengeRepo,
		userRepo:      userRepo,
		mqClient:      mqClient,
	}
}

// Create persists a new challenge. The creator must exist but does not
// become a participant.
func (s *ChallengeService) Create(creatorID, title, description string) (*models.Challenge, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: challenge title is required", ErrInvalidInput)
	}
	if _, err := s.userRepo.GetByID(creatorID); err != nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, creatorID)
	}

	challenge := &models.Challenge{
		CreatorID:    creatorID,
		Title:        title,
		Description:  description,
		Participants: []string{},
	}
	if err := s.challengeRepo.Create(challenge); err != nil {
		return nil, fmt.Errorf("failed to create challenge: %w", err)
	}
	return challenge, nil
}

// Remove deletes a challenge by its ID.
func (s *ChallengeService) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.challengeRepo.GetByID(id); err != nil {
		return fmt.Errorf("%w: challenge %s", ErrNotFound, id)
	}
	if err := s.challengeRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to remove challenge %s: %w", id, err)
	}
	return nil
}

// Join adds the user to the challenge's participants. A second join by the
// same user is rejected, not silently ignored.
func (s *ChallengeService) Join(challengeID, userID string) (*models.Challenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	challenge, err := s.challengeRepo.GetByID(challengeID)
	if err != nil {
		return nil, fmt.Errorf("%w: challenge %s", ErrNotFound, challengeID)
	}
	if _, err := s.userRepo.GetByID(userID); err != nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, userID)
	}
	if challenge.HasParticipant(userID) {
		return nil, fmt.Errorf("%w: user %s in challenge %s", ErrAlreadyJoined, userID, challengeID)
	}

	challenge.Participants = append(challenge.Participants, userID)
	if err := s.challengeRepo.Update(challenge); err != nil {
		return nil, fmt.Errorf("failed to join challenge %s: %w", challengeID, err)
	}

	s.publishJoined(challenge, userID)
	return challenge, nil
}

// List returns challenges matching the filter.
func (s *ChallengeService) List(filter ChallengeFilter) ([]models.Challenge, error) {
	challenges, err := s.challengeRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list challenges: %w", err)
	}

	filtered := make([]models.Challenge, 0, len(challenges))
	for _, challenge := range challenges {
		if filter.CreatorID != "" && challenge.CreatorID != filter.CreatorID {
			continue
		}
		if filter.TitleContains != "" && !strings.Contains(challenge.Title, filter.TitleContains) {
			continue
		}
		filtered = append(filtered, challenge)
	}
	return filtered, nil
}

// publishJoined emits a challenge.joined event. Publication is best-effort
// and never fails the join.
func (s *ChallengeService) publishJoined(challenge *models.Challenge, userID string) {
	if s.mqClient == nil {
		return
	}
	body, err := json.Marshal(map[string]interface{}{
		"challengeID": challenge.ID,
		"userID":      userID,
		"title":       challenge.Title,
	})
	if err != nil {
		log.Printf("Failed to marshal challenge event: %v", err)
		return
	}
	if err := s.mqClient.Publish(rabbitmq.EventChallengeJoined, body); err != nil {
		log.Printf("Warning: Failed to publish challenge joined event for %s: %v", challenge.ID, err)
	}
}
