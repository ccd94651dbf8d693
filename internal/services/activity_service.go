package services

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"fitlink/internal/models"
	"fitlink/internal/repositories"
	"fitlink/pkg/rabbitmq"
)

// UserDirectory is the slice of the user service the activity ledger needs:
// existence checks and point accrual.
type UserDirectory interface {
	GetByID(id string) (*models.User, error)
	AccruePoints(id string, amount int) (*models.User, error)
}

// ActivityFilter narrows List results. Zero-value fields are pass-through;
// From/To are inclusive bounds on the activity date.
type ActivityFilter struct {
	UserID string
	Type   string
	From   *time.Time
	To     *time.Time
}

// ActivityService handles business logic for the activity ledger. Recording
// an activity credits the user one point per minute of duration.
type ActivityService struct {
	activityRepo repositories.ActivityRepository
	users        UserDirectory
	mqClient     *rabbitmq.Client
	mu           sync.Mutex
}

// NewActivityService creates a new ActivityService. mqClient may be nil, in
// which case event publication is skipped.
func NewActivityService(activityRepo repositories.ActivityRepository, users UserDirectory, mqClient *rabbitmq.Client) *ActivityService {
	return &ActivityService{
		activityRepo: activityRepo,
		users:        users,
		mqClient:     mqClient,
	}
}

// Record validates and persists an activity, then accrues points for its
// user. All validation happens before the first write; if accrual still
// fails (the user vanished between the check and the credit) the activity
// record is rolled back so the pair applies atomically.
func (s *ActivityService) Record(userID, activityType string, duration int, date time.Time) (*models.Activity, error) {
	if activityType == "" {
		return nil, fmt.Errorf("%w: activity type is required", ErrInvalidInput)
	}
	if duration <= 0 {
		return nil, fmt.Errorf("%w: duration must be a positive number of minutes", ErrInvalidInput)
	}
	if date.IsZero() {
		return nil, fmt.Errorf("%w: activity date is required", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.users.GetByID(userID); err != nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, userID)
	}

	activity := &models.Activity{
		UserID:   userID,
		Type:     activityType,
		Duration: duration,
		Date:     date,
	}
	if err := s.activityRepo.Create(activity); err != nil {
		return nil, fmt.Errorf("failed to record activity: %w", err)
	}

	if _, err := s.users.AccruePoints(userID, duration); err != nil {
		if rollbackErr := s.activityRepo.Delete(activity.ID); rollbackErr != nil {
			log.Printf("Failed to roll back activity %s after accrual error: %v", activity.ID, rollbackErr)
		}
		return nil, fmt.Errorf("failed to accrue points for activity: %w", err)
	}

	s.publishRecorded(activity)
	return activity, nil
}

// Remove deletes an activity. Previously accrued points are kept: the point
// balance is a historical achievement counter, not a live sum of the ledger.
func (s *ActivityService) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.activityRepo.GetByID(id); err != nil {
		return fmt.Errorf("%w: activity %s", ErrNotFound, id)
	}
	if err := s.activityRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to remove activity %s: %w", id, err)
	}
	return nil
}

// List returns activities matching the filter.
func (s *ActivityService) List(filter ActivityFilter) ([]models.Activity, error) {
	activities, err := s.activityRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}

	filtered := make([]models.Activity, 0, len(activities))
	for _, activity := range activities {
		if filter.UserID != "" && activity.UserID != filter.UserID {
			continue
		}
		if filter.Type != "" && activity.Type != filter.Type {
			continue
		}
		if filter.From != nil && activity.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && activity.Date.After(*filter.To) {
			continue
		}
		filtered = append(filtered, activity)
	}
	return filtered, nil
}

// publishRecorded emits an activity.recorded event. Publication is
// best-effort and never fails the recording.
func (s *ActivityService) publishRecorded(activity *models.Activity) {
	if s.mqClient == nil {
		return
	}
	body, err := json.Marshal(map[string]interface{}{
		"activityID": activity.ID,
		"userID":     activity.UserID,
		"type":       activity.Type,
		"duration":   activity.Duration,
	})
	if err != nil {
		log.Printf("Failed to marshal activity event: %v", err)
		return
	}
	if err := s.mqClient.Publish(rabbitmq.EventActivityRecorded, body); err != nil {
		log.Printf("Warning: Failed to publish activity recorded event for %s: %v", activity.ID, err)
	}
}
