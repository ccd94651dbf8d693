package services_test

import (
	"fmt"
	"testing"
	"time"

	"fitlink/internal/models"
	"fitlink/internal/repositories"
	"fitlink/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockActivityRepository is a mock implementation of repositories.ActivityRepository
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Create(activity *models.Activity) error {
	args := m.Called(activity)
	return args.Error(0)
}

func (m *MockActivityRepository) GetByID(id string) (*models.Activity, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Activity), args.Error(1)
}

func (m *MockActivityRepository) GetAll() ([]models.Activity, error) {
	args := m.Called()
	return args.Get(0).([]models.Activity), args.Error(1)
}

func (m *MockActivityRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockUserDirectory is a mock implementation of services.UserDirectory
type MockUserDirectory struct {
	mock.Mock
}

func (m *MockUserDirectory) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserDirectory) AccruePoints(id string, amount int) (*models.User, error) {
	args := m.Called(id, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func TestActivityService_Record(t *testing.T) {
	mockRepo := new(MockActivityRepository)
	mockUsers := new(MockUserDirectory)
	activityService := services.NewActivityService(mockRepo, mockUsers, nil)

	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	// Successful recording credits one point per minute.
	mockUsers.On("GetByID", "user-1").Return(&models.User{ID: "user-1"}, nil).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.Activity")).Return(nil).Once()
	mockUsers.On("AccruePoints", "user-1", 30).Return(&models.User{ID: "user-1", Points: 30}, nil).Once()

	activity, err := activityService.Record("user-1", "run", 30, date)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", activity.UserID)
	assert.Equal(t, "run", activity.Type)
	assert.Equal(t, 30, activity.Duration)
	assert.Equal(t, date, activity.Date)
	mockRepo.AssertExpectations(t)
	mockUsers.AssertExpectations(t)
}

func TestActivityService_RecordValidation(t *testing.T) {
	mockRepo := new(MockActivityRepository)
	mockUsers := new(MockUserDirectory)
	activityService := services.NewActivityService(mockRepo, mockUsers, nil)

	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	_, err := activityService.Record("user-1", "", 30, date)
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	_, err = activityService.Record("user-1", "run", 0, date)
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	_, err = activityService.Record("user-1", "run", -10, date)
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	_, err = activityService.Record("user-1", "run", 30, time.Time{})
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	// Validation failures never touch the stores.
	mockRepo.AssertExpectations(t)
	mockUsers.AssertExpectations(t)

	// Unknown user fails before any write.
	mockUsers.On("GetByID", "missing").Return(nil, fmt.Errorf("user with ID missing not found")).Once()
	_, err = activityService.Record("missing", "run", 30, date)
	assert.ErrorIs(t, err, services.ErrNotFound)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
	mockUsers.AssertExpectations(t)
}

func TestActivityService_RecordRollsBackOnAccrualFailure(t *testing.T) {
	mockRepo := new(MockActivityRepository)
	mockUsers := new(MockUserDirectory)
	activityService := services.NewActivityService(mockRepo, mockUsers, nil)

	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	mockUsers.On("GetByID", "user-1").Return(&models.User{ID: "user-1"}, nil).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.Activity")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Activity).ID = "act-1"
	}).Return(nil).Once()
	mockUsers.On("AccruePoints", "user-1", 30).Return(nil, fmt.Errorf("%w: user user-1", services.ErrNotFound)).Once()
	mockRepo.On("Delete", "act-1").Return(nil).Once()

	_, err := activityService.Record("user-1", "run", 30, date)
	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
	mockUsers.AssertExpectations(t)
}

func TestActivityService_Remove(t *testing.T) {
	mockRepo := new(MockActivityRepository)
	mockUsers := new(MockUserDirectory)
	activityService := services.NewActivityService(mockRepo, mockUsers, nil)

	mockRepo.On("GetByID", "act-1").Return(&models.Activity{ID: "act-1", UserID: "user-1", Duration: 30}, nil).Once()
	mockRepo.On("Delete", "act-1").Return(nil).Once()

	assert.NoError(t, activityService.Remove("act-1"))
	// Removal does not claw back previously accrued points.
	mockUsers.AssertNotCalled(t, "AccruePoints", mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)

	mockRepo.On("GetByID", "missing").Return(nil, fmt.Errorf("activity with ID missing not found")).Once()
	assert.ErrorIs(t, activityService.Remove("missing"), services.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

// TestActivityService_AccrualSequence runs the ledger against the real
// in-memory stores: points accumulate across recordings and survive
// activity deletion.
func TestActivityService_AccrualSequence(t *testing.T) {
	userRepo := repositories.NewMemoryUserRepository()
	activityRepo := repositories.NewMemoryActivityRepository()
	userService := services.NewUserService(userRepo)
	activityService := services.NewActivityService(activityRepo, userService, nil)

	alice, err := userService.Register("Alice", "a@x.com", "password123")
	assert.NoError(t, err)
	assert.Equal(t, 0, alice.Points)

	today := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	_, err = activityService.Record(alice.ID, "run", 30, today)
	assert.NoError(t, err)
	alice, _ = userService.GetByID(alice.ID)
	assert.Equal(t, 30, alice.Points)

	swim, err := activityService.Record(alice.ID, "swim", 20, today)
	assert.NoError(t, err)
	alice, _ = userService.GetByID(alice.ID)
	assert.Equal(t, 50, alice.Points)

	// Deleting an activity keeps the accrued points.
	assert.NoError(t, activityService.Remove(swim.ID))
	alice, _ = userService.GetByID(alice.ID)
	assert.Equal(t, 50, alice.Points)
}

func TestActivityService_List(t *testing.T) {
	userRepo := repositories.NewMemoryUserRepository()
	activityRepo := repositories.NewMemoryActivityRepository()
	userService := services.NewUserService(userRepo)
	activityService := services.NewActivityService(activityRepo, userService, nil)

	alice, _ := userService.Register("Alice", "a@x.com", "password123")
	bob, _ := userService.Register("Bob", "b@x.com", "password123")

	day := func(d int) time.Time { return time.Date(2026, 8, d, 0, 0, 0, 0, time.UTC) }
	activityService.Record(alice.ID, "run", 30, day(1))
	activityService.Record(alice.ID, "swim", 20, day(5))
	activityService.Record(bob.ID, "run", 45, day(10))

	all, err := activityService.List(services.ActivityFilter{})
	assert.NoError(t, err)
	assert.Len(t, all, 3)

	mine, err := activityService.List(services.ActivityFilter{UserID: alice.ID})
	assert.NoError(t, err)
	assert.Len(t, mine, 2)

	runs, err := activityService.List(services.ActivityFilter{Type: "run"})
	assert.NoError(t, err)
	assert.Len(t, runs, 2)

	// Date bounds are inclusive.
	from, to := day(5), day(10)
	ranged, err := activityService.List(services.ActivityFilter{From: &from, To: &to})
	assert.NoError(t, err)
	assert.Len(t, ranged, 2)

	both, err := activityService.List(services.ActivityFilter{UserID: alice.ID, Type: "swim"})
	assert.NoError(t, err)
	assert.Len(t, both, 1)
	assert.Equal(t, "swim", both[0].Type)
}
