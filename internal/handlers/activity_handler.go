package handlers

import (
	"fmt"
	"log"
	"time"

	"fitlink/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ActivityHandler handles HTTP requests for the activity ledger.
type ActivityHandler struct {
	activityService *services.ActivityService
	validate        *validator.Validate
}

// NewActivityHandler creates a new ActivityHandler.
func NewActivityHandler(activityService *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
		validate:        validator.New(),
	}
}

// RegisterRoutes registers the activity routes with the Fiber app.
func (h *ActivityHandler) RegisterRoutes(router fiber.Router) {
	activityRoutes := router.Group("/activities")
	activityRoutes.Post("/", h.HandleRecordActivity)
	activityRoutes.Get("/", h.HandleListActivities)
	activityRoutes.Delete("/:id", h.HandleDeleteActivity)
}

// RecordActivityRequest represents the request body for logging a workout.
type RecordActivityRequest struct {
	UserID   string `json:"user_id" validate:"required"`
	Type     string `json:"type" validate:"required"`
	Duration int    `json:"duration" validate:"required,gt=0"`
	Date     string `json:"date" validate:"required"`
}

// parseDate accepts a plain calendar date or a full RFC 3339 timestamp.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q is not a calendar date", value)
	}
	return t, nil
}

// HandleRecordActivity logs a workout and credits its points.
func (h *ActivityHandler) HandleRecordActivity(c *fiber.Ctx) error {
	var req RecordActivityRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing activity request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid activity date",
			"error":   err.Error(),
		})
	}

	activity, err := h.activityService.Record(req.UserID, req.Type, req.Duration, date)
	if err != nil {
		log.Printf("Error recording activity: %v", err)
		return serviceError(c, "Could not record activity", err)
	}
	return c.Status(fiber.StatusCreated).JSON(activity)
}

// HandleListActivities lists activities, optionally filtered by user, type
// and an inclusive date range.
func (h *ActivityHandler) HandleListActivities(c *fiber.Ctx) error {
	filter := services.ActivityFilter{
		UserID: c.Query("user_id"),
		Type:   c.Query("type"),
	}
	if from := c.Query("from"); from != "" {
		t, err := parseDate(from)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid 'from' date",
				"error":   err.Error(),
			})
		}
		filter.From = &t
	}
	if to := c.Query("to"); to != "" {
		t, err := parseDate(to)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid 'to' date",
				"error":   err.Error(),
			})
		}
		filter.To = &t
	}

	activities, err := h.activityService.List(filter)
	if err != nil {
		log.Printf("Error listing activities: %v", err)
		return serviceError(c, "Could not retrieve activities", err)
	}
	return c.JSON(activities)
}

// HandleDeleteActivity removes an activity record.
func (h *ActivityHandler) HandleDeleteActivity(c *fiber.Ctx) error {
	activityID := c.Params("id")
	if err := h.activityService.Remove(activityID); err != nil {
		log.Printf("Error deleting activity %s: %v", activityID, err)
		return serviceError(c, "Could not delete activity", err)
	}
	return c.JSON(fiber.Map{
		"message": "Activity deleted successfully",
	})
}
