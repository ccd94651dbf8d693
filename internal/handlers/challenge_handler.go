package handlers

import (
	"log"

	"fitlink/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ChallengeHandler handles HTTP requests for challenges.
type ChallengeHandler struct {
	challengeService *services.ChallengeService
	validate         *validator.Validate
}

// NewChallengeHandler creates a new ChallengeHandler.
func NewChallengeHandler(challengeService *services.ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{
		challengeService: challengeService,
		validate:         validator.New(),
	}
}

// RegisterRoutes registers the challenge routes with the Fiber app.
func (h *ChallengeHandler) RegisterRoutes(router fiber.Router) {
	challengeRoutes := router.Group("/challenges")
	challengeRoutes.Post("/", h.HandleCreateChallenge)
	challengeRoutes.Get("/", h.HandleListChallenges)
	challengeRoutes.Post("/:id/join", h.HandleJoinChallenge)
	challengeRoutes.Delete("/:id", h.HandleDeleteChallenge)
}

// CreateChallengeRequest represents the request body for a new challenge.
type CreateChallengeRequest struct {
	CreatorID   string `json:"creator_id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

// HandleCreateChallenge creates a new challenge.
func (h *ChallengeHandler) HandleCreateChallenge(c *fiber.Ctx) error {
	var req CreateChallengeRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing challenge request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	challenge, err := h.challengeService.Create(req.CreatorID, req.Title, req.Description)
	if err != nil {
		log.Printf("Error creating challenge: %v", err)
		return serviceError(c, "Could not create challenge", err)
	}
	return c.Status(fiber.StatusCreated).JSON(challenge)
}

// HandleListChallenges lists challenges, optionally filtered by creator and
// a case-sensitive title substring.
func (h *ChallengeHandler) HandleListChallenges(c *fiber.Ctx) error {
	filter := services.ChallengeFilter{
		CreatorID:     c.Query("creator_id"),
		TitleContains: c.Query("title"),
	}
	challenges, err := h.challengeService.List(filter)
	if err != nil {
		log.Printf("Error listing challenges: %v", err)
		return serviceError(c, "Could not retrieve challenges", err)
	}
	return c.JSON(challenges)
}

// JoinChallengeRequest represents the request body for joining a challenge.
type JoinChallengeRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

// HandleJoinChallenge adds a user to a challenge's participants.
func (h *ChallengeHandler) HandleJoinChallenge(c *fiber.Ctx) error {
	var req JoinChallengeRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing join request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	challenge, err := h.challengeService.Join(c.Params("id"), req.UserID)
	if err != nil {
		log.Printf("Error joining challenge %s: %v", c.Params("id"), err)
		return serviceError(c, "Could not join challenge", err)
	}
	return c.JSON(challenge)
}

// HandleDeleteChallenge removes a challenge.
func (h *ChallengeHandler) HandleDeleteChallenge(c *fiber.Ctx) error {
	challengeID := c.Params("id")
	if err := h.challengeService.Remove(challengeID); err != nil {
		log.Printf("Error deleting challenge %s: %v", challengeID, err)
		return serviceError(c, "Could not delete challenge", err)
	}
	return c.JSON(fiber.Map{
		"message": "Challenge deleted successfully",
	})
}
