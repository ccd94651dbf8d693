package handlers

import (
	"log"

	"fitlink/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// FollowHandler handles HTTP requests for the follow graph.
type FollowHandler struct {
	followService *services.FollowService
	validate      *validator.Validate
}

// NewFollowHandler creates a new FollowHandler.
func NewFollowHandler(followService *services.FollowService) *FollowHandler {
	return &FollowHandler{
		followService: followService,
		validate:      validator.New(),
	}
}

// RegisterRoutes registers the follow routes with the Fiber app.
func (h *FollowHandler) RegisterRoutes(router fiber.Router) {
	followRoutes := router.Group("/follows")
	followRoutes.Post("/", h.HandleFollow)
	followRoutes.Delete("/:id", h.HandleUnfollow)
}

// FollowRequest represents the request body for creating a follow edge.
type FollowRequest struct {
	FollowerID  string `json:"follower_id" validate:"required"`
	FollowingID string `json:"following_id" validate:"required"`
}

// HandleFollow creates a directed follow edge.
func (h *FollowHandler) HandleFollow(c *fiber.Ctx) error {
	var req FollowRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing follow request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	follow, err := h.followService.Follow(req.FollowerID, req.FollowingID)
	if err != nil {
		log.Printf("Error creating follow: %v", err)
		return serviceError(c, "Could not follow user", err)
	}
	return c.Status(fiber.StatusCreated).JSON(follow)
}

// HandleUnfollow removes a follow edge.
func (h *FollowHandler) HandleUnfollow(c *fiber.Ctx) error {
	followID := c.Params("id")
	if err := h.followService.Unfollow(followID); err != nil {
		log.Printf("Error deleting follow %s: %v", followID, err)
		return serviceError(c, "Could not unfollow", err)
	}
	return c.JSON(fiber.Map{
		"message": "Unfollowed successfully",
	})
}
