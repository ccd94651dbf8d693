package handlers

import (
	"log"

	"fitlink/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for user profiles and their followers.
type UserHandler struct {
	userService   *services.UserService
	followService *services.FollowService
	validate      *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService, followService *services.FollowService) *UserHandler {
	return &UserHandler{
		userService:   userService,
		followService: followService,
		validate:      validator.New(),
	}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/:id", h.HandleGetUser)
	userRoutes.Put("/:id", h.HandleUpdateUser)
	userRoutes.Delete("/:id", h.HandleDeleteUser)
	userRoutes.Get("/:id/followers", h.HandleGetFollowers)
}

// HandleGetUser retrieves a single user by their ID.
func (h *UserHandler) HandleGetUser(c *fiber.Ctx) error {
	user, err := h.userService.GetByID(c.Params("id"))
	if err != nil {
		return serviceError(c, "Could not retrieve user", err)
	}
	return c.JSON(user)
}

// UpdateUserRequest represents the request body for a profile update.
type UpdateUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
}

// HandleUpdateUser overwrites a user's name and email.
func (h *UserHandler) HandleUpdateUser(c *fiber.Ctx) error {
	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	user, err := h.userService.Update(c.Params("id"), req.Name, req.Email)
	if err != nil {
		log.Printf("Error updating user %s: %v", c.Params("id"), err)
		return serviceError(c, "Could not update user", err)
	}
	return c.JSON(user)
}

// HandleDeleteUser removes a user account.
func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	userID := c.Params("id")
	if err := h.userService.Remove(userID); err != nil {
		log.Printf("Error deleting user %s: %v", userID, err)
		return serviceError(c, "Could not delete user", err)
	}
	return c.JSON(fiber.Map{
		"message": "User deleted successfully",
	})
}

// HandleGetFollowers lists the follow edges pointing at the user.
func (h *UserHandler) HandleGetFollowers(c *fiber.Ctx) error {
	followers, err := h.followService.FollowersOf(c.Params("id"))
	if err != nil {
		log.Printf("Error listing followers of %s: %v", c.Params("id"), err)
		return serviceError(c, "Could not retrieve followers", err)
	}
	return c.JSON(followers)
}
