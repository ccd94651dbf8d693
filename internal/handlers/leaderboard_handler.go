package handlers

import (
	"log"

	"fitlink/internal/services"

	"github.com/gofiber/fiber/v2"
)

// LeaderboardHandler handles HTTP requests for the points leaderboard.
type LeaderboardHandler struct {
	leaderboardService *services.LeaderboardService
}

// NewLeaderboardHandler creates a new LeaderboardHandler.
func NewLeaderboardHandler(leaderboardService *services.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardService: leaderboardService,
	}
}

// RegisterRoutes registers the leaderboard route with the Fiber app.
func (h *LeaderboardHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/leaderboard", h.HandleGetLeaderboard)
}

// HandleGetLeaderboard returns the paginated points ranking. size, page and
// limit default to 10, 1 and 10.
func (h *LeaderboardHandler) HandleGetLeaderboard(c *fiber.Ctx) error {
	size := c.QueryInt("size", 10)
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if size <= 0 || page <= 0 || limit <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "size, page and limit must be positive integers",
		})
	}

	ranking, err := h.leaderboardService.Rank(size, page, limit)
	if err != nil {
		log.Printf("Error building leaderboard: %v", err)
		return serviceError(c, "Could not build leaderboard", err)
	}
	return c.JSON(ranking)
}
