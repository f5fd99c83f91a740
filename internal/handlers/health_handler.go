package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler reports liveness and, when a pinger is set, store reachability.
type HealthHandler struct {
	ping func(ctx context.Context) error
}

// NewHealthHandler creates a new HealthHandler. ping may be nil.
func NewHealthHandler(ping func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{ping: ping}
}

// RegisterRoutes registers the health route.
func (h *HealthHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/health", h.HandleHealth)
}

// HandleHealth answers 200 with the store status in the "database" field.
func (h *HealthHandler) HandleHealth(c *fiber.Ctx) error {
	database := "up"
	if h.ping != nil {
		if err := h.ping(c.UserContext()); err != nil {
			database = "down"
		}
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":   "healthy",
		"time":     time.Now().Format(time.RFC3339),
		"database": database,
	})
}
