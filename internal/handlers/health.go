package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/articles-api/internal/repository"
	"github.com/localnerve/articles-api/internal/services"
	"go.uber.org/zap"
)

// HealthHandler reports store reachability
type HealthHandler struct {
	Store *repository.Store
	Log   *zap.Logger
}

// Health handles GET /health
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} services.HealthCheckResult
// @Failure 503 {object} services.HealthCheckResult
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	result := services.HealthCheck(c.UserContext(), h.Store, h.Log)
	if result.Status != "healthy" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(result)
	}
	return c.JSON(result)
}
