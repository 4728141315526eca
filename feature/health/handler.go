package health

import (
	"carbon-tracker/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Path is the route of the health check.
const Path = "/health"

// Handler handles HTTP requests for health checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the health route. It is documented by Feature.Document.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get(Path, h.HandleHealth)
}

// HandleHealth checks all dependencies.
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	report := h.service.Check(c.Context())
	if !report.Healthy() {
		logger.WithRayID(h.service.logger, c).Warn("Service unhealthy", zap.Any("components", report.Components))
		return c.Status(fiber.StatusServiceUnavailable).JSON(report)
	}
	return c.JSON(report)
}
