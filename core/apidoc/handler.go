package apidoc

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// Handler serves the rendered OpenAPI document.
type Handler struct {
	spec *Spec
}

// NewHandler creates a new documentation handler.
func NewHandler(spec *Spec) *Handler {
	return &Handler{spec: spec}
}

// RegisterRoutes registers the documentation routes.
// The Swagger UI reads the document registered under swag.Name.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/v3/api-docs", h.HandleJSON)
	app.Get("/v3/api-docs.yaml", h.HandleYAML)
	app.Get("/swagger/*", swagger.HandlerDefault)
}

// HandleJSON returns the OpenAPI document as JSON.
func (h *Handler) HandleJSON(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(h.spec.JSON())
}

// HandleYAML returns the OpenAPI document as YAML.
func (h *Handler) HandleYAML(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "application/yaml")
	return c.Send(h.spec.YAML())
}
