package health

import (
	"net/http"

	"carbon-tracker/core/apidoc"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gofiber/fiber/v2"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *Handler
}

// NewFeature creates a new health feature.
func NewFeature(svc *Service) *Feature {
	return &Feature{handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "health"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Document describes the health check on doc.
func (f *Feature) Document(doc *openapi3.T) {
	component := openapi3.NewObjectSchema().
		WithProperty("status", openapi3.NewStringSchema().WithEnum(StatusOK, StatusError, StatusDisabled)).
		WithProperty("detail", openapi3.NewStringSchema()).
		WithProperty("error", openapi3.NewStringSchema())
	report := openapi3.NewObjectSchema().
		WithProperty("status", openapi3.NewStringSchema().WithEnum(StatusOK, StatusError)).
		WithProperty("components", openapi3.NewObjectSchema().WithAdditionalProperties(component))

	op := openapi3.NewOperation()
	op.OperationID = "health"
	op.Summary = "Check database, object storage and cache"
	op.Tags = []string{"health"}
	op.AddResponse(http.StatusOK, apidoc.JSONResponse("All dependencies reachable", report))
	op.AddResponse(http.StatusServiceUnavailable, apidoc.JSONResponse("At least one dependency failed", report))
	doc.AddOperation(Path, http.MethodGet, op)
}
