package carbonevent

import (
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gofiber/fiber/v2"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new carbon event feature around svc.
func NewFeature(svc *Service) *Feature {
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "carbon-events"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load migrates the schema and registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	if err := f.service.repo.Migrate(); err != nil {
		return err
	}
	f.handler.RegisterRoutes(app)
	return nil
}

// Document describes the feature's operations.
func (f *Feature) Document(doc *openapi3.T) {
	Document(doc)
}
