package carbonevent

import (
	"errors"
	"time"

	"carbon-tracker/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// BasePath is the route prefix of the carbon event API.
const BasePath = "/api/v1/carbon-events"

// Handler handles HTTP requests for carbon events.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the carbon event routes.
// The operations are described for the API document in openapi.go.
// Static segments are registered before /:id so they are not captured as ids.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group(BasePath)
	group.Get("/accumulate", h.HandleAccumulate)
	group.Get("/accumulate/by-type", h.HandleAccumulateByType)
	group.Get("/", h.HandleListInRange)
	group.Get("/:id", h.HandleGetByID)
	group.Post("/flight", h.HandleCreateFlight)
	group.Post("/car", h.HandleCreateCar)
	group.Post("/shipping", h.HandleCreateShipping)
	group.Post("/export", h.HandleExport)
	group.Post("/", h.HandleCreate)
	group.Put("/:id", h.HandleUpdate)
	group.Delete("/", h.HandleDeleteInRange)
	group.Delete("/:id", h.HandleDelete)
}

// HandleGetByID returns a single carbon event.
func (h *Handler) HandleGetByID(c *fiber.Ctx) error {
	event, err := h.service.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(event)
}

// HandleListInRange returns the carbon events of a date range.
func (h *Handler) HandleListInRange(c *fiber.Ctx) error {
	start, end, err := dateRange(c)
	if err != nil {
		return h.fail(c, err)
	}
	events, err := h.service.ListInRange(c.Context(), start, end)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(events)
}

// HandleAccumulate returns the total emitted carbon in grams of a date range.
func (h *Handler) HandleAccumulate(c *fiber.Ctx) error {
	start, end, err := dateRange(c)
	if err != nil {
		return h.fail(c, err)
	}
	total, err := h.service.Accumulate(c.Context(), start, end)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(total)
}

// HandleAccumulateByType returns the emitted carbon per event type of a date range.
func (h *Handler) HandleAccumulateByType(c *fiber.Ctx) error {
	start, end, err := dateRange(c)
	if err != nil {
		return h.fail(c, err)
	}
	totals, err := h.service.AccumulateByType(c.Context(), start, end)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(totals)
}

// HandleCreate stores a carbon event with a known amount.
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var req CreateUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return h.fail(c, errors.Join(ErrInvalidInput, err))
	}
	event, err := h.service.Create(c.Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(event)
}

// HandleCreateFlight estimates and stores a flight.
func (h *Handler) HandleCreateFlight(c *fiber.Ctx) error {
	var legs []FlightLegRequest
	if err := c.BodyParser(&legs); err != nil {
		return h.fail(c, errors.Join(ErrInvalidInput, err))
	}
	event, err := h.service.CreateFlight(c.Context(), c.QueryInt("passengers"), FlightLegs(legs))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(event)
}

// HandleCreateCar estimates and stores a car trip.
func (h *Handler) HandleCreateCar(c *fiber.Ctx) error {
	event, err := h.service.CreateCar(c.Context(), c.QueryFloat("distanceValue"), c.Query("vehicleModelId"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(event)
}

// HandleCreateShipping estimates and stores a shipment.
func (h *Handler) HandleCreateShipping(c *fiber.Ctx) error {
	event, err := h.service.CreateShipping(c.Context(),
		c.QueryFloat("weightValue"),
		c.QueryFloat("distanceValue"),
		c.Query("transportMethod"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(event)
}

// HandleUpdate replaces an existing carbon event.
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	var req CreateUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return h.fail(c, errors.Join(ErrInvalidInput, err))
	}
	event, err := h.service.Update(c.Context(), c.Params("id"), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(event)
}

// HandleDelete removes a carbon event.
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleDeleteInRange removes the carbon events of a date range.
func (h *Handler) HandleDeleteInRange(c *fiber.Ctx) error {
	start, end, err := dateRange(c)
	if err != nil {
		return h.fail(c, err)
	}
	removed, err := h.service.DeleteInRange(c.Context(), start, end)
	if err != nil {
		return h.fail(c, err)
	}
	logger.WithRayID(h.service.logger, c).Info("Deleted carbon events", zap.Int64("removed", removed))
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleExport writes the carbon events of a date range to object storage.
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	start, end, err := dateRange(c)
	if err != nil {
		return h.fail(c, err)
	}
	result, err := h.service.Export(c.Context(), start, end)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(result)
}

// fail maps service errors to HTTP responses.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	l := logger.WithRayID(h.service.logger, c)

	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, ErrInvalidInput):
		status = fiber.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, ErrEstimateFailed):
		status = fiber.StatusBadGateway
	}

	if status >= fiber.StatusInternalServerError {
		l.Error("Carbon event request failed", zap.String("path", c.Path()), zap.Error(err))
	} else {
		l.Debug("Carbon event request rejected", zap.String("path", c.Path()), zap.Error(err))
	}

	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func dateRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	start, err := ParseDate(c.Query("start"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := ParseDate(c.Query("end"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}
