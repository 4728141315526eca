package carbonevent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"carbon-tracker/core/carbonapi"
	"carbon-tracker/core/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service handles carbon event operations.
type Service struct {
	repo      *Repository
	estimator carbonapi.Estimator
	store     storage.Client
	bucket    string
	region    string
	logger    *zap.Logger
	now       func() time.Time
}

// NewService creates a new carbon event service.
func NewService(repo *Repository, estimator carbonapi.Estimator, store storage.Client, bucket, region string, logger *zap.Logger) *Service {
	return &Service{
		repo:      repo,
		estimator: estimator,
		store:     store,
		bucket:    bucket,
		region:    region,
		logger:    logger,
		now:       time.Now,
	}
}

// GetByID returns the event with the given id.
func (s *Service) GetByID(ctx context.Context, id string) (*Event, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

// ListInRange returns the events dated between start and end, both inclusive.
func (s *Service) ListInRange(ctx context.Context, start, end time.Time) ([]Event, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}
	return s.repo.FindInRange(ctx, start, end)
}

// Accumulate returns the total emitted carbon in grams between start and end.
func (s *Service) Accumulate(ctx context.Context, start, end time.Time) (int, error) {
	if err := validateRange(start, end); err != nil {
		return 0, err
	}
	return s.repo.SumInRange(ctx, start, end)
}

// AccumulateByType returns the total emitted carbon per event type between start and end.
// Every type is present, in EventTypes order, with zero when it has no events.
func (s *Service) AccumulateByType(ctx context.Context, start, end time.Time) ([]TypeTotal, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}
	sums, err := s.repo.SumByTypeInRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	totals := make([]TypeTotal, 0, len(EventTypes))
	for _, t := range EventTypes {
		totals = append(totals, TypeTotal{Type: t, Amount: sums[t]})
	}
	return totals, nil
}

// Create stores a new event with a generated id.
func (s *Service) Create(ctx context.Context, req CreateUpdateRequest) (*Event, error) {
	event, err := eventFromRequest(req)
	if err != nil {
		return nil, err
	}
	event.ID = uuid.NewString()

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// CreateFlight estimates the emission of a flight and stores it as a FLIGHT event dated today.
func (s *Service) CreateFlight(ctx context.Context, passengers int, legs []carbonapi.FlightLeg) (*Event, error) {
	if passengers < 1 {
		return nil, fmt.Errorf("%w: passengers must be at least 1", ErrInvalidInput)
	}
	if len(legs) == 0 {
		return nil, fmt.Errorf("%w: at least one leg is required", ErrInvalidInput)
	}
	for i, leg := range legs {
		if strings.TrimSpace(leg.DepartureAirport) == "" || strings.TrimSpace(leg.DestinationAirport) == "" {
			return nil, fmt.Errorf("%w: leg %d needs departure and destination airports", ErrInvalidInput, i)
		}
	}

	return s.createEstimated(ctx, TypeFlight, carbonapi.FlightRequest(passengers, legs))
}

// CreateCar estimates the emission of a car trip of distanceKm and stores it as a CAR event dated today.
func (s *Service) CreateCar(ctx context.Context, distanceKm float64, vehicleModelID string) (*Event, error) {
	if distanceKm <= 0 {
		return nil, fmt.Errorf("%w: distance must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(vehicleModelID) == "" {
		return nil, fmt.Errorf("%w: vehicle model id is required", ErrInvalidInput)
	}

	return s.createEstimated(ctx, TypeCar, carbonapi.VehicleRequest(distanceKm, vehicleModelID))
}

// CreateShipping estimates the emission of a shipment and stores it as a SHIPPING event dated today.
func (s *Service) CreateShipping(ctx context.Context, weightKg, distanceKm float64, transportMethod string) (*Event, error) {
	if weightKg <= 0 {
		return nil, fmt.Errorf("%w: weight must be positive", ErrInvalidInput)
	}
	if distanceKm <= 0 {
		return nil, fmt.Errorf("%w: distance must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(transportMethod) == "" {
		return nil, fmt.Errorf("%w: transport method is required", ErrInvalidInput)
	}

	return s.createEstimated(ctx, TypeShipping, carbonapi.ShippingRequest(weightKg, distanceKm, transportMethod))
}

func (s *Service) createEstimated(ctx context.Context, eventType EventType, req carbonapi.Request) (*Event, error) {
	estimate, err := s.estimator.Estimate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEstimateFailed, err)
	}

	event := &Event{
		ID:     uuid.NewString(),
		Type:   eventType,
		Date:   NewDate(s.now().UTC()),
		Amount: estimate.CarbonGrams(),
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, err
	}

	s.logger.Debug("Stored estimated carbon event",
		zap.String("id", event.ID),
		zap.String("type", string(event.Type)),
		zap.Int("amount", event.Amount))
	return event, nil
}

// Update replaces type, date and amount of an existing event.
func (s *Service) Update(ctx context.Context, id string, req CreateUpdateRequest) (*Event, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	changes, err := eventFromRequest(req)
	if err != nil {
		return nil, err
	}

	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	event.Type = changes.Type
	event.Date = changes.Date
	event.Amount = changes.Amount

	if err := s.repo.Save(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// Delete removes the event with the given id. Missing events are ignored.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// DeleteInRange removes the events dated between start and end.
func (s *Service) DeleteInRange(ctx context.Context, start, end time.Time) (int64, error) {
	if err := validateRange(start, end); err != nil {
		return 0, err
	}
	return s.repo.DeleteInRange(ctx, start, end)
}

func eventFromRequest(req CreateUpdateRequest) (*Event, error) {
	if !req.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown event type %q", ErrInvalidInput, req.Type)
	}
	date, err := ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	if req.Amount < 0 {
		return nil, fmt.Errorf("%w: amount must not be negative", ErrInvalidInput)
	}
	return &Event{Type: req.Type, Date: Date{Time: date}, Amount: req.Amount}, nil
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: invalid id %q", ErrInvalidInput, id)
	}
	return nil
}

func validateRange(start, end time.Time) error {
	if start.After(end) {
		return fmt.Errorf("%w: start %s is after end %s", ErrInvalidInput, start.Format(DateLayout), end.Format(DateLayout))
	}
	return nil
}
