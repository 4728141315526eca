package carbonevent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Repository persists carbon events with GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the carbon_events table.
func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(&Event{})
}

// FindByID returns the event with id or ErrNotFound.
func (r *Repository) FindByID(ctx context.Context, id string) (*Event, error) {
	var event Event
	err := r.db.WithContext(ctx).First(&event, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load carbon event %s: %w", id, err)
	}
	return &event, nil
}

// FindInRange returns the events dated between start and end, both inclusive.
func (r *Repository) FindInRange(ctx context.Context, start, end time.Time) ([]Event, error) {
	events := []Event{}
	err := r.db.WithContext(ctx).
		Where("date BETWEEN ? AND ?", start, end).
		Order("date ASC, id ASC").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list carbon events: %w", err)
	}
	return events, nil
}

// SumInRange returns the summed amount of the events dated between start and end.
func (r *Repository) SumInRange(ctx context.Context, start, end time.Time) (int, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&Event{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("date BETWEEN ? AND ?", start, end).
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum carbon events: %w", err)
	}
	return int(total), nil
}

// SumByTypeInRange returns the summed amount per type. Types without events are absent.
func (r *Repository) SumByTypeInRange(ctx context.Context, start, end time.Time) (map[EventType]int, error) {
	var rows []struct {
		Type   EventType
		Amount int64
	}
	err := r.db.WithContext(ctx).Model(&Event{}).
		Select("type, COALESCE(SUM(amount), 0) AS amount").
		Where("date BETWEEN ? AND ?", start, end).
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum carbon events by type: %w", err)
	}

	totals := make(map[EventType]int, len(rows))
	for _, row := range rows {
		totals[row.Type] = int(row.Amount)
	}
	return totals, nil
}

// Create inserts a new event.
func (r *Repository) Create(ctx context.Context, event *Event) error {
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("failed to create carbon event: %w", err)
	}
	return nil
}

// Save updates all fields of an existing event.
func (r *Repository) Save(ctx context.Context, event *Event) error {
	if err := r.db.WithContext(ctx).Save(event).Error; err != nil {
		return fmt.Errorf("failed to update carbon event %s: %w", event.ID, err)
	}
	return nil
}

// Delete removes the event with id. Deleting a missing event is not an error.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&Event{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete carbon event %s: %w", id, err)
	}
	return nil
}

// DeleteInRange removes the events dated between start and end and returns how many were removed.
func (r *Repository) DeleteInRange(ctx context.Context, start, end time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Where("date BETWEEN ? AND ?", start, end).Delete(&Event{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete carbon events: %w", res.Error)
	}
	return res.RowsAffected, nil
}
