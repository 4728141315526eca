package carbonevent

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"carbon-tracker/core/carbonapi"
)

// DateLayout is the date format accepted in requests and used in export keys.
const DateLayout = "2006-01-02"

// EventType shows which activity caused a carbon emission.
type EventType string

const (
	TypeFlight   EventType = "FLIGHT"
	TypeShipping EventType = "SHIPPING"
	TypeCar      EventType = "CAR"
)

// EventTypes lists every event type in reporting order.
var EventTypes = []EventType{TypeFlight, TypeShipping, TypeCar}

// Valid reports whether t is a known event type.
func (t EventType) Valid() bool {
	for _, known := range EventTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Event is an activity that caused carbon emissions.
type Event struct {
	// ID is the unique identifier (UUID).
	ID string `gorm:"primaryKey;type:char(36)" json:"id"`
	// Type is the activity that caused the emission.
	Type EventType `gorm:"type:varchar(16);not null;index" json:"type"`
	// Date is the day the emission happened.
	Date Date `gorm:"type:date;not null;index" json:"date"`
	// Amount is the emitted carbon in grams.
	Amount int `gorm:"not null" json:"amount"`
}

// TableName overrides the table name used by GORM.
func (Event) TableName() string {
	return "carbon_events"
}

// Date is a calendar day. It is held as UTC midnight and rendered as YYYY-MM-DD.
type Date struct {
	time.Time
}

// NewDate returns the calendar day of t.
func NewDate(t time.Time) Date {
	return Date{Time: truncateDay(t)}
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

// MarshalJSON renders the day as "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(DateLayout))
}

// UnmarshalJSON accepts the same values as ParseDate.
func (d *Date) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("%w: date must be a string", ErrInvalidInput)
	}
	t, err := ParseDate(value)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// Value implements driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

// Scan implements sql.Scanner for DATE columns returned as time or text.
func (d *Date) Scan(value any) error {
	switch v := value.(type) {
	case time.Time:
		d.Time = truncateDay(v)
		return nil
	case string:
		return d.scanText(v)
	case []byte:
		return d.scanText(string(v))
	case nil:
		d.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", value)
	}
}

func (d *Date) scanText(value string) error {
	if len(value) > len(DateLayout) {
		value = value[:len(DateLayout)]
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return fmt.Errorf("cannot scan %q into Date: %w", value, err)
	}
	d.Time = t
	return nil
}

// CreateUpdateRequest is the body of create and update requests.
type CreateUpdateRequest struct {
	// Type is FLIGHT, SHIPPING or CAR.
	Type EventType `json:"type"`
	// Date is the day of the emission, YYYY-MM-DD.
	Date string `json:"date"`
	// Amount is the emitted carbon in grams.
	Amount int `json:"amount"`
}

// FlightLegRequest is one leg in the body of a flight request.
type FlightLegRequest struct {
	// DepartureAirport is the IATA code of the departure airport.
	DepartureAirport string `json:"departureAirport"`
	// DestinationAirport is the IATA code of the destination airport.
	DestinationAirport string `json:"destinationAirport"`
	// CabinClass is economy or premium. Optional.
	CabinClass string `json:"cabinClass,omitempty"`
}

// FlightLegs converts request legs into estimate request legs.
func FlightLegs(legs []FlightLegRequest) []carbonapi.FlightLeg {
	out := make([]carbonapi.FlightLeg, 0, len(legs))
	for _, leg := range legs {
		out = append(out, carbonapi.FlightLeg{
			DepartureAirport:   leg.DepartureAirport,
			DestinationAirport: leg.DestinationAirport,
			CabinClass:         leg.CabinClass,
		})
	}
	return out
}

// TypeTotal is the accumulated amount of one event type.
type TypeTotal struct {
	Type   EventType `json:"type"`
	Amount int       `json:"amount"`
}

// ExportResult describes an export written to object storage.
type ExportResult struct {
	Bucket string `json:"bucket"`
	Key    string `json:"key"`
	Count  int    `json:"count"`
}

// ParseDate parses a YYYY-MM-DD date or an RFC 3339 timestamp and truncates it to
// UTC midnight of that calendar day.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		ts, tsErr := time.Parse(time.RFC3339, value)
		if tsErr != nil {
			return time.Time{}, fmt.Errorf("%w: invalid date %q, expected %s", ErrInvalidInput, value, DateLayout)
		}
		t = ts
	}
	return truncateDay(t), nil
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
