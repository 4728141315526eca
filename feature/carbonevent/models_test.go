package carbonevent

import (
	"encoding/json"
	"testing"
	"time"

	"carbon-tracker/core/carbonapi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSON(t *testing.T) {
	d := NewDate(time.Date(2024, 1, 10, 18, 45, 0, 0, time.UTC))

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-10"`, string(data))
	assert.Equal(t, "2024-01-10", d.String())

	var back Date
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.Equal(d.Time))

	assert.ErrorIs(t, json.Unmarshal([]byte(`"10.01.2024"`), &back), ErrInvalidInput)
	assert.ErrorIs(t, json.Unmarshal([]byte(`20240110`), &back), ErrInvalidInput)
}

func TestEvent_JSON(t *testing.T) {
	event := Event{ID: "id-1", Type: TypeCar, Date: NewDate(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)), Amount: 12}

	data, err := json.Marshal(event)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"id-1","type":"CAR","date":"2024-02-29","amount":12}`, string(data))
}

func TestDate_Scan(t *testing.T) {
	want := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value any
	}{
		{"Time", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{"Text", "2024-03-05"},
		{"TextWithTime", "2024-03-05 00:00:00+00:00"},
		{"Bytes", []byte("2024-03-05")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			require.NoError(t, d.Scan(tt.value))
			assert.True(t, d.Equal(want), d.String())
		})
	}

	var d Date
	assert.Error(t, d.Scan(42))
	assert.Error(t, d.Scan("not a date"))
	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	v, err := NewDate(want).Value()
	require.NoError(t, err)
	assert.Equal(t, want, v)
}

func TestFlightLegs(t *testing.T) {
	var legs []FlightLegRequest
	require.NoError(t, json.Unmarshal([]byte(`[
		{"departureAirport":"DRS","destinationAirport":"FRA"},
		{"departureAirport":"FRA","destinationAirport":"JFK","cabinClass":"premium"}
	]`), &legs))

	assert.Equal(t, []carbonapi.FlightLeg{
		{DepartureAirport: "DRS", DestinationAirport: "FRA"},
		{DepartureAirport: "FRA", DestinationAirport: "JFK", CabinClass: "premium"},
	}, FlightLegs(legs))
}
