package carbonapi_test

import (
	"encoding/json"
	"testing"

	"carbon-tracker/core/carbonapi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestPayloads(t *testing.T) {
	tests := []struct {
		name string
		req  carbonapi.Request
		want string
	}{
		{
			name: "Flight",
			req: carbonapi.FlightRequest(2, []carbonapi.FlightLeg{
				{DepartureAirport: "sfo", DestinationAirport: "yyz"},
				{DepartureAirport: "yyz", DestinationAirport: "sfo", CabinClass: "premium"},
			}),
			want: `{"type":"flight","passengers":2,"legs":[
				{"departure_airport":"sfo","destination_airport":"yyz"},
				{"departure_airport":"yyz","destination_airport":"sfo","cabin_class":"premium"}]}`,
		},
		{
			name: "Vehicle",
			req:  carbonapi.VehicleRequest(100, "7268a9b7-17e8-4c8d-acca-57059252afe9"),
			want: `{"type":"vehicle","distance_value":100,"distance_unit":"km",
				"vehicle_model_id":"7268a9b7-17e8-4c8d-acca-57059252afe9"}`,
		},
		{
			name: "Shipping",
			req:  carbonapi.ShippingRequest(200, 2000, "truck"),
			want: `{"type":"shipping","weight_value":200,"weight_unit":"kg",
				"distance_value":2000,"distance_unit":"km","transport_method":"truck"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.req)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}
