package carbonapi

// Estimate types understood by the API.
const (
	TypeFlight   = "flight"
	TypeVehicle  = "vehicle"
	TypeShipping = "shipping"
)

// Units sent with distance and weight values.
const (
	UnitKilometers = "km"
	UnitKilograms  = "kg"
)

// FlightLeg is a flight from one airport to another.
type FlightLeg struct {
	// DepartureAirport is the IATA code of the departure airport.
	DepartureAirport string `json:"departure_airport"`
	// DestinationAirport is the IATA code of the destination airport.
	DestinationAirport string `json:"destination_airport"`
	// CabinClass is economy or premium. Optional.
	CabinClass string `json:"cabin_class,omitempty"`
}

// Request is the payload of an estimate request.
// Only the fields belonging to Type are set.
type Request struct {
	Type            string      `json:"type"`
	Passengers      int         `json:"passengers,omitempty"`
	Legs            []FlightLeg `json:"legs,omitempty"`
	WeightValue     float64     `json:"weight_value,omitempty"`
	WeightUnit      string      `json:"weight_unit,omitempty"`
	DistanceValue   float64     `json:"distance_value,omitempty"`
	DistanceUnit    string      `json:"distance_unit,omitempty"`
	VehicleModelID  string      `json:"vehicle_model_id,omitempty"`
	TransportMethod string      `json:"transport_method,omitempty"`
}

// FlightRequest builds a flight estimate request.
func FlightRequest(passengers int, legs []FlightLeg) Request {
	return Request{
		Type:       TypeFlight,
		Passengers: passengers,
		Legs:       legs,
	}
}

// VehicleRequest builds a vehicle estimate request for a distance in kilometers.
func VehicleRequest(distanceKm float64, vehicleModelID string) Request {
	return Request{
		Type:           TypeVehicle,
		DistanceValue:  distanceKm,
		DistanceUnit:   UnitKilometers,
		VehicleModelID: vehicleModelID,
	}
}

// ShippingRequest builds a shipping estimate request for a weight in kilograms
// and a distance in kilometers.
func ShippingRequest(weightKg, distanceKm float64, transportMethod string) Request {
	return Request{
		Type:            TypeShipping,
		WeightValue:     weightKg,
		WeightUnit:      UnitKilograms,
		DistanceValue:   distanceKm,
		DistanceUnit:    UnitKilometers,
		TransportMethod: transportMethod,
	}
}

// Estimate is the API response to an estimate request.
type Estimate struct {
	Data EstimateData `json:"data"`
}

// EstimateData wraps the estimate attributes.
type EstimateData struct {
	ID         string             `json:"id"`
	Type       string             `json:"type"`
	Attributes EstimateAttributes `json:"attributes"`
}

// EstimateAttributes holds the computed emissions.
type EstimateAttributes struct {
	CarbonG     int     `json:"carbon_g"`
	CarbonLb    float64 `json:"carbon_lb"`
	CarbonKg    float64 `json:"carbon_kg"`
	CarbonMt    float64 `json:"carbon_mt"`
	EstimatedAt string  `json:"estimated_at"`
}

// CarbonGrams returns the estimated emission in grams.
func (e *Estimate) CarbonGrams() int {
	return e.Data.Attributes.CarbonG
}
