// Package carbonevent records carbon emission events and aggregates them over date ranges.
//
// Events are stored with GORM in the carbon_events table. Flights, car trips and shipments
// can be created from an estimate of the Carbon Interface API instead of a known amount.
// Date ranges are inclusive on both ends and dates are stored as UTC midnight.
//
// # HTTP Endpoints
//
//   - GET /api/v1/carbon-events/{id} : Returns one event.
//   - GET /api/v1/carbon-events?start&end : Lists the events of a range.
//   - GET /api/v1/carbon-events/accumulate?start&end : Sums the amounts of a range.
//   - GET /api/v1/carbon-events/accumulate/by-type?start&end : Sums the amounts per event type.
//   - POST /api/v1/carbon-events : Stores an event with a known amount.
//   - POST /api/v1/carbon-events/flight?passengers : Estimates and stores a flight.
//   - POST /api/v1/carbon-events/car?distanceValue&vehicleModelId : Estimates and stores a car trip.
//   - POST /api/v1/carbon-events/shipping?weightValue&distanceValue&transportMethod : Estimates and stores a shipment.
//   - POST /api/v1/carbon-events/export?start&end : Writes the events of a range to object storage.
//   - PUT /api/v1/carbon-events/{id} : Replaces an event.
//   - DELETE /api/v1/carbon-events/{id} : Removes an event.
//   - DELETE /api/v1/carbon-events?start&end : Removes the events of a range.
package carbonevent
