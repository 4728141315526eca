// Package carbonapi is the client for the Carbon Interface estimates API.
//
// The service never computes emissions itself: flight, vehicle and shipping events
// are sent to the API, which answers with the estimated emission in grams.
//
// # Components
//
//   - Client: posts estimate requests with the bearer API key. Outgoing requests
//     are throttled by a token bucket so bursts of event creation do not exhaust
//     the API quota.
//   - CachedEstimator: wraps any Estimator with a cache.Cache. Identical requests
//     are answered from Redis, and concurrent identical requests share one call.
//
// # Usage
//
//	client := carbonapi.NewClient(cfg.Carbon)
//	est, err := client.Estimate(ctx, carbonapi.VehicleRequest(100, modelID))
//	grams := est.CarbonGrams()
package carbonapi
