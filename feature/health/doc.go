// Package health reports whether the service's dependencies are reachable.
//
// GET /health pings the database, checks the export bucket in object storage and
// pings the Redis cache. Each component is "ok", "error" or "disabled" when it is
// not configured. The response is 503 when any component failed.
package health
