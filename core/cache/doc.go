// Package cache provides the Redis-backed cache used for Carbon Interface estimates.
//
// Estimates are deterministic for a given request, so caching them saves API quota.
// The cache is optional: with an empty address NewRedis returns ErrDisabled and the
// service talks to the API directly.
package cache
