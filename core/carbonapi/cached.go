package carbonapi

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"carbon-tracker/core/cache"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// keyPrefix namespaces estimate entries in the cache.
const keyPrefix = "carbon:estimate:"

// CachedEstimator serves repeated estimate requests from a cache.
// Concurrent identical requests share a single upstream call.
type CachedEstimator struct {
	next   Estimator
	cache  cache.Cache
	ttl    time.Duration
	logger *zap.Logger
	sf     singleflight.Group
}

// NewCachedEstimator wraps next with c.
func NewCachedEstimator(next Estimator, c cache.Cache, ttl time.Duration, logger *zap.Logger) *CachedEstimator {
	return &CachedEstimator{
		next:   next,
		cache:  c,
		ttl:    ttl,
		logger: logger,
	}
}

// Estimate returns the cached estimate for req or asks the wrapped estimator.
// Cache failures are logged and never fail the request. Cancelling ctx stops
// waiting but does not abort a call other callers are sharing.
func (e *CachedEstimator) Estimate(ctx context.Context, req Request) (*Estimate, error) {
	key, err := CacheKey(req)
	if err != nil {
		return nil, err
	}

	// The shared call outlives any single caller; each caller only bounds its own wait.
	ch := e.sf.DoChan(key, func() (any, error) {
		return e.load(context.WithoutCancel(ctx), key, req)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		// callers sharing a flight each get their own copy
		estimate := *res.Val.(*Estimate)
		return &estimate, nil
	}
}

func (e *CachedEstimator) load(ctx context.Context, key string, req Request) (*Estimate, error) {
	raw, err := e.cache.Get(ctx, key)
	switch {
	case err == nil:
		var estimate Estimate
		if err := json.Unmarshal(raw, &estimate); err == nil {
			return &estimate, nil
		}
		e.logger.Warn("Discarding undecodable cached estimate", zap.String("key", key))
	case !errors.Is(err, cache.ErrMiss):
		e.logger.Warn("Estimate cache read failed", zap.String("key", key), zap.Error(err))
	}

	estimate, err := e.next.Estimate(ctx, req)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(estimate); err == nil {
		if err := e.cache.Set(ctx, key, raw, e.ttl); err != nil {
			e.logger.Warn("Estimate cache write failed", zap.String("key", key), zap.Error(err))
		}
	}

	return estimate, nil
}

// CacheKey returns the cache key of req.
func CacheKey(req Request) (string, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to encode estimate request: %w", err)
	}
	sum := sha256.Sum256(payload)
	return keyPrefix + hex.EncodeToString(sum[:]), nil
}
