package health

import (
	"context"
	"fmt"
	"time"

	"carbon-tracker/core/cache"
	"carbon-tracker/core/database"
	"carbon-tracker/core/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Component statuses.
const (
	StatusOK       = "ok"
	StatusError    = "error"
	StatusDisabled = "disabled"
)

// checkTimeout bounds every single check.
const checkTimeout = 5 * time.Second

// ComponentStatus is the result of checking one dependency.
type ComponentStatus struct {
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Report is the combined result of all checks.
type Report struct {
	Status     string                     `json:"status"`
	Components map[string]ComponentStatus `json:"components"`
}

// Healthy reports whether no component failed.
func (r *Report) Healthy() bool {
	return r.Status == StatusOK
}

// Service checks the service's dependencies.
type Service struct {
	db     *gorm.DB
	store  storage.Client
	bucket string
	cache  cache.Cache
	logger *zap.Logger
}

// NewService creates a new health service. A nil dependency is reported as disabled.
func NewService(db *gorm.DB, store storage.Client, bucket string, c cache.Cache, logger *zap.Logger) *Service {
	return &Service{
		db:     db,
		store:  store,
		bucket: bucket,
		cache:  c,
		logger: logger,
	}
}

// Check runs every check and combines the results.
func (s *Service) Check(ctx context.Context) *Report {
	report := &Report{
		Status: StatusOK,
		Components: map[string]ComponentStatus{
			"database": s.CheckDatabase(ctx),
			"storage":  s.CheckStorage(ctx),
			"cache":    s.CheckCache(ctx),
		},
	}
	for name, component := range report.Components {
		if component.Status == StatusError {
			report.Status = StatusError
			s.logger.Warn("Health check failed", zap.String("component", name), zap.String("error", component.Error))
		}
	}
	return report
}

// CheckDatabase pings the database.
func (s *Service) CheckDatabase(ctx context.Context) ComponentStatus {
	if s.db == nil {
		return ComponentStatus{Status: StatusDisabled}
	}
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()
	return result(database.Ping(ctx, s.db))
}

// CheckStorage verifies the object storage is reachable.
// A missing bucket is not an error, it is created on the first export.
func (s *Service) CheckStorage(ctx context.Context) ComponentStatus {
	if s.store == nil {
		return ComponentStatus{Status: StatusDisabled}
	}
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	exists, err := s.store.BucketExists(ctx, s.bucket)
	if err != nil {
		return result(fmt.Errorf("failed to check bucket %s: %w", s.bucket, err))
	}
	status := ComponentStatus{Status: StatusOK}
	if !exists {
		status.Detail = fmt.Sprintf("bucket %s does not exist yet", s.bucket)
	}
	return status
}

// CheckCache pings the cache when caching is enabled.
func (s *Service) CheckCache(ctx context.Context) ComponentStatus {
	if s.cache == nil {
		return ComponentStatus{Status: StatusDisabled}
	}
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()
	return result(s.cache.Ping(ctx))
}

func result(err error) ComponentStatus {
	if err != nil {
		return ComponentStatus{Status: StatusError, Error: err.Error()}
	}
	return ComponentStatus{Status: StatusOK}
}
