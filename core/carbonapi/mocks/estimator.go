package mocks

import (
	"context"

	"carbon-tracker/core/carbonapi"

	"github.com/stretchr/testify/mock"
)

// Estimator is a mock implementation of carbonapi.Estimator
type Estimator struct {
	mock.Mock
}

func (m *Estimator) Estimate(ctx context.Context, req carbonapi.Request) (*carbonapi.Estimate, error) {
	args := m.Called(ctx, req)
	if est, ok := args.Get(0).(*carbonapi.Estimate); ok {
		return est, args.Error(1)
	}
	return nil, args.Error(1)
}

// NewEstimate returns an estimate of grams.
func NewEstimate(grams int) *carbonapi.Estimate {
	return &carbonapi.Estimate{
		Data: carbonapi.EstimateData{
			ID:   "est-1",
			Type: "estimate",
			Attributes: carbonapi.EstimateAttributes{
				CarbonG:     grams,
				CarbonKg:    float64(grams) / 1000,
				EstimatedAt: "2024-01-01T00:00:00.000Z",
			},
		},
	}
}
