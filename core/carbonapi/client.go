package carbonapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

var (
	// ErrUnexpectedStatus is returned when the API answers with a non-2xx status.
	ErrUnexpectedStatus = errors.New("carbon api returned unexpected status")
	// ErrEmptyResponse is returned when the API answers without an estimate.
	ErrEmptyResponse = errors.New("carbon api returned no estimate")
)

// Estimator computes carbon estimates.
type Estimator interface {
	Estimate(ctx context.Context, req Request) (*Estimate, error)
}

// Client calls the Carbon Interface estimates API.
type Client struct {
	baseURL string
	apiKey  string
	timeout time.Duration
	limiter *rate.Limiter
}

// NewClient creates a new API client.
func NewClient(cfg Config) *Client {
	perSecond := cfg.RatePerSecond
	if perSecond <= 0 {
		perSecond = 1
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.ApiKey,
		timeout: cfg.Timeout(),
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
	}
}

// Estimate posts req to the API and decodes the estimate.
// It blocks until the rate limiter admits the request or ctx is done.
func (c *Client) Estimate(ctx context.Context, req Request) (*Estimate, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("carbon api rate limit: %w", err)
	}

	agent := fiber.Post(c.baseURL)
	agent.Set(fiber.HeaderAuthorization, "Bearer "+c.apiKey)
	agent.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	agent.Timeout(c.timeout)
	agent.JSON(req)
	if err := agent.Parse(); err != nil {
		return nil, fmt.Errorf("carbon api request failed: %w", err)
	}

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("carbon api request failed: %w", errors.Join(errs...))
	}
	if code < fiber.StatusOK || code >= fiber.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %d: %s", ErrUnexpectedStatus, code, snippet(body))
	}
	if len(body) == 0 {
		return nil, ErrEmptyResponse
	}

	var estimate Estimate
	if err := json.Unmarshal(body, &estimate); err != nil {
		return nil, fmt.Errorf("failed to decode carbon api response: %w", err)
	}
	if estimate.Data.ID == "" && estimate.Data.Attributes.EstimatedAt == "" {
		return nil, ErrEmptyResponse
	}

	return &estimate, nil
}

func snippet(body []byte) string {
	const limit = 200
	if len(body) > limit {
		return string(body[:limit]) + "..."
	}
	return string(body)
}
