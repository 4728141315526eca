package carbonapi

import "time"

// Config holds configuration for the Carbon Interface API client.
type Config struct {
	// BaseURL is the estimates endpoint.
	BaseURL string `mapstructure:"base_url" default:"https://www.carboninterface.com/api/v1/estimates"`
	// ApiKey is the bearer token sent with every request.
	ApiKey string `mapstructure:"api_key" default:""`
	// TimeoutSeconds is the request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// RatePerSecond limits outgoing requests.
	RatePerSecond float64 `mapstructure:"rate_per_second" default:"2"`
	// Burst is the number of requests allowed above the rate.
	Burst int `mapstructure:"burst" default:"4"`
}

// Timeout returns the request timeout, defaulting to 30 seconds.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
