package cache

import "time"

// Config holds configuration for the Redis cache.
type Config struct {
	// Address is the Redis address (host:port or redis:// URL). Empty disables caching.
	Address string `mapstructure:"address" default:""`
	// Password is the Redis password.
	Password string `mapstructure:"password" default:""`
	// DB is the Redis database index.
	DB int `mapstructure:"db" default:"0"`
	// TTLSeconds is how long cached values live.
	TTLSeconds int `mapstructure:"ttl_seconds" default:"86400"`
}

// Enabled reports whether a Redis address is configured.
func (c Config) Enabled() bool {
	return c.Address != ""
}

// TTL returns the configured time-to-live, defaulting to one day.
func (c Config) TTL() time.Duration {
	if c.TTLSeconds <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(c.TTLSeconds) * time.Second
}
