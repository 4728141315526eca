package storage

import (
	"strings"
	"time"
)

// defaultTimeout applies when TimeoutSeconds is not positive.
const defaultTimeout = 30 * time.Second

// Config holds configuration for the storage provider.
type Config struct {
	// Endpoint is the URL of the storage service.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket is the name of the bucket exports are written to.
	Bucket string `mapstructure:"bucket" default:"carbon-exports"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Host returns the endpoint without scheme, as MinIO expects it.
func (c Config) Host() string {
	host := strings.TrimPrefix(c.Endpoint, "http://")
	return strings.TrimPrefix(host, "https://")
}

// Timeout returns the connection timeout.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return defaultTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
