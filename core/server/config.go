package server

import (
	"fmt"
	"strconv"
)

const (
	// MinPort and MaxPort bound the listening port.
	MinPort = 0
	MaxPort = 65535
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port int `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// CorsOrigins is the comma separated list of allowed CORS origins.
	CorsOrigins string `mapstructure:"cors_origins" default:"*"`
}

// Validate checks that the configured port is a usable TCP port.
func (c Config) Validate() error {
	if c.Port < MinPort || c.Port > MaxPort {
		return fmt.Errorf("server port %d out of range [%d, %d]", c.Port, MinPort, MaxPort)
	}
	return nil
}

// Address returns the listen address for the configured port.
func (c Config) Address() string {
	return ":" + strconv.Itoa(c.Port)
}
