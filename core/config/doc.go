// Package config provides configuration management for the Carbon Tracker.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, CORS origins)
//   - Database: MySQL or SQLite connection details
//   - Storage: S3/MinIO credentials and export bucket
//   - Cache: Redis address and TTL for cached estimates
//   - Carbon: Carbon Interface API endpoint, key and rate limit
//   - Log: Logging level and format
//
// Defaults live in the `default` struct tags of each section. Environment variables
// use the upper-cased dotted key with underscores, e.g. SERVER_PORT or CARBON_API_KEY.
//
// # Validation
//
// LoadConfig fails fast: a port that is not a number or lies outside 0-65535 is
// reported as an error and the server never starts.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
