// Package server holds the HTTP server configuration.
//
// While the main application entry point handles the server startup, this package
// defines the configuration structure and its validation. The configured port is
// also the port advertised in the OpenAPI document (see core/apidoc).
//
// # Configuration
//
// The Config struct defines the HTTP port, the API key and the allowed CORS origins.
// Validate rejects ports outside the TCP range so that a bad value fails at startup
// instead of producing a malformed server URL.
package server
