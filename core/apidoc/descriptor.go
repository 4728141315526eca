package apidoc

import (
	"strconv"

	"carbon-tracker/core/server"

	"github.com/getkin/kin-openapi/openapi3"
)

// localPrefix is the scheme and host of every advertised server.
const localPrefix = "http://localhost:"

// ServerDescriptor describes a reachable server endpoint for documentation purposes.
type ServerDescriptor struct {
	// URL is the base URL of the server.
	URL string `json:"url"`
}

// NewServerDescriptor returns the descriptor of the local server listening on port.
func NewServerDescriptor(port int) ServerDescriptor {
	return ServerDescriptor{URL: localPrefix + strconv.Itoa(port)}
}

// Server converts the descriptor into an OpenAPI server object.
func (d ServerDescriptor) Server() *openapi3.Server {
	return &openapi3.Server{URL: d.URL}
}

// WithServers replaces the server list of doc with the single local server
// derived from cfg. The document is modified in place and returned.
func WithServers(doc *openapi3.T, cfg server.Config) *openapi3.T {
	doc.Servers = openapi3.Servers{NewServerDescriptor(cfg.Port).Server()}
	return doc
}
