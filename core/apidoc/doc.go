// Package apidoc builds and serves the OpenAPI document of the service.
//
// The document is assembled once at startup: features describe their operations
// on an *openapi3.T (see core/loader), then WithServers advertises the local
// server built from the configured listening port, and Render freezes the result
// into JSON and YAML.
//
// # Server Descriptor
//
// The document always lists exactly one server:
//
//	http://localhost:<port>
//
// The port comes from server.Config, which is validated by the configuration
// loader before the document is built. Nothing in this package validates it again.
//
// # Serving
//
// Register publishes the rendered document in the swag registry, which is where
// gofiber/swagger reads doc.json from. The Handler exposes:
//
//   - GET /v3/api-docs      : JSON document
//   - GET /v3/api-docs.yaml : YAML document
//   - GET /swagger/*        : Swagger UI
//
// # Usage
//
//	doc := apidoc.NewDocument("Carbon Tracker API", "...", "1.0")
//	mgr.Document(doc)
//	apidoc.WithServers(doc, cfg.Server)
//	spec, err := apidoc.Render(doc)
package apidoc
