package apidoc

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// OpenAPIVersion is the version of the OpenAPI specification the document follows.
const OpenAPIVersion = "3.0.3"

// NewDocument creates an empty OpenAPI document with the given info.
func NewDocument(title, description, version string) *openapi3.T {
	return &openapi3.T{
		OpenAPI: OpenAPIVersion,
		Info: &openapi3.Info{
			Title:       title,
			Description: description,
			Version:     version,
		},
		Paths: openapi3.NewPaths(),
	}
}

// ErrorSchema is the schema of the {"error": "..."} body returned on failures.
func ErrorSchema() *openapi3.Schema {
	return openapi3.NewObjectSchema().WithProperty("error", openapi3.NewStringSchema())
}

// JSONResponse returns a response with the given description and JSON body schema.
func JSONResponse(description string, schema *openapi3.Schema) *openapi3.Response {
	return openapi3.NewResponse().WithDescription(description).WithJSONSchema(schema)
}

// ErrorResponse returns a response carrying an error body.
func ErrorResponse(description string) *openapi3.Response {
	return JSONResponse(description, ErrorSchema())
}
