package apidoc_test

import (
	"encoding/json"
	"testing"

	"carbon-tracker/core/apidoc"
	"carbon-tracker/core/server"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
	"gopkg.in/yaml.v3"
)

type renderedDoc struct {
	OpenAPI string `json:"openapi" yaml:"openapi"`
	Info    struct {
		Title string `json:"title" yaml:"title"`
	} `json:"info" yaml:"info"`
	Servers []struct {
		URL string `json:"url" yaml:"url"`
	} `json:"servers" yaml:"servers"`
	Paths map[string]any `json:"paths" yaml:"paths"`
}

func newTestDocument(port int) *openapi3.T {
	doc := apidoc.NewDocument("Test API", "Test description", "1.0")
	op := openapi3.NewOperation()
	op.Summary = "Ping"
	op.AddResponse(200, apidoc.JSONResponse("OK", openapi3.NewStringSchema()))
	doc.AddOperation("/ping", "GET", op)
	return apidoc.WithServers(doc, server.Config{Port: port})
}

func TestRender(t *testing.T) {
	spec, err := apidoc.Render(newTestDocument(8080))
	require.NoError(t, err)

	t.Run("JSON", func(t *testing.T) {
		var out renderedDoc
		require.NoError(t, json.Unmarshal(spec.JSON(), &out))

		assert.Equal(t, apidoc.OpenAPIVersion, out.OpenAPI)
		assert.Equal(t, "Test API", out.Info.Title)
		require.Len(t, out.Servers, 1)
		assert.Equal(t, "http://localhost:8080", out.Servers[0].URL)
		assert.Contains(t, out.Paths, "/ping")
	})

	t.Run("YAML", func(t *testing.T) {
		var out renderedDoc
		require.NoError(t, yaml.Unmarshal(spec.YAML(), &out))

		assert.Equal(t, apidoc.OpenAPIVersion, out.OpenAPI)
		require.Len(t, out.Servers, 1)
		assert.Equal(t, "http://localhost:8080", out.Servers[0].URL)
		assert.Contains(t, out.Paths, "/ping")
	})

	t.Run("ReadDoc", func(t *testing.T) {
		assert.Equal(t, string(spec.JSON()), spec.ReadDoc())
	})
}

func TestRegister(t *testing.T) {
	spec, err := apidoc.Render(newTestDocument(443))
	require.NoError(t, err)

	name := "apidoc-register-test"
	require.NoError(t, apidoc.Register(name, spec))

	doc, err := swag.ReadDoc(name)
	require.NoError(t, err)
	assert.Equal(t, spec.ReadDoc(), doc)

	err = apidoc.Register(name, spec)
	assert.ErrorIs(t, err, apidoc.ErrAlreadyRegistered)
}
