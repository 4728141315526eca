package apidoc_test

import (
	"strconv"
	"testing"

	"carbon-tracker/core/apidoc"
	"carbon-tracker/core/server"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServerDescriptor(t *testing.T) {
	tests := []struct {
		name string
		port int
		want string
	}{
		{"Default", 8080, "http://localhost:8080"},
		{"Zero", 0, "http://localhost:0"},
		{"HTTPS", 443, "http://localhost:443"},
		{"Max", 65535, "http://localhost:65535"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apidoc.NewServerDescriptor(tt.port).URL)
		})
	}
}

func TestNewServerDescriptor_AllPorts(t *testing.T) {
	for p := server.MinPort; p <= server.MaxPort; p++ {
		d := apidoc.NewServerDescriptor(p)
		if d.URL != "http://localhost:"+strconv.Itoa(p) {
			t.Fatalf("port %d: unexpected url %q", p, d.URL)
		}
	}
}

func TestNewServerDescriptor_Idempotent(t *testing.T) {
	assert.Equal(t, apidoc.NewServerDescriptor(8080), apidoc.NewServerDescriptor(8080))
}

func TestWithServers(t *testing.T) {
	t.Run("EmptyDocument", func(t *testing.T) {
		doc := apidoc.NewDocument("Test", "", "1.0")

		apidoc.WithServers(doc, server.Config{Port: 8080})

		require.Len(t, doc.Servers, 1)
		assert.Equal(t, "http://localhost:8080", doc.Servers[0].URL)
	})

	t.Run("OverwritesPriorServers", func(t *testing.T) {
		doc := apidoc.NewDocument("Test", "", "1.0")
		doc.Servers = openapi3.Servers{
			{URL: "https://api.example.com"},
			{URL: "https://staging.example.com"},
		}

		apidoc.WithServers(doc, server.Config{Port: 443})

		require.Len(t, doc.Servers, 1)
		assert.Equal(t, "http://localhost:443", doc.Servers[0].URL)
	})

	t.Run("Twice", func(t *testing.T) {
		doc := apidoc.NewDocument("Test", "", "1.0")
		cfg := server.Config{Port: 0}

		apidoc.WithServers(doc, cfg)
		first := *doc.Servers[0]
		apidoc.WithServers(doc, cfg)

		require.Len(t, doc.Servers, 1)
		assert.Equal(t, first, *doc.Servers[0])
	})

	t.Run("KeepsInfo", func(t *testing.T) {
		doc := apidoc.NewDocument("Carbon", "desc", "2.0")

		out := apidoc.WithServers(doc, server.Config{Port: 9000})

		assert.Same(t, doc, out)
		assert.Equal(t, "Carbon", out.Info.Title)
		assert.Equal(t, "2.0", out.Info.Version)
	})
}
