package logger

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		level zapcore.Level
	}{
		{"DebugConsole", Config{Level: "debug", Format: "console"}, zapcore.DebugLevel},
		{"InfoJSON", Config{Level: "info", Format: "json"}, zapcore.InfoLevel},
		{"Warn", Config{Level: "warn"}, zapcore.WarnLevel},
		{"UnknownFallsBackToInfo", Config{Level: "verbose"}, zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(&tt.cfg)
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(tt.level))
			assert.False(t, l.Core().Enabled(tt.level-1))
		})
	}
}

func TestWithRayID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	base := zap.New(core)

	app := fiber.New()
	app.Get("/with", func(c *fiber.Ctx) error {
		c.Locals(RayIDKey, "ray-123")
		WithRayID(base, c).Info("with ray")
		return nil
	})
	app.Get("/without", func(c *fiber.Ctx) error {
		WithRayID(base, c).Info("without ray")
		return nil
	})

	_, err := app.Test(httptest.NewRequest("GET", "/with", nil))
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest("GET", "/without", nil))
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "ray-123", entries[0].ContextMap()[RayIDKey])
	assert.NotContains(t, entries[1].ContextMap(), RayIDKey)
}
