package health

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"carbon-tracker/core/apidoc"
	"carbon-tracker/core/loader"
	"carbon-tracker/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(svc *Service) *fiber.App {
	app := fiber.New()
	NewHandler(svc).RegisterRoutes(app)
	return app
}

func TestHandleHealth(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		store := new(mocks.Client)
		store.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
		app := setupTestApp(NewService(setupSQLite(t), store, "test-bucket", nil, zap.NewNop()))

		resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var report Report
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
		assert.Equal(t, StatusOK, report.Status)
		assert.Len(t, report.Components, 3)
	})

	t.Run("Unhealthy", func(t *testing.T) {
		store := new(mocks.Client)
		store.On("BucketExists", mock.Anything, "test-bucket").Return(false, errors.New("access denied"))
		app := setupTestApp(NewService(setupSQLite(t), store, "test-bucket", nil, zap.NewNop()))

		resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
		require.NoError(t, err)
		assert.Equal(t, 503, resp.StatusCode)

		var report Report
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
		assert.Equal(t, StatusError, report.Status)
		assert.Equal(t, StatusError, report.Components["storage"].Status)
	})
}

func TestLoader(t *testing.T) {
	feature := NewFeature(NewService(nil, nil, "", nil, zap.NewNop()))

	var _ loader.Feature = feature
	var _ loader.Documented = feature

	assert.Equal(t, "health", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	assert.NoError(t, feature.Load(app))

	doc := apidoc.NewDocument("test", "", "1.0")
	feature.Document(doc)
	item := doc.Paths.Value(Path)
	require.NotNil(t, item)
	require.NotNil(t, item.Get)
	assert.Equal(t, "health", item.Get.OperationID)
	assert.NotNil(t, item.Get.Responses.Status(503))
}
