package carbonevent

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"carbon-tracker/core/apidoc"
	"carbon-tracker/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeature_Load(t *testing.T) {
	svc, _, _ := setupService(t)
	feature := NewFeature(svc)

	var _ loader.Feature = feature
	var _ loader.Documented = feature

	assert.Equal(t, "carbon-events", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	require.NoError(t, feature.Load(app))

	resp, err := app.Test(httptest.NewRequest("GET", BasePath+"/accumulate?start=2024-01-01&end=2024-01-02", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestDocument(t *testing.T) {
	doc := apidoc.NewDocument("test", "", "1.0")
	NewFeature(nil).Document(doc)

	byID := doc.Paths.Value(BasePath + "/{id}")
	require.NotNil(t, byID)
	assert.Equal(t, "getCarbonEventById", byID.Get.OperationID)
	assert.Equal(t, "updateCarbonEvent", byID.Put.OperationID)
	assert.Equal(t, "deleteCarbonEvent", byID.Delete.OperationID)

	root := doc.Paths.Value(BasePath)
	require.NotNil(t, root)
	assert.NotNil(t, root.Get)
	assert.NotNil(t, root.Post)
	assert.NotNil(t, root.Delete)
	require.Len(t, root.Get.Parameters, 2)
	assert.Equal(t, "start", root.Get.Parameters[0].Value.Name)
	assert.True(t, root.Get.Parameters[0].Value.Required)

	for _, path := range []string{"/accumulate", "/accumulate/by-type"} {
		item := doc.Paths.Value(BasePath + path)
		require.NotNil(t, item, path)
		assert.NotNil(t, item.Get, path)
	}
	for _, path := range []string{"/flight", "/car", "/shipping", "/export"} {
		item := doc.Paths.Value(BasePath + path)
		require.NotNil(t, item, path)
		assert.NotNil(t, item.Post, path)
		assert.Equal(t, []string{"carbon-events"}, item.Post.Tags)
	}

	flight := doc.Paths.Value(BasePath + "/flight").Post
	require.NotNil(t, flight.RequestBody)
	assert.True(t, flight.RequestBody.Value.Required)
	assert.NotNil(t, flight.Responses.Status(http.StatusBadGateway))
}

func TestDocument_CoversEveryRoute(t *testing.T) {
	app := fiber.New()
	NewHandler(nil).RegisterRoutes(app)

	doc := apidoc.NewDocument("test", "", "1.0")
	Document(doc)

	checked := 0
	for _, route := range app.GetRoutes(true) {
		switch route.Method {
		case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
		default:
			continue
		}
		path := strings.TrimSuffix(strings.ReplaceAll(route.Path, ":id", "{id}"), "/")
		item := doc.Paths.Value(path)
		require.NotNil(t, item, "%s %s is not documented", route.Method, path)
		assert.NotNil(t, item.GetOperation(route.Method), "%s %s is not documented", route.Method, path)
		checked++
	}
	assert.Equal(t, 12, checked)
}
