package carbonevent

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExportKey(t *testing.T) {
	assert.Equal(t, "exports/carbon-events_2024-01-01_2024-01-31.json", ExportKey(day("2024-01-01"), day("2024-01-31")))
}

func TestService_Export(t *testing.T) {
	ctx := context.Background()

	t.Run("CreatesBucketAndUploads", func(t *testing.T) {
		svc, _, store := setupService(t)
		seed(t, svc,
			CreateUpdateRequest{Type: TypeCar, Date: "2024-01-02", Amount: 5},
			CreateUpdateRequest{Type: TypeFlight, Date: "2024-01-03", Amount: 8},
		)

		var uploaded []byte
		key := "exports/carbon-events_2024-01-01_2024-01-31.json"
		store.On("BucketExists", mock.Anything, "carbon-exports").Return(false, nil)
		store.On("MakeBucket", mock.Anything, "carbon-exports", mock.Anything).Return(nil)
		store.On("PutObject", mock.Anything, "carbon-exports", key, mock.Anything, mock.AnythingOfType("int64"),
			mock.MatchedBy(func(opts minio.PutObjectOptions) bool { return opts.ContentType == "application/json" })).
			Run(func(args mock.Arguments) {
				data, err := io.ReadAll(args.Get(3).(io.Reader))
				require.NoError(t, err)
				uploaded = data
			}).
			Return(minio.UploadInfo{Key: key}, nil)

		result, err := svc.Export(ctx, day("2024-01-01"), day("2024-01-31"))
		require.NoError(t, err)
		assert.Equal(t, &ExportResult{Bucket: "carbon-exports", Key: key, Count: 2}, result)

		var events []Event
		require.NoError(t, json.Unmarshal(uploaded, &events))
		require.Len(t, events, 2)
		assert.Equal(t, TypeCar, events[0].Type)
		store.AssertExpectations(t)
	})

	t.Run("EmptyRange", func(t *testing.T) {
		svc, _, store := setupService(t)
		store.On("BucketExists", mock.Anything, "carbon-exports").Return(true, nil)
		store.On("PutObject", mock.Anything, "carbon-exports", mock.Anything, mock.Anything, int64(2), mock.Anything).
			Return(minio.UploadInfo{}, nil)

		result, err := svc.Export(ctx, day("2024-01-01"), day("2024-01-31"))
		require.NoError(t, err)
		assert.Equal(t, 0, result.Count)
		store.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("UploadFails", func(t *testing.T) {
		svc, _, store := setupService(t)
		store.On("BucketExists", mock.Anything, "carbon-exports").Return(true, nil)
		store.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, errors.New("connection reset"))

		_, err := svc.Export(ctx, day("2024-01-01"), day("2024-01-31"))
		assert.ErrorContains(t, err, "connection reset")
	})

	t.Run("InvalidRange", func(t *testing.T) {
		svc, _, store := setupService(t)
		_, err := svc.Export(ctx, day("2024-02-01"), day("2024-01-01"))
		assert.ErrorIs(t, err, ErrInvalidInput)
		store.AssertNotCalled(t, "BucketExists", mock.Anything, mock.Anything)
	})
}

func TestHandler_Export(t *testing.T) {
	svc, _, store := setupService(t)
	app := setupAppWith(svc)

	store.On("BucketExists", mock.Anything, "carbon-exports").Return(true, nil)
	store.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	req, err := http.NewRequest("POST", BasePath+"/export?start=2024-01-01&end=2024-01-31", bytes.NewReader(nil))
	require.NoError(t, err)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result ExportResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "carbon-exports", result.Bucket)
	assert.Equal(t, "exports/carbon-events_2024-01-01_2024-01-31.json", result.Key)
}
