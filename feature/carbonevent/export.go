package carbonevent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"carbon-tracker/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// exportPrefix is the folder exports are written to.
const exportPrefix = "exports/"

// ExportKey returns the object key of the export for the given range.
func ExportKey(start, end time.Time) string {
	return fmt.Sprintf("%scarbon-events_%s_%s.json", exportPrefix, start.Format(DateLayout), end.Format(DateLayout))
}

// Export writes the events dated between start and end as a JSON array to object storage.
// The bucket is created when it does not exist. An existing export of the same range is replaced.
func (s *Service) Export(ctx context.Context, start, end time.Time) (*ExportResult, error) {
	events, err := s.ListInRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(events)
	if err != nil {
		return nil, fmt.Errorf("failed to encode export: %w", err)
	}

	if err := storage.EnsureBucket(ctx, s.store, s.bucket, s.region); err != nil {
		return nil, err
	}

	key := ExportKey(start, end)
	_, err = s.store.PutObject(ctx, s.bucket, key, bytes.NewReader(payload), int64(len(payload)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload export %s: %w", key, err)
	}

	s.logger.Info("Exported carbon events",
		zap.String("bucket", s.bucket),
		zap.String("key", key),
		zap.Int("count", len(events)))

	return &ExportResult{Bucket: s.bucket, Key: key, Count: len(events)}, nil
}
