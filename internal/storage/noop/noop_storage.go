package noop

import (
	"context"
	"fmt"
	"log/slog"

	"sentsplit/internal/logger"
	"sentsplit/internal/port"
)

type noopStorage struct {
	logger *slog.Logger
}

// NewNoopStorage creates an ObjectStorage that discards uploads and logs the
// key that would have been written.
func NewNoopStorage() port.ObjectStorage {
	return &noopStorage{logger: logger.WithComponent("noop-storage")}
}

func (s *noopStorage) Upload(_ context.Context, input port.UploadInput) (*port.UploadOutput, error) {
	s.logger.Debug("archive skipped", "bucket", input.Bucket, "key", input.Key, "size", input.Size)
	return &port.UploadOutput{Location: fmt.Sprintf("noop://%s/%s", input.Bucket, input.Key)}, nil
}
