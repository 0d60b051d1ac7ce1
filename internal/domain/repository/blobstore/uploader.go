package blobstore

import (
	"context"

	"mediacore/internal/domain/entity"
)

type Uploader interface {
	// Put durably stores bytes under path and returns the resolvable URL.
	// One call per variant; calls for the same logical asset are independent.
	Put(ctx context.Context, path string, data []byte, mimeType string) (entity.PutResult, error)
}
