package database

import (
	"context"

	"mediacore/internal/domain/model"
)

type Writer interface {
	// Create inserts a new document. An existing id is a duplicate-id
	// invariant violation, not an upsert.
	Create(ctx context.Context, asset *model.MediaAsset) error
}
