package database

import (
	"context"

	"mediacore/internal/domain/model"
)

type Updater interface {
	// Update merges fields into an existing document and returns the result.
	// Keys are bson field names; "_id" is never permitted. updated_at always
	// advances, whatever the patch contains.
	Update(ctx context.Context, id string, fields map[string]any) (*model.MediaAsset, error)
}
