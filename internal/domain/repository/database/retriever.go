package database

import (
	"context"

	"mediacore/internal/domain/model"
)

type Retriever interface {
	GetByID(ctx context.Context, id string) (*model.MediaAsset, error)

	// GetManyByIDs omits missing ids silently; callers compare lengths to
	// tell "found" from "requested".
	GetManyByIDs(ctx context.Context, ids []string) ([]model.MediaAsset, error)
}
