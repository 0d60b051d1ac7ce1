package blobstore

import (
	"context"

	"mediacore/internal/domain/entity"
)

type Lister interface {
	// List returns one page of stored objects under prefix, resuming from
	// cursor. An empty cursor starts from the beginning; an empty NextCursor
	// on the returned page means the listing is exhausted. The sequence is
	// lazy, finite and restartable.
	List(ctx context.Context, prefix, cursor string, limit int) (entity.BlobPage, error)
}
