package blobstore

import "context"

type Remover interface {
	// Remove is idempotent; removing a non-existent object is not an error.
	Remove(ctx context.Context, path string) error
}
