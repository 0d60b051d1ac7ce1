package database

import "context"

type Remover interface {
	// Remove is idempotent: removing an absent id is not an error.
	Remove(ctx context.Context, id string) error
}
