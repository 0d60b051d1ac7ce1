package database

import (
	"context"

	"mediacore/internal/domain/model"
)

// EntrySource yields every live content entry. The reference scanner runs a
// full pass per invocation; nothing is cached between runs.
type EntrySource interface {
	ListEntries(ctx context.Context) ([]model.ContentEntry, error)
}
