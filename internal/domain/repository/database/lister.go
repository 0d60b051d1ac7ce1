package database

import (
	"context"

	"mediacore/internal/domain/dto"
	"mediacore/internal/domain/model"
)

// Lister enumerates media documents for admin listings and reconciliation.
type Lister interface {
	List(ctx context.Context, filter dto.ListFilter) ([]model.MediaAsset, error)
}
