package abstraction

import (
	"context"

	"mediacore/internal/domain/dto"
)

type Scanner interface {
	Scan(ctx context.Context) (*dto.ReferenceScan, error)
}
