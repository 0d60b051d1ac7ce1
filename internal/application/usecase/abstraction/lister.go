package abstraction

import (
	"context"

	"mediacore/internal/domain/dto"
)

type Lister interface {
	ListMedia(ctx context.Context, filter dto.ListFilter) ([]dto.MediaDescriptor, error)
}
