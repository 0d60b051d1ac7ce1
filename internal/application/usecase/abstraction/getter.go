package abstraction

import (
	"context"

	"mediacore/internal/domain/model"
)

type Getter interface {
	GetMedia(ctx context.Context, id string) (*model.MediaAsset, error)
	GetManyMedia(ctx context.Context, ids []string) ([]model.MediaAsset, error)
}
