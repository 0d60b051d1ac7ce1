package abstraction

import (
	"context"

	"mediacore/internal/domain/dto"
	"mediacore/internal/domain/model"
)

type Replacer interface {
	Replace(ctx context.Context, id string, req dto.ReplaceRequest) (*model.MediaAsset, error)
}
