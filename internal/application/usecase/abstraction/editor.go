package abstraction

import (
	"context"

	"mediacore/internal/domain/dto"
	"mediacore/internal/domain/model"
)

type Editor interface {
	UpdateMetadata(ctx context.Context, id string, patch dto.MetadataPatch) (*model.MediaAsset, error)
}
