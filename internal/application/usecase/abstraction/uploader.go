package abstraction

import (
	"context"

	"mediacore/internal/domain/dto"
	"mediacore/internal/domain/model"
)

type Uploader interface {
	Upload(ctx context.Context, req dto.UploadRequest) (*model.MediaAsset, error)
}
