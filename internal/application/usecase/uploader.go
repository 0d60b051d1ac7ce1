package usecase

import (
	"context"
	"time"

	"mediacore/internal/apperror"
	"mediacore/internal/domain/dto"
	"mediacore/internal/domain/entity"
	"mediacore/internal/domain/model"
	"mediacore/internal/domain/repository/blobstore"
	"mediacore/internal/domain/repository/broker"
	"mediacore/internal/domain/repository/database"
	"mediacore/internal/domain/repository/variant"
	"mediacore/pkg/logger"
	"mediacore/pkg/utils"
)

type Uploader struct {
	ingest    ingestor
	writer    database.Writer
	publisher broker.Publisher
	maxBytes  int64
}

func NewUploader(generator variant.Generator, blobUploader blobstore.Uploader, blobRemover blobstore.Remover,
	writer database.Writer, publisher broker.Publisher, maxBytes int64,
) *Uploader {
	return &Uploader{
		ingest: ingestor{
			generator:    generator,
			blobUploader: blobUploader,
			blobRemover:  blobRemover,
		},
		writer:    writer,
		publisher: publisher,
		maxBytes:  maxBytes,
	}
}

// Upload runs the full ingestion pipeline: size ceiling, variant generation,
// blob writes, then exactly one document insert. The document is created only
// after every blob write succeeded, so no reader ever sees a half-populated
// variants map.
func (u *Uploader) Upload(ctx context.Context, req dto.UploadRequest) (*model.MediaAsset, error) {
	if u.maxBytes > 0 && int64(len(req.Bytes)) > u.maxBytes {
		return nil, apperror.NewPayloadTooLarge(u.maxBytes)
	}
	if len(req.Bytes) == 0 {
		return nil, apperror.NewUnprocessableMedia("empty upload", nil)
	}

	staged, err := u.ingest.stage(ctx, req.Bytes, req.MimeType, req.OriginalFilename)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	asset := &model.MediaAsset{
		ID:               utils.AllocateID(),
		OriginalFilename: req.OriginalFilename,
		StorageFilename:  staged.storageFilename,
		StoragePath:      staged.storagePath,
		MimeType:         staged.mimeType,
		URL:              staged.primary.URL,
		ByteSize:         staged.primary.Size,
		Dimensions:       staged.dimensions,
		Variants:         staged.variants,
		PosterURL:        staged.posterURL,
		PosterPath:       staged.posterPath,
		BlurPlaceholder:  staged.blurPlaceholder,
		Title:            req.Title,
		AltText:          req.AltText,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := u.writer.Create(ctx, asset); err != nil {
		u.ingest.discard(ctx, staged)

		return nil, err
	}

	if err := u.publisher.Publish(ctx, entity.MediaEvent{Action: entity.ActionCreated, ID: asset.ID}); err != nil {
		logger.Error("failed to publish media created event", "id", asset.ID, "err", err)
	}

	return asset, nil
}
