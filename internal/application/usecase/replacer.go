package usecase

import (
	"context"

	"mediacore/internal/apperror"
	"mediacore/internal/domain/dto"
	"mediacore/internal/domain/entity"
	"mediacore/internal/domain/model"
	"mediacore/internal/domain/repository/blobstore"
	"mediacore/internal/domain/repository/broker"
	"mediacore/internal/domain/repository/database"
	"mediacore/internal/domain/repository/variant"
	"mediacore/pkg/logger"
)

type Replacer struct {
	ingest    ingestor
	retriever database.Retriever
	updater   database.Updater
	publisher broker.Publisher
	maxBytes  int64
}

func NewReplacer(generator variant.Generator, blobUploader blobstore.Uploader, blobRemover blobstore.Remover,
	retriever database.Retriever, updater database.Updater, publisher broker.Publisher, maxBytes int64,
) *Replacer {
	return &Replacer{
		ingest: ingestor{
			generator:    generator,
			blobUploader: blobUploader,
			blobRemover:  blobRemover,
		},
		retriever: retriever,
		updater:   updater,
		publisher: publisher,
		maxBytes:  maxBytes,
	}
}

// Replace re-runs the pipeline against an existing id. Every field of the
// document changes except the id, which is what keeps content entries
// resolving after the file swap. New blobs land under fresh storage paths;
// the old ones are removed only after the document points at the new set.
func (r *Replacer) Replace(ctx context.Context, id string, req dto.ReplaceRequest) (*model.MediaAsset, error) {
	existing, err := r.retriever.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if r.maxBytes > 0 && int64(len(req.Bytes)) > r.maxBytes {
		return nil, apperror.NewPayloadTooLarge(r.maxBytes)
	}
	if len(req.Bytes) == 0 {
		return nil, apperror.NewUnprocessableMedia("empty upload", nil)
	}

	originalFilename := req.OriginalFilename
	if originalFilename == "" {
		originalFilename = existing.OriginalFilename
	}

	staged, err := r.ingest.stage(ctx, req.Bytes, req.MimeType, originalFilename)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{
		"original_filename": originalFilename,
		"storage_filename":  staged.storageFilename,
		"storage_path":      staged.storagePath,
		"mime_type":         staged.mimeType,
		"url":               staged.primary.URL,
		"byte_size":         staged.primary.Size,
		"dimensions":        staged.dimensions,
		"variants":          staged.variants,
		"poster_url":        staged.posterURL,
		"poster_path":       staged.posterPath,
		"blur_placeholder":  staged.blurPlaceholder,
	}

	updated, err := r.updater.Update(ctx, id, fields)
	if err != nil {
		r.ingest.discard(ctx, staged)

		return nil, err
	}

	removeAssetBlobs(ctx, r.ingest.blobRemover, existing)

	if err := r.publisher.Publish(ctx, entity.MediaEvent{Action: entity.ActionReplaced, ID: id}); err != nil {
		logger.Error("failed to publish media replaced event", "id", id, "err", err)
	}

	return updated, nil
}
