package usecase

import (
	"context"

	"mediacore/internal/apperror"
	"mediacore/internal/domain/entity"
	"mediacore/internal/domain/repository/blobstore"
	"mediacore/internal/domain/repository/broker"
	"mediacore/internal/domain/repository/database"
	"mediacore/pkg/logger"
)

type Deleter struct {
	retriever   database.Retriever
	dbRemover   database.Remover
	blobRemover blobstore.Remover
	publisher   broker.Publisher
}

func NewDeleter(retriever database.Retriever, dbRemover database.Remover,
	blobRemover blobstore.Remover, publisher broker.Publisher,
) *Deleter {
	return &Deleter{
		retriever:   retriever,
		dbRemover:   dbRemover,
		blobRemover: blobRemover,
		publisher:   publisher,
	}
}

// Delete removes the blobs and then the document. Deleting an id that has no
// document is a successful no-op. Entries still referencing the id become
// orphaned references; reconciliation reports them, nothing rewrites entries.
func (d *Deleter) Delete(ctx context.Context, id string) error {
	asset, err := d.retriever.GetByID(ctx, id)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil
		}

		return err
	}

	removeAssetBlobs(ctx, d.blobRemover, asset)

	if err := d.dbRemover.Remove(ctx, id); err != nil {
		return err
	}

	if err := d.publisher.Publish(ctx, entity.MediaEvent{Action: entity.ActionDeleted, ID: id}); err != nil {
		logger.Error("failed to publish media deleted event", "id", id, "err", err)
	}

	return nil
}
