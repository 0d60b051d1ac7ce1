package database

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"mediacore/internal/apperror"
	"mediacore/internal/domain/model"
)

type MediaWriter struct {
	db *Database
}

func NewMediaWriter(db *Database) *MediaWriter {
	return &MediaWriter{db: db}
}

// Create inserts the document for a fully staged asset. The unique _id index
// turns an identity collision into DuplicateID here, as a defense-in-depth
// check behind the UUID allocator.
func (w *MediaWriter) Create(ctx context.Context, asset *model.MediaAsset) error {
	ctx, cancel := context.WithTimeout(ctx, w.db.QueryTimeout)
	defer cancel()

	coll := w.db.Client.Database(w.db.DBName).Collection(MediaCollection)

	_, err := coll.InsertOne(ctx, asset)
	if mongo.IsDuplicateKeyError(err) {
		return apperror.NewDuplicateID(asset.ID, err)
	}

	return err
}
