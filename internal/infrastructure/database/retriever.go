package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"mediacore/internal/apperror"
	"mediacore/internal/domain/model"
)

type MediaRetriever struct {
	db *Database
}

func NewMediaRetriever(db *Database) *MediaRetriever {
	return &MediaRetriever{db: db}
}

func (r *MediaRetriever) GetByID(ctx context.Context, id string) (*model.MediaAsset, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(MediaCollection)

	var asset model.MediaAsset
	err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&asset)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NewNotFound(fmt.Sprintf("media %q not found", id))
		}

		return nil, err
	}

	return &asset, nil
}

// GetManyByIDs returns the documents that exist; missing ids are omitted, not
// errors. Callers that care compare the result length with the request.
func (r *MediaRetriever) GetManyByIDs(ctx context.Context, ids []string) ([]model.MediaAsset, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(MediaCollection)

	cursor, err := coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var assets []model.MediaAsset
	if err := cursor.All(ctx, &assets); err != nil {
		return nil, err
	}

	return assets, nil
}
