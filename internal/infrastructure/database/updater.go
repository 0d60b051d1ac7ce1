package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mediacore/internal/apperror"
	"mediacore/internal/domain/model"
)

type MediaUpdater struct {
	db *Database
}

func NewMediaUpdater(db *Database) *MediaUpdater {
	return &MediaUpdater{db: db}
}

// Update merges fields into one document and returns the updated state.
// updated_at always advances; the id cannot be changed through this path.
func (u *MediaUpdater) Update(ctx context.Context, id string, fields map[string]any) (*model.MediaAsset, error) {
	ctx, cancel := context.WithTimeout(ctx, u.db.QueryTimeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now()}
	for key, value := range fields {
		if key == "_id" {
			continue
		}
		set[key] = value
	}

	coll := u.db.Client.Database(u.db.DBName).Collection(MediaCollection)

	after := options.After
	var asset model.MediaAsset
	err := coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		&options.FindOneAndUpdateOptions{ReturnDocument: &after},
	).Decode(&asset)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NewNotFound(fmt.Sprintf("media %q not found", id))
		}

		return nil, err
	}

	return &asset, nil
}
