package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mediacore/internal/domain/dto"
	"mediacore/internal/domain/model"
)

type MediaLister struct {
	db *Database
}

func NewMediaLister(db *Database) *MediaLister {
	return &MediaLister{db: db}
}

// List returns media documents matching the filter, newest first. Kind
// filters on the MIME class prefix ("image" or "video").
func (l *MediaLister) List(ctx context.Context, filter dto.ListFilter) ([]model.MediaAsset, error) {
	ctx, cancel := context.WithTimeout(ctx, l.db.QueryTimeout)
	defer cancel()

	coll := l.db.Client.Database(l.db.DBName).Collection(MediaCollection)

	query := bson.M{}
	if filter.Kind != "" {
		query["mime_type"] = bson.M{"$regex": "^" + filter.Kind + "/"}
	}

	if filter.Since != nil || filter.Until != nil {
		createdFilter := bson.M{}
		if filter.Since != nil {
			createdFilter["$gte"] = *filter.Since
		}
		if filter.Until != nil {
			createdFilter["$lte"] = *filter.Until
		}
		query["created_at"] = createdFilter
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := coll.Find(ctx, query, findOpts)
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
