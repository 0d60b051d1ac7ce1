package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	MediaCollection   = "media"
	EntriesCollection = "entries"
)

type Database struct {
	DBName       string
	QueryTimeout time.Duration
	Client       *mongo.Client
}

func Connect(cfg Config) (*Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ConnectionTimeout)*time.Millisecond)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(time.Duration(cfg.ConnectionTimeout) * time.Millisecond).
		SetBSONOptions(&options.BSONOptions{
			NilSliceAsEmpty: true,
			NilMapAsEmpty:   true,
		})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	qCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.QueryTimeout)*time.Millisecond)
	defer cancel()

	if err := client.Ping(qCtx, nil); err != nil {
		return nil, err
	}

	db := &Database{
		Client:       client,
		DBName:       cfg.DBName,
		QueryTimeout: time.Duration(cfg.QueryTimeout) * time.Millisecond,
	}

	if err := initMediaCollection(db); err != nil {
		return nil, err
	}

	return db, nil
}

func initMediaCollection(db *Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), db.QueryTimeout)
	defer cancel()

	collections, err := db.Client.Database(db.DBName).ListCollectionNames(ctx, bson.M{"name": MediaCollection})
	if err != nil {
		return err
	}
	if len(collections) > 0 {
		return nil // already exists
	}

	collOpts := options.CreateCollection().SetValidator(bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": []string{"_id", "storage_path", "mime_type", "url", "created_at", "updated_at"},
			"properties": bson.M{
				"_id":               bson.M{"bsonType": "string"},
				"original_filename": bson.M{"bsonType": "string"},
				"storage_filename":  bson.M{"bsonType": "string"},
				"storage_path":      bson.M{"bsonType": "string"},
				"mime_type":         bson.M{"bsonType": "string"},
				"url":               bson.M{"bsonType": "string"},
				"byte_size":         bson.M{"bsonType": []string{"long", "int"}},
				"dimensions": bson.M{
					"bsonType": []string{"object", "null"},
					"properties": bson.M{
						"width":  bson.M{"bsonType": "int"},
						"height": bson.M{"bsonType": "int"},
					},
				},
				"variants": bson.M{
					"bsonType": "object",
					"additionalProperties": bson.M{
						"bsonType": "object",
						"required": []string{"url"},
						"properties": bson.M{
							"url":    bson.M{"bsonType": "string"},
							"path":   bson.M{"bsonType": "string"},
							"width":  bson.M{"bsonType": "int"},
							"height": bson.M{"bsonType": "int"},
						},
					},
				},
				"poster_url":       bson.M{"bsonType": "string"},
				"poster_path":      bson.M{"bsonType": "string"},
				"blur_placeholder": bson.M{"bsonType": "string"},
				"title":            bson.M{"bsonType": "string"},
				"alt_text":         bson.M{"bsonType": "string"},
				"tags": bson.M{
					"bsonType": "array",
					"items":    bson.M{"bsonType": "string"},
				},
				"created_at": bson.M{"bsonType": "date"},
				"updated_at": bson.M{"bsonType": "date"},
			},
		},
	})

	err = db.Client.Database(db.DBName).CreateCollection(ctx, MediaCollection, collOpts)
	if err != nil {
		return err
	}

	coll := db.Client.Database(db.DBName).Collection(MediaCollection)
	_, err = coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "mime_type", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	})

	return err
}

func (db *Database) Stop() error {
	if err := db.Client.Disconnect(context.Background()); err != nil {
		return err
	}

	return nil
}
