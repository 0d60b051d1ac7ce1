package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"mediacore/internal/domain/model"
)

// EntryLister reads the content entries owned by the host CMS. This core
// only ever reads them; orphaned references are reported, never fixed by
// mutating an entry.
type EntryLister struct {
	db *Database
}

func NewEntryLister(db *Database) *EntryLister {
	return &EntryLister{db: db}
}

func (l *EntryLister) ListEntries(ctx context.Context) ([]model.ContentEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, l.db.QueryTimeout)
	defer cancel()

	coll := l.db.Client.Database(l.db.DBName).Collection(EntriesCollection)

	cursor, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []model.ContentEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}
