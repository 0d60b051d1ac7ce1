package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"mediacore/internal/domain/dto"
	"mediacore/internal/domain/model"
)

func TestListByKind(t *testing.T) {
	t.Parallel()
	uri := setupMongo(t)
	db := connectTestDB(t, uri)

	writer := NewMediaWriter(db)
	lister := NewMediaLister(db)
	ctx := context.Background()

	image := baseAsset("media-image")
	require.NoError(t, writer.Create(ctx, image))

	video := baseAsset("media-video")
	video.MimeType = "video/mp4"
	video.StoragePath = "media/2026/08/clip-ffee0011.mp4"
	require.NoError(t, writer.Create(ctx, video))

	images, err := lister.List(ctx, dto.ListFilter{Kind: "image"})
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, "media-image", images[0].ID)

	videos, err := lister.List(ctx, dto.ListFilter{Kind: "video"})
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, "media-video", videos[0].ID)

	everything, err := lister.List(ctx, dto.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, everything, 2)
}

func TestListNewestFirst(t *testing.T) {
	t.Parallel()
	uri := setupMongo(t)
	db := connectTestDB(t, uri)

	writer := NewMediaWriter(db)
	lister := NewMediaLister(db)
	ctx := context.Background()

	older := baseAsset("media-older")
	older.CreatedAt = time.Now().Add(-2 * time.Hour)
	require.NoError(t, writer.Create(ctx, older))

	newer := baseAsset("media-newer")
	newer.CreatedAt = time.Now()
	require.NoError(t, writer.Create(ctx, newer))

	assets, err := lister.List(ctx, dto.ListFilter{})
	require.NoError(t, err)
	require.Len(t, assets, 2)
	assert.Equal(t, "media-newer", assets[0].ID)
	assert.Equal(t, "media-older", assets[1].ID)
}

func TestListTimeWindow(t *testing.T) {
	t.Parallel()
	uri := setupMongo(t)
	db := connectTestDB(t, uri)

	writer := NewMediaWriter(db)
	lister := NewMediaLister(db)
	ctx := context.Background()

	old := baseAsset("media-old")
	old.CreatedAt = time.Now().Add(-48 * time.Hour)
	require.NoError(t, writer.Create(ctx, old))

	recent := baseAsset("media-recent")
	require.NoError(t, writer.Create(ctx, recent))

	since := time.Now().Add(-time.Hour)
	assets, err := lister.List(ctx, dto.ListFilter{Since: &since})
	require.NoError(t, err)
	require.Len(t, assets, 1)
	assert.Equal(t, "media-recent", assets[0].ID)

	until := time.Now().Add(-24 * time.Hour)
	assets, err = lister.List(ctx, dto.ListFilter{Until: &until})
	require.NoError(t, err)
	require.Len(t, assets, 1)
	assert.Equal(t, "media-old", assets[0].ID)
}

func TestListEntries(t *testing.T) {
	t.Parallel()
	uri := setupMongo(t)
	db := connectTestDB(t, uri)

	coll := db.Client.Database(TestDBName).Collection(EntriesCollection)
	ctx := context.Background()

	_, err := coll.InsertMany(ctx, []any{
		bson.M{
			"_id":        "post-1",
			"collection": "posts",
			"data": bson.M{
				"coverImage": "media-a",
				"gallery":    bson.A{"media-b", "media-c"},
			},
			"updated_at": time.Now(),
		},
		bson.M{
			"_id":        "post-2",
			"collection": "posts",
			"data":       bson.M{"coverImage": nil},
			"updated_at": time.Now(),
		},
	})
	require.NoError(t, err)

	entries, err := NewEntryLister(db).ListEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	byID := map[string]model.ContentEntry{}
	for _, e := range entries {
		byID[e.ID] = e
	}

	post1 := byID["post-1"]
	assert.Equal(t, "posts", post1.Collection)
	assert.Equal(t, "media-a", post1.Data["coverImage"])

	// Mongo arrays decode as primitive.A, which the reference scanner
	// flattens alongside plain []any.
	gallery, ok := post1.Data["gallery"].(primitive.A)
	require.True(t, ok, "gallery decoded as %T", post1.Data["gallery"])
	assert.Len(t, gallery, 2)
}
