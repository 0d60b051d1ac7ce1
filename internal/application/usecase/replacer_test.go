package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediacore/internal/apperror"
	"mediacore/internal/domain/dto"
	"mediacore/internal/domain/entity"
	"mediacore/internal/domain/model"
)

func seedAsset(t *testing.T, db *fakeMediaDB, id string) *model.MediaAsset {
	t.Helper()

	asset := &model.MediaAsset{
		ID:               id,
		OriginalFilename: "old.png",
		StorageFilename:  "old-11aa22bb.png",
		StoragePath:      "media/2026/01/old-11aa22bb.png",
		MimeType:         "image/png",
		URL:              "https://blobs.test/media/2026/01/old-11aa22bb.png",
		ByteSize:         1024,
		Dimensions:       &model.Dimensions{Width: 640, Height: 480},
		Variants: map[string]model.Variant{
			model.VariantThumb: {
				URL:   "https://blobs.test/media/2026/01/old-11aa22bb-thumb.jpg",
				Path:  "media/2026/01/old-11aa22bb-thumb.jpg",
				Width: 320, Height: 240,
			},
		},
		Title:     "Old title",
		CreatedAt: time.Now().Add(-time.Hour),
		UpdatedAt: time.Now().Add(-time.Hour),
	}
	require.NoError(t, db.Create(context.Background(), asset))

	return asset
}

func TestReplaceKeepsID(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{set: imageVariantSet(1024, 768)}
	blobs := newFakeBlobStore()
	db := newFakeMediaDB()
	pub := &fakePublisher{}
	replacer := NewReplacer(gen, blobs, blobs, db, db, pub, 0)

	existing := seedAsset(t, db, "media-1")

	updated, err := replacer.Replace(context.Background(), "media-1", dto.ReplaceRequest{
		Bytes:            pngBytes(t),
		OriginalFilename: "new.png",
	})
	require.NoError(t, err)

	// Identity survives the swap; everything describing the file changed.
	assert.Equal(t, existing.ID, updated.ID)
	assert.Equal(t, "new.png", updated.OriginalFilename)
	assert.NotEqual(t, existing.StoragePath, updated.StoragePath)
	assert.NotEqual(t, existing.URL, updated.URL)
	assert.Equal(t, 1024, updated.Dimensions.Width)
	assert.True(t, updated.UpdatedAt.After(existing.UpdatedAt))

	// Metadata is not part of the file swap.
	assert.Equal(t, "Old title", updated.Title)

	// Old blobs removed only after the document moved on.
	assert.Contains(t, blobs.removed, existing.StoragePath)
	assert.Contains(t, blobs.removed, existing.Variants[model.VariantThumb].Path)

	require.Len(t, pub.events, 1)
	assert.Equal(t, entity.MediaEvent{Action: entity.ActionReplaced, ID: "media-1"}, pub.events[0])
}

func TestReplaceMissingID(t *testing.T) {
	t.Parallel()

	blobs := newFakeBlobStore()
	replacer := NewReplacer(&fakeGenerator{}, blobs, blobs, newFakeMediaDB(), newFakeMediaDB(), &fakePublisher{}, 0)

	updated, err := replacer.Replace(context.Background(), "no-such-id", dto.ReplaceRequest{Bytes: []byte("data")})
	assert.Nil(t, updated)
	assert.True(t, apperror.IsNotFound(err), "got %v", err)
	assert.Zero(t, blobs.putCalls)
}

func TestReplaceEmptyFilenameFallsBack(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{set: imageVariantSet(800, 600)}
	blobs := newFakeBlobStore()
	db := newFakeMediaDB()
	replacer := NewReplacer(gen, blobs, blobs, db, db, &fakePublisher{}, 0)

	seedAsset(t, db, "media-1")

	updated, err := replacer.Replace(context.Background(), "media-1", dto.ReplaceRequest{Bytes: pngBytes(t)})
	require.NoError(t, err)
	assert.Equal(t, "old.png", updated.OriginalFilename)
}

func TestReplaceDeclaredTypeMismatch(t *testing.T) {
	t.Parallel()

	blobs := newFakeBlobStore()
	db := newFakeMediaDB()
	replacer := NewReplacer(&fakeGenerator{}, blobs, blobs, db, db, &fakePublisher{}, 0)

	existing := seedAsset(t, db, "media-1")

	updated, err := replacer.Replace(context.Background(), "media-1", dto.ReplaceRequest{
		Bytes:            []byte("definitely not a jpeg"),
		MimeType:         "image/jpeg",
		OriginalFilename: "photo.jpg",
	})
	assert.Nil(t, updated)
	assert.True(t, apperror.IsType(err, "unprocessable_media"), "got %v", err)

	// The existing asset and its blobs are untouched by the rejected swap.
	assert.Zero(t, blobs.putCalls)
	assert.Empty(t, blobs.removed)

	kept, err := db.GetByID(context.Background(), "media-1")
	require.NoError(t, err)
	assert.Equal(t, existing.StoragePath, kept.StoragePath)
	assert.Equal(t, "image/png", kept.MimeType)
}

func TestReplaceUpdateFailureKeepsOldBlobs(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{set: imageVariantSet(800, 600)}
	blobs := newFakeBlobStore()
	docs := newFakeMediaDB()
	updater := newFakeMediaDB() // empty, so Update reports not found
	replacer := NewReplacer(gen, blobs, blobs, docs, updater, &fakePublisher{}, 0)

	existing := seedAsset(t, docs, "media-1")

	updated, err := replacer.Replace(context.Background(), "media-1", dto.ReplaceRequest{
		Bytes:            pngBytes(t),
		OriginalFilename: "new.png",
	})
	assert.Nil(t, updated)
	require.Error(t, err)

	// Newly staged blobs were rolled back, the old set is untouched.
	assert.Empty(t, blobs.objects)
	assert.NotContains(t, blobs.removed, existing.StoragePath)
}

func TestReplaceTooLarge(t *testing.T) {
	t.Parallel()

	blobs := newFakeBlobStore()
	db := newFakeMediaDB()
	replacer := NewReplacer(&fakeGenerator{}, blobs, blobs, db, db, &fakePublisher{}, 4)

	seedAsset(t, db, "media-1")

	_, err := replacer.Replace(context.Background(), "media-1", dto.ReplaceRequest{Bytes: make([]byte, 5)})
	assert.True(t, apperror.IsType(err, "payload_too_large"), "got %v", err)
	assert.Zero(t, blobs.putCalls)
}
