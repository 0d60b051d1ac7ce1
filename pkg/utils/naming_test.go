package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocateID(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})
	for range 1000 {
		id := AllocateID()
		_, err := uuid.Parse(id)
		require.NoError(t, err)

		_, dup := seen[id]
		require.False(t, dup, "allocated id %q twice", id)
		seen[id] = struct{}{}
	}
}

func TestBuildStorageFilename(t *testing.T) {
	t.Parallel()

	name := BuildStorageFilename("Sunset at the Beach.PNG", "image/png")
	assert.True(t, strings.HasPrefix(name, "sunset-at-the-beach-"), "got %q", name)
	assert.True(t, strings.HasSuffix(name, ".png"), "got %q", name)

	// Repeated uploads of the same filename must not collide.
	other := BuildStorageFilename("Sunset at the Beach.PNG", "image/png")
	assert.NotEqual(t, name, other)
}

func TestBuildStorageFilenameNoExtension(t *testing.T) {
	t.Parallel()

	name := BuildStorageFilename("clip", "video/mp4")
	assert.True(t, strings.HasSuffix(name, ".mp4"), "got %q", name)
}

func TestBuildStorageFilenameUnusableName(t *testing.T) {
	t.Parallel()

	name := BuildStorageFilename("???.jpg", "image/jpeg")
	assert.True(t, strings.HasPrefix(name, "file-"), "got %q", name)
}

func TestBuildStoragePath(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 12, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "media/2026/08/sunset-ab12cd34.png",
		BuildStoragePath("sunset-ab12cd34.png", now))
}

func TestVariantPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		primary  string
		variant  string
		ext      string
		expected string
	}{
		{"thumb", "media/2026/08/sunset-ab12cd34.png", "thumb", ".jpg", "media/2026/08/sunset-ab12cd34-thumb.jpg"},
		{"web keeps png", "media/2026/08/sunset-ab12cd34.png", "web", ".png", "media/2026/08/sunset-ab12cd34-web.png"},
		{"poster", "media/2026/08/clip-ffee0011.mp4", "poster", ".jpg", "media/2026/08/clip-ffee0011-poster.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, VariantPath(tt.primary, tt.variant, tt.ext))
		})
	}
}

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       string
		expected string
	}{
		{"Sunset at the Beach", "sunset-at-the-beach"},
		{"héllo wörld", "h-llo-w-rld"},
		{"--already--dashed--", "already-dashed"},
		{"UPPER_case 42", "upper-case-42"},
		{"!!!", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Slugify(tt.in), "input %q", tt.in)
	}
}
