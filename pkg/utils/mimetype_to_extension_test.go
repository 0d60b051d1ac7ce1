package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetExtensionFromMimeType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ".png", GetExtensionFromMimeType("image/png"))
	assert.Equal(t, ".mp4", GetExtensionFromMimeType("video/mp4"))
	assert.Equal(t, ".bin", GetExtensionFromMimeType("application/x-never-heard-of-it"))
}

func TestGetMimeTypeFromExtension(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "image/jpeg", GetMimeTypeFromExtension(".jpg"))
	assert.Equal(t, "image/jpeg", GetMimeTypeFromExtension(".jpeg"))
	assert.Equal(t, "application/octet-stream", GetMimeTypeFromExtension(".xyz"))
}
