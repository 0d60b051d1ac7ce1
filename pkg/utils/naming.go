package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// AllocateID returns a new globally unique opaque media id. The id is the
// join key content entries reference; it never appears in storage paths.
func AllocateID() string {
	return uuid.New().String()
}

// BuildStorageFilename derives a collision-resistant object name from the
// user-supplied filename: a URL-safe slug of the base name plus a short
// random suffix, so repeated uploads of "sunset.png" never clash. The
// original extension is kept when present, falling back to the MIME type.
func BuildStorageFilename(originalFilename, mimeType string) string {
	ext := strings.ToLower(path.Ext(originalFilename))
	if ext == "" || ext == "." {
		ext = GetExtensionFromMimeType(mimeType)
	}

	base := strings.TrimSuffix(path.Base(originalFilename), path.Ext(originalFilename))
	slug := Slugify(base)
	if slug == "" {
		slug = "file"
	}

	return fmt.Sprintf("%s-%s%s", slug, randomSuffix(), ext)
}

// BuildStoragePath places an object under a media/YYYY/MM prefix so raw
// listings stay human-scannable.
func BuildStoragePath(storageFilename string, now time.Time) string {
	return path.Join("media", now.UTC().Format("2006/01"), storageFilename)
}

// VariantPath derives the storage path of a named variant from the primary
// path: "media/2026/08/sunset-ab12cd34.png" -> ".../sunset-ab12cd34-thumb.jpg".
// Variants are always re-encoded, so the extension is the variant's own.
func VariantPath(primaryPath, variantName, variantExt string) string {
	ext := path.Ext(primaryPath)
	base := strings.TrimSuffix(primaryPath, ext)

	return fmt.Sprintf("%s-%s%s", base, variantName, variantExt)
}

// Slugify lowers a name to URL-safe ascii: letters and digits survive, runs
// of anything else collapse to a single dash.
func Slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) && r < 128, unicode.IsDigit(r) && r < 128:
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}

func randomSuffix() string {
	buf := make([]byte, 4)
	_, _ = rand.Read(buf)

	return hex.EncodeToString(buf)
}
