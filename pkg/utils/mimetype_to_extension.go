package utils

import "strings"

// mimeTypeToExtension maps the MIME types the pipeline commonly sees to
// their typical file extensions.
var mimeTypeToExtension = map[string]string{
	"application/json":         ".json",
	"application/pdf":          ".pdf",
	"application/zip":          ".zip",
	"application/gzip":         ".gz",
	"application/octet-stream": ".bin",
	"audio/aac":                ".aac",
	"audio/mpeg":               ".mp3",
	"audio/ogg":                ".ogg",
	"audio/wav":                ".wav",
	"image/avif":               ".avif",
	"image/bmp":                ".bmp",
	"image/gif":                ".gif",
	"image/jpeg":               ".jpg",
	"image/png":                ".png",
	"image/svg+xml":            ".svg",
	"image/tiff":               ".tif",
	"image/webp":               ".webp",
	"text/csv":                 ".csv",
	"text/html":                ".html",
	"text/plain":               ".txt",
	"video/avi":                ".avi",
	"video/mpeg":               ".mpeg",
	"video/mp4":                ".mp4",
	"video/ogg":                ".ogv",
	"video/quicktime":          ".mov",
	"video/webm":               ".webm",
	"video/x-matroska":         ".mkv",
	"video/x-ms-wmv":           ".wmv",
}

// extensionToMimeType is the reverse lookup, used when synthesizing a
// document from a raw blob during repair. On a collision the
// lexicographically smaller MIME type wins, keeping the lookup stable.
var extensionToMimeType = func() map[string]string {
	m := make(map[string]string, len(mimeTypeToExtension))
	for mt, ext := range mimeTypeToExtension {
		if existing, ok := m[ext]; !ok || mt < existing {
			m[ext] = mt
		}
	}

	return m
}()

// GetExtensionFromMimeType returns a common file extension for a given MIME
// type, defaulting to ".bin".
func GetExtensionFromMimeType(mimeType string) string {
	// Remove parameters if present (e.g., "text/plain; charset=utf-8")
	cleaned := strings.TrimSpace(strings.Split(mimeType, ";")[0])
	if ext, ok := mimeTypeToExtension[cleaned]; ok {
		return ext
	}

	return ".bin"
}

// GetMimeTypeFromExtension returns the MIME type for a file extension
// (with or without the leading dot), defaulting to application/octet-stream.
func GetMimeTypeFromExtension(ext string) string {
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	if mt, ok := extensionToMimeType[ext]; ok {
		return mt
	}

	return "application/octet-stream"
}
