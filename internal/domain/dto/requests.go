package dto

import "time"

// UploadRequest carries one upload through the ingestion pipeline.
type UploadRequest struct {
	Bytes            []byte
	MimeType         string
	OriginalFilename string
	Title            string
	AltText          string
}

// ReplaceRequest swaps the underlying file of an existing asset. The asset id
// comes from the route, never from the body.
type ReplaceRequest struct {
	Bytes            []byte
	MimeType         string
	OriginalFilename string
}

// MetadataPatch updates user-editable fields. Nil fields are left untouched.
type MetadataPatch struct {
	Title   *string   `json:"title"`
	AltText *string   `json:"altText"`
	Tags    *[]string `json:"tags"`
}

// ListFilter narrows admin media listings. Kind is "image" or "video";
// empty matches every asset.
type ListFilter struct {
	Kind  string
	Since *time.Time
	Until *time.Time
}
