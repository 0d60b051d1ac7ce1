package model

import "time"

// Variant names are a fixed enumerated set per asset kind, not arbitrary keys.
const (
	VariantThumb = "thumb"
	VariantWeb   = "web"
)

// MediaAsset is the canonical record for one uploaded file. ID is assigned
// once at creation and never changes, including across replace operations;
// it is the join key every content entry uses.
type MediaAsset struct {
	ID               string             `bson:"_id"`
	OriginalFilename string             `bson:"original_filename"`
	StorageFilename  string             `bson:"storage_filename"`
	StoragePath      string             `bson:"storage_path"`
	MimeType         string             `bson:"mime_type"`
	URL              string             `bson:"url"`
	ByteSize         int64              `bson:"byte_size"`
	Dimensions       *Dimensions        `bson:"dimensions"` // Pointer to allow null when not derivable
	Variants         map[string]Variant `bson:"variants"`
	PosterURL        string             `bson:"poster_url,omitempty"`
	PosterPath       string             `bson:"poster_path,omitempty"`
	BlurPlaceholder  string             `bson:"blur_placeholder,omitempty"`
	Title            string             `bson:"title,omitempty"`
	AltText          string             `bson:"alt_text,omitempty"`
	Tags             []string           `bson:"tags,omitempty"`
	CreatedAt        time.Time          `bson:"created_at"`
	UpdatedAt        time.Time          `bson:"updated_at"`
}

// Variant describes one derived representation stored as its own blob.
// Path is internal bookkeeping for delete/replace; the API exposes only the
// URL and dimensions.
type Variant struct {
	URL    string `bson:"url"`
	Path   string `bson:"path,omitempty"`
	Width  int    `bson:"width,omitempty"`
	Height int    `bson:"height,omitempty"`
}

type Dimensions struct {
	Width  int `bson:"width"`
	Height int `bson:"height"`
}
