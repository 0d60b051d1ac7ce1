package entity

// MediaKind classifies an upload by its sniffed MIME type.
type MediaKind string

const (
	KindImage MediaKind = "image"
	KindVideo MediaKind = "video"
	KindOther MediaKind = "other"
)

// GeneratedVariant is one derived artifact held in memory before any storage
// write happens.
type GeneratedVariant struct {
	Name     string
	Bytes    []byte
	MimeType string
	Width    int
	Height   int
}

// VariantSet is the output of one generation pass over an upload. For
// KindOther everything except Kind is zero: the primary bytes are stored
// verbatim and no variants exist.
type VariantSet struct {
	Kind            MediaKind
	Width           int
	Height          int
	Variants        []GeneratedVariant
	Poster          *GeneratedVariant
	BlurPlaceholder string
}
