package entity

import "time"

// PutResult describes one durably stored object.
type PutResult struct {
	Path string `json:"path"`
	URL  string `json:"url"`
	Size int64  `json:"size"`
}

// BlobObject is one raw-storage listing entry, used by the reconciliation
// engine's best-effort repair.
type BlobObject struct {
	Path       string    `json:"path"`
	URL        string    `json:"url"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// BlobPage is one page of a cursor-based listing. An empty NextCursor means
// the listing is exhausted.
type BlobPage struct {
	Objects    []BlobObject
	NextCursor string
}

// MediaEvent is published to the broker after a successful lifecycle change.
type MediaEvent struct {
	Action string
	ID     string
}

// Media lifecycle actions.
const (
	ActionCreated  = "created"
	ActionReplaced = "replaced"
	ActionDeleted  = "deleted"
	ActionRepaired = "repaired"
)
