package variant

import (
	"context"

	"mediacore/internal/domain/entity"
)

// Generator derives the canonical variant set from raw upload bytes. It
// produces in-memory buffers only; durable writes belong to the blob store
// adapter. The same bytes and the same configuration yield the same set.
type Generator interface {
	Generate(ctx context.Context, data []byte, mimeType, filename string) (*entity.VariantSet, error)
}
