package usecase

import (
	"context"

	"mediacore/internal/domain/dto"
	"mediacore/internal/domain/model"
	"mediacore/internal/domain/repository/database"
)

// Editor applies metadata edits. Metadata is independent of identity and of
// the stored file; only the user-editable fields pass through here.
type Editor struct {
	updater database.Updater
}

func NewEditor(updater database.Updater) *Editor {
	return &Editor{updater: updater}
}

func (e *Editor) UpdateMetadata(ctx context.Context, id string, patch dto.MetadataPatch) (*model.MediaAsset, error) {
	fields := make(map[string]any, 3)
	if patch.Title != nil {
		fields["title"] = *patch.Title
	}
	if patch.AltText != nil {
		fields["alt_text"] = *patch.AltText
	}
	if patch.Tags != nil {
		fields["tags"] = *patch.Tags
	}

	// An empty patch still advances updated_at, matching the update
	// contract.
	return e.updater.Update(ctx, id, fields)
}
