package usecase

import (
	"context"

	"mediacore/internal/domain/dto"
	"mediacore/internal/domain/repository/database"
)

// Lister backs the admin media library listing.
type Lister struct {
	lister database.Lister
}

func NewLister(lister database.Lister) *Lister {
	return &Lister{lister: lister}
}

func (l *Lister) ListMedia(ctx context.Context, filter dto.ListFilter) ([]dto.MediaDescriptor, error) {
	assets, err := l.lister.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	descriptors := make([]dto.MediaDescriptor, 0, len(assets))
	for i := range assets {
		descriptors = append(descriptors, dto.DescriptorFromModel(&assets[i]))
	}

	return descriptors, nil
}
