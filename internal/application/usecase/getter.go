package usecase

import (
	"context"

	"mediacore/internal/domain/model"
	"mediacore/internal/domain/repository/database"
)

// Getter serves the read paths of the admin UI.
type Getter struct {
	retriever database.Retriever
}

func NewGetter(retriever database.Retriever) *Getter {
	return &Getter{retriever: retriever}
}

func (g *Getter) GetMedia(ctx context.Context, id string) (*model.MediaAsset, error) {
	return g.retriever.GetByID(ctx, id)
}

func (g *Getter) GetManyMedia(ctx context.Context, ids []string) ([]model.MediaAsset, error) {
	return g.retriever.GetManyByIDs(ctx, ids)
}
