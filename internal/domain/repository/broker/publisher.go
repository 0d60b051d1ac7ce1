package broker

import (
	"context"

	"mediacore/internal/domain/entity"
)

type Publisher interface {
	Publish(ctx context.Context, event entity.MediaEvent) error
}
