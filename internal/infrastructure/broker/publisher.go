package broker

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"mediacore/internal/domain/entity"
)

// Publisher pushes media lifecycle events onto the stream. Publishing is
// advisory: the pipeline logs a failed publish and moves on, the document
// state is already durable by the time an event goes out.
type Publisher struct {
	client  *Client
	timeout time.Duration
}

func NewPublisher(client *Client, cfg PublisherConfig) *Publisher {
	return &Publisher{
		client:  client,
		timeout: time.Duration(cfg.Timeout) * time.Millisecond,
	}
}

func (p *Publisher) Publish(ctx context.Context, event entity.MediaEvent) error {
	if p.client == nil || p.client.redis == nil {
		return errors.New("broker client is not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	return p.client.redis.XAdd(ctx, &redis.XAddArgs{
		Stream: p.client.stream,
		Values: map[string]any{
			"action": event.Action,
			"id":     event.ID,
		},
	}).Err()
}
