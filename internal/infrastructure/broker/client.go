package broker

import (
	"context"

	"github.com/redis/go-redis/v9"
)

type Client struct {
	redis  *redis.Client
	stream string
}

func NewClient(cfg Config) (*Client, error) {
	opt, err := redis.ParseURL(cfg.URI)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)
	ctx := context.Background()

	// Creating the consumer group also creates the stream, so downstream
	// consumers (cache invalidators, site rebuilders) can attach before the
	// first event is published.
	err = rdb.XGroupCreateMkStream(ctx, cfg.StreamName, cfg.GroupName, "$").Err()
	if err != nil && !isBusyGroup(err) {
		return nil, err
	}

	return &Client{
		redis:  rdb,
		stream: cfg.StreamName,
	}, nil
}

func (c *Client) Close() error {
	return c.redis.Close()
}

func isBusyGroup(err error) bool {
	return err != nil && err.Error() == "BUSYGROUP Consumer Group name already exists"
}
