package minio

import (
	"context"
	"time"

	"github.com/minio/minio-go/v7"
)

type Remover struct {
	client *Client
	cfg    *RemoverConfig
}

func NewRemover(client *Client, cfg *RemoverConfig) *Remover {
	return &Remover{
		client: client,
		cfg:    cfg,
	}
}

// Remove deletes one object. MinIO treats removing a non-existent key as
// success, which gives the idempotency the delete path relies on.
func (r *Remover) Remove(ctx context.Context, path string) error {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(r.cfg.Timeout)*time.Millisecond)
	defer cancel()

	return r.client.MinioClient.RemoveObject(ctx, r.client.Bucket, path, minio.RemoveObjectOptions{})
}
