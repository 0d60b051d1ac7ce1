package minio

import (
	"context"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"mediacore/pkg/logger"
)

type Client struct {
	MinioClient *minio.Client
	Bucket      string

	publicBase string
}

func New(ctx context.Context, cfg *ClientConfig) (*Client, error) {
	logger.Info("connecting to minio", "endpoint", cfg.Endpoint)

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:           credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:          cfg.Secure,
		TrailingHeaders: true,
	})
	if err != nil {
		return nil, err
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
	}

	publicBase := strings.TrimSuffix(cfg.PublicBaseURL, "/")
	if publicBase == "" {
		scheme := "http"
		if cfg.Secure {
			scheme = "https"
		}
		publicBase = fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.Bucket)
	}

	return &Client{
		MinioClient: client,
		Bucket:      cfg.Bucket,
		publicBase:  publicBase,
	}, nil
}

// ObjectURL resolves a storage path to its public URL.
func (c *Client) ObjectURL(path string) string {
	return c.publicBase + "/" + strings.TrimPrefix(path, "/")
}
