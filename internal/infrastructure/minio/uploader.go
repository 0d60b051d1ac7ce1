package minio

import (
	"bytes"
	"context"
	"time"

	"github.com/minio/minio-go/v7"

	"mediacore/internal/apperror"
	"mediacore/internal/domain/entity"
)

type Uploader struct {
	client *Client
	cfg    *UploaderConfig
}

func NewUploader(client *Client, cfg *UploaderConfig) *Uploader {
	return &Uploader{
		client: client,
		cfg:    cfg,
	}
}

// Put stores one object and returns its public URL. The pipeline calls this
// once per variant; the calls are independent blobs with no ordering
// requirement between them.
func (u *Uploader) Put(ctx context.Context, path string, data []byte, mimeType string) (entity.PutResult, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(u.cfg.Timeout)*time.Millisecond)
	defer cancel()

	info, err := u.client.MinioClient.PutObject(ctx, u.client.Bucket, path,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{
			ContentType: mimeType,
		})
	if err != nil {
		return entity.PutResult{}, apperror.NewStorageUnavailable(err)
	}

	return entity.PutResult{
		Path: path,
		URL:  u.client.ObjectURL(path),
		Size: info.Size,
	}, nil
}
