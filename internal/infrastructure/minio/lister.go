package minio

import (
	"context"
	"time"

	"github.com/minio/minio-go/v7"

	"mediacore/internal/apperror"
	"mediacore/internal/domain/entity"
)

type Lister struct {
	client *Client
	cfg    *ListerConfig
}

func NewLister(client *Client, cfg *ListerConfig) *Lister {
	return &Lister{
		client: client,
		cfg:    cfg,
	}
}

// List returns one page of objects under prefix. The cursor is the last key
// of the previous page; MinIO resumes listing strictly after it, so pages
// never overlap and a caller can restart from any cursor it kept.
func (l *Lister) List(ctx context.Context, prefix, cursor string, limit int) (entity.BlobPage, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(l.cfg.Timeout)*time.Millisecond)
	defer cancel()

	if limit <= 0 {
		limit = 1000
	}

	objects := l.client.MinioClient.ListObjects(ctx, l.client.Bucket, minio.ListObjectsOptions{
		Prefix:     prefix,
		Recursive:  true,
		StartAfter: cursor,
	})

	page := entity.BlobPage{}
	for object := range objects {
		if object.Err != nil {
			return entity.BlobPage{}, apperror.NewStorageUnavailable(object.Err)
		}

		page.Objects = append(page.Objects, entity.BlobObject{
			Path:       object.Key,
			URL:        l.client.ObjectURL(object.Key),
			Size:       object.Size,
			UploadedAt: object.LastModified,
		})

		if len(page.Objects) == limit {
			page.NextCursor = object.Key
			cancel()

			break
		}
	}

	return page, nil
}
