package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"mediacore/internal/apperror"
	"mediacore/internal/domain/entity"
	"mediacore/internal/domain/model"
	"mediacore/internal/domain/repository/blobstore"
	"mediacore/internal/domain/repository/variant"
	"mediacore/pkg/logger"
	"mediacore/pkg/utils"
)

// ingestor is the storage half of the pipeline shared by upload and replace:
// variant generation followed by one blob write per artifact. It never
// touches the document store; a stagedAsset only becomes visible once the
// caller persists a document for it, so readers never observe a partially
// described asset.
type ingestor struct {
	generator    variant.Generator
	blobUploader blobstore.Uploader
	blobRemover  blobstore.Remover
}

// stagedAsset holds everything written to blob storage for one upload,
// before any document exists.
type stagedAsset struct {
	mimeType        string
	storageFilename string
	storagePath     string
	primary         entity.PutResult
	variants        map[string]model.Variant
	posterURL       string
	posterPath      string
	dimensions      *model.Dimensions
	blurPlaceholder string

	writtenPaths []string
}

// stage runs generation and writes every blob. On any failure it removes the
// blobs already written and returns the first error; nothing durable
// survives a failed stage.
func (i *ingestor) stage(ctx context.Context, data []byte, declaredType, originalFilename string) (*stagedAsset, error) {
	sniffed := strings.Split(mimetype.Detect(data).String(), ";")[0]

	if err := checkDeclaredType(declaredType, sniffed); err != nil {
		return nil, err
	}

	set, err := i.generator.Generate(ctx, data, sniffed, originalFilename)
	if err != nil {
		return nil, err
	}

	storageFilename := utils.BuildStorageFilename(originalFilename, sniffed)
	storagePath := utils.BuildStoragePath(storageFilename, time.Now())

	staged := &stagedAsset{
		mimeType:        sniffed,
		storageFilename: storageFilename,
		storagePath:     storagePath,
		variants:        make(map[string]model.Variant, len(set.Variants)),
		blurPlaceholder: set.BlurPlaceholder,
	}
	if set.Width > 0 && set.Height > 0 {
		staged.dimensions = &model.Dimensions{Width: set.Width, Height: set.Height}
	}

	primary, err := i.blobUploader.Put(ctx, storagePath, data, sniffed)
	if err != nil {
		return nil, err
	}
	staged.primary = primary
	staged.writtenPaths = append(staged.writtenPaths, primary.Path)

	for _, v := range set.Variants {
		variantPath := utils.VariantPath(storagePath, v.Name, utils.GetExtensionFromMimeType(v.MimeType))
		result, err := i.blobUploader.Put(ctx, variantPath, v.Bytes, v.MimeType)
		if err != nil {
			i.discard(ctx, staged)

			return nil, err
		}

		staged.variants[v.Name] = model.Variant{
			URL:    result.URL,
			Path:   result.Path,
			Width:  v.Width,
			Height: v.Height,
		}
		staged.writtenPaths = append(staged.writtenPaths, result.Path)
	}

	if set.Poster != nil {
		posterPath := utils.VariantPath(storagePath, set.Poster.Name, utils.GetExtensionFromMimeType(set.Poster.MimeType))
		result, err := i.blobUploader.Put(ctx, posterPath, set.Poster.Bytes, set.Poster.MimeType)
		if err != nil {
			i.discard(ctx, staged)

			return nil, err
		}

		staged.posterURL = result.URL
		staged.posterPath = result.Path
		staged.writtenPaths = append(staged.writtenPaths, result.Path)
	}

	return staged, nil
}

// checkDeclaredType holds the client-declared content type against the
// sniffed one. A declaration claiming an image or video whose bytes sniff
// as a different class is rejected before anything is written; beyond that
// the declared type is never trusted, the sniffed type drives processing.
func checkDeclaredType(declared, sniffed string) error {
	declared = strings.TrimSpace(strings.Split(declared, ";")[0])
	if declared == "" {
		return nil
	}

	class := strings.SplitN(declared, "/", 2)[0]
	if class != "image" && class != "video" {
		return nil
	}

	if strings.HasPrefix(sniffed, class+"/") {
		return nil
	}

	return apperror.NewUnprocessableMedia(
		fmt.Sprintf("content declared as %s but detected as %s", declared, sniffed), nil)
}

// discard removes every blob a failed stage wrote. Removal errors are logged
// and swallowed; the blobs are unreferenced, a later reconcile run reports
// whatever survived.
func (i *ingestor) discard(ctx context.Context, staged *stagedAsset) {
	for _, p := range staged.writtenPaths {
		if err := i.blobRemover.Remove(ctx, p); err != nil {
			logger.Error("failed to clean up staged blob", "path", p, "err", err)
		}
	}
}

// removeAssetBlobs deletes all storage objects a document points at: the
// primary, each variant and the poster. Best-effort, used by delete and by
// replace after the document already references the new blobs.
func removeAssetBlobs(ctx context.Context, remover blobstore.Remover, asset *model.MediaAsset) {
	paths := make([]string, 0, len(asset.Variants)+2)
	if asset.StoragePath != "" {
		paths = append(paths, asset.StoragePath)
	}
	for _, v := range asset.Variants {
		if v.Path != "" {
			paths = append(paths, v.Path)
		}
	}
	if asset.PosterPath != "" {
		paths = append(paths, asset.PosterPath)
	}

	for _, p := range paths {
		if err := remover.Remove(ctx, p); err != nil {
			logger.Error("failed to remove blob", "path", p, "id", asset.ID, "err", err)
		}
	}
}
