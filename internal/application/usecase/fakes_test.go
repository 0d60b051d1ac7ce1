package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"mediacore/internal/apperror"
	"mediacore/internal/domain/dto"
	"mediacore/internal/domain/entity"
	"mediacore/internal/domain/model"
)

var errTestBackend = errors.New("backend unavailable")

// fakeGenerator hands back a canned variant set so pipeline tests control
// exactly which artifacts get staged.
type fakeGenerator struct {
	set      *entity.VariantSet
	err      error
	lastMime string
}

func (f *fakeGenerator) Generate(_ context.Context, _ []byte, mimeType, _ string) (*entity.VariantSet, error) {
	f.lastMime = mimeType
	if f.err != nil {
		return nil, f.err
	}
	if f.set != nil {
		return f.set, nil
	}

	return &entity.VariantSet{Kind: entity.KindOther}, nil
}

func imageVariantSet(w, h int) *entity.VariantSet {
	return &entity.VariantSet{
		Kind:   entity.KindImage,
		Width:  w,
		Height: h,
		Variants: []entity.GeneratedVariant{
			{Name: model.VariantThumb, Bytes: []byte("thumb-bytes"), MimeType: "image/jpeg", Width: 320, Height: 240},
			{Name: model.VariantWeb, Bytes: []byte("web-bytes"), MimeType: "image/jpeg", Width: w, Height: h},
		},
		BlurPlaceholder: "data:image/jpeg;base64,QkxVUg==",
	}
}

// fakeBlobStore is an in-memory blobstore implementing Uploader, Remover and
// Lister. failPutAt makes the nth Put (1-based) fail to exercise staging
// cleanup.
type fakeBlobStore struct {
	objects  map[string][]byte
	uploaded map[string]time.Time
	removed  []string

	putCalls  int
	failPutAt int
	pageSize  int
	listCalls int
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{
		objects:  make(map[string][]byte),
		uploaded: make(map[string]time.Time),
	}
}

func (f *fakeBlobStore) Put(_ context.Context, path string, data []byte, _ string) (entity.PutResult, error) {
	f.putCalls++
	if f.failPutAt > 0 && f.putCalls == f.failPutAt {
		return entity.PutResult{}, apperror.NewStorageUnavailable(errTestBackend)
	}

	f.objects[path] = data
	f.uploaded[path] = time.Now()

	return entity.PutResult{
		Path: path,
		URL:  "https://blobs.test/" + path,
		Size: int64(len(data)),
	}, nil
}

func (f *fakeBlobStore) Remove(_ context.Context, path string) error {
	delete(f.objects, path)
	f.removed = append(f.removed, path)

	return nil
}

func (f *fakeBlobStore) List(_ context.Context, _, cursor string, limit int) (entity.BlobPage, error) {
	f.listCalls++

	keys := make([]string, 0, len(f.objects))
	for k := range f.objects {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if f.pageSize > 0 && f.pageSize < limit {
		limit = f.pageSize
	}

	var page entity.BlobPage
	for _, k := range keys {
		if cursor != "" && k <= cursor {
			continue
		}
		page.Objects = append(page.Objects, entity.BlobObject{
			Path:       k,
			URL:        "https://blobs.test/" + k,
			Size:       int64(len(f.objects[k])),
			UploadedAt: f.uploaded[k],
		})
		if len(page.Objects) == limit {
			page.NextCursor = k

			break
		}
	}

	return page, nil
}

// fakeMediaDB backs Writer, Retriever, Updater, Remover and Lister with a
// map, mirroring the document store contracts including not-found and
// duplicate-id mapping.
type fakeMediaDB struct {
	docs      map[string]*model.MediaAsset
	createErr error
}

func newFakeMediaDB() *fakeMediaDB {
	return &fakeMediaDB{docs: make(map[string]*model.MediaAsset)}
}

func (f *fakeMediaDB) Create(_ context.Context, asset *model.MediaAsset) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, exists := f.docs[asset.ID]; exists {
		return apperror.NewDuplicateID(asset.ID, nil)
	}

	f.docs[asset.ID] = cloneAsset(asset)

	return nil
}

func (f *fakeMediaDB) GetByID(_ context.Context, id string) (*model.MediaAsset, error) {
	doc, ok := f.docs[id]
	if !ok {
		return nil, apperror.NewNotFound("media not found")
	}

	return cloneAsset(doc), nil
}

func (f *fakeMediaDB) GetManyByIDs(_ context.Context, ids []string) ([]model.MediaAsset, error) {
	var out []model.MediaAsset
	for _, id := range ids {
		if doc, ok := f.docs[id]; ok {
			out = append(out, *cloneAsset(doc))
		}
	}

	return out, nil
}

func (f *fakeMediaDB) Update(_ context.Context, id string, fields map[string]any) (*model.MediaAsset, error) {
	doc, ok := f.docs[id]
	if !ok {
		return nil, apperror.NewNotFound("media not found")
	}

	for key, value := range fields {
		switch key {
		case "original_filename":
			doc.OriginalFilename = value.(string)
		case "storage_filename":
			doc.StorageFilename = value.(string)
		case "storage_path":
			doc.StoragePath = value.(string)
		case "mime_type":
			doc.MimeType = value.(string)
		case "url":
			doc.URL = value.(string)
		case "byte_size":
			doc.ByteSize = value.(int64)
		case "dimensions":
			doc.Dimensions, _ = value.(*model.Dimensions)
		case "variants":
			doc.Variants = value.(map[string]model.Variant)
		case "poster_url":
			doc.PosterURL = value.(string)
		case "poster_path":
			doc.PosterPath = value.(string)
		case "blur_placeholder":
			doc.BlurPlaceholder = value.(string)
		case "title":
			doc.Title = value.(string)
		case "alt_text":
			doc.AltText = value.(string)
		case "tags":
			doc.Tags = value.([]string)
		}
	}
	doc.UpdatedAt = time.Now()

	return cloneAsset(doc), nil
}

func (f *fakeMediaDB) Remove(_ context.Context, id string) error {
	delete(f.docs, id)

	return nil
}

func (f *fakeMediaDB) List(_ context.Context, _ dto.ListFilter) ([]model.MediaAsset, error) {
	ids := make([]string, 0, len(f.docs))
	for id := range f.docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]model.MediaAsset, 0, len(ids))
	for _, id := range ids {
		out = append(out, *cloneAsset(f.docs[id]))
	}

	return out, nil
}

func cloneAsset(a *model.MediaAsset) *model.MediaAsset {
	c := *a
	if a.Dimensions != nil {
		d := *a.Dimensions
		c.Dimensions = &d
	}
	c.Variants = make(map[string]model.Variant, len(a.Variants))
	for k, v := range a.Variants {
		c.Variants[k] = v
	}
	c.Tags = append([]string(nil), a.Tags...)

	return &c
}

type fakeEntrySource struct {
	entries []model.ContentEntry
	err     error
}

func (f *fakeEntrySource) ListEntries(_ context.Context) ([]model.ContentEntry, error) {
	return f.entries, f.err
}

type fakePublisher struct {
	events []entity.MediaEvent
	err    error
}

func (f *fakePublisher) Publish(_ context.Context, event entity.MediaEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, event)

	return nil
}
