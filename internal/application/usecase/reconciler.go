package usecase

import (
	"context"
	"net/url"
	"path"
	"sort"
	"strings"
	"time"

	"mediacore/internal/domain/dto"
	"mediacore/internal/domain/entity"
	"mediacore/internal/domain/model"
	"mediacore/internal/domain/repository/blobstore"
	"mediacore/internal/domain/repository/broker"
	"mediacore/internal/domain/repository/database"
	"mediacore/pkg/logger"
	"mediacore/pkg/utils"
)

const listPageSize = 500

// Reconciler classifies every media id as live, orphaned (referenced with no
// document) or unused (document with no reference), and can attempt a
// best-effort repair of orphans from raw blob storage.
type Reconciler struct {
	scanner   *Scanner
	lister    database.Lister
	writer    database.Writer
	blobs     blobstore.Lister
	publisher broker.Publisher
}

func NewReconciler(scanner *Scanner, lister database.Lister, writer database.Writer,
	blobs blobstore.Lister, publisher broker.Publisher,
) *Reconciler {
	return &Reconciler{
		scanner:   scanner,
		lister:    lister,
		writer:    writer,
		blobs:     blobs,
		publisher: publisher,
	}
}

// Report runs one full reconciliation pass. Orphans are R−S and unused are
// S−R for referenced set R and stored set S; the two outputs are disjoint by
// construction and ids in R∩S appear in neither.
func (r *Reconciler) Report(ctx context.Context) (*dto.ReconciliationReport, error) {
	scan, err := r.scanner.Scan(ctx)
	if err != nil {
		return nil, err
	}

	assets, err := r.lister.List(ctx, dto.ListFilter{})
	if err != nil {
		return nil, err
	}

	referenced := toSet(scan.AllReferencedIDs)
	stored := make(map[string]struct{}, len(assets))
	for i := range assets {
		stored[assets[i].ID] = struct{}{}
	}

	orphans := findOrphans(referenced, stored)

	breakdown := make(map[string][]string)
	for entryID, ids := range scan.PerEntry {
		var broken []string
		for _, id := range ids {
			if _, ok := stored[id]; !ok {
				broken = append(broken, id)
			}
		}
		if len(broken) > 0 {
			breakdown[entryID] = broken
		}
	}

	unused := findUnused(assets, referenced)
	unusedDescriptors := make([]dto.MediaDescriptor, 0, len(unused))
	for i := range unused {
		unusedDescriptors = append(unusedDescriptors, dto.DescriptorFromModel(&unused[i]))
	}

	return &dto.ReconciliationReport{
		OrphanedIDs:       orphans,
		PerEntryBreakdown: breakdown,
		UnusedAssets:      unusedDescriptors,
	}, nil
}

// Repair reconstructs documents for orphaned ids from raw storage. Detection
// runs to completion before any repair starts, because the candidate set
// depends on the complete orphan list. Each orphan is handled independently:
// one failed insert is reported for that id and never aborts the rest.
func (r *Reconciler) Repair(ctx context.Context) (*dto.RepairReport, error) {
	report, err := r.Report(ctx)
	if err != nil {
		return nil, err
	}

	objects, err := r.listAllBlobs(ctx)
	if err != nil {
		return nil, err
	}

	result := &dto.RepairReport{
		Repaired:  []string{},
		Unmatched: []string{},
	}

	for _, orphanID := range report.OrphanedIDs {
		asset, matched := matchOrphan(orphanID, objects)
		if !matched {
			result.Unmatched = append(result.Unmatched, orphanID)

			continue
		}

		if err := r.writer.Create(ctx, asset); err != nil {
			if result.Failed == nil {
				result.Failed = make(map[string]string)
			}
			result.Failed[orphanID] = err.Error()
			logger.Error("failed to insert repaired media document", "id", orphanID, "err", err)

			continue
		}

		result.Repaired = append(result.Repaired, orphanID)

		if err := r.publisher.Publish(ctx, entity.MediaEvent{Action: entity.ActionRepaired, ID: orphanID}); err != nil {
			logger.Error("failed to publish media repaired event", "id", orphanID, "err", err)
		}
	}

	return result, nil
}

func (r *Reconciler) listAllBlobs(ctx context.Context) ([]entity.BlobObject, error) {
	var objects []entity.BlobObject
	cursor := ""
	for {
		page, err := r.blobs.List(ctx, "", cursor, listPageSize)
		if err != nil {
			return nil, err
		}

		objects = append(objects, page.Objects...)
		if page.NextCursor == "" {
			return objects, nil
		}
		cursor = page.NextCursor
	}
}

// matchOrphan tries the two repair strategies in their fixed order:
// path match first, then literal-URL. The ordering is policy — path matching
// is considered the more reliable signal — and must not change, or repair
// stops being reproducible.
func matchOrphan(orphanID string, objects []entity.BlobObject) (*model.MediaAsset, bool) {
	if obj, ok := matchByPath(orphanID, objects); ok {
		return synthesizeFromBlob(orphanID, obj), true
	}

	if matchLiteralURL(orphanID) {
		return synthesizeFromURL(orphanID), true
	}

	return nil, false
}

// matchByPath looks for a listing entry whose path contains the orphan id,
// or whose base name is contained in the orphan id. The two-directional
// containment is a known-imprecise heuristic: a short base name can be a
// substring of an unrelated id. Kept as-is deliberately; first match wins.
func matchByPath(orphanID string, objects []entity.BlobObject) (entity.BlobObject, bool) {
	for _, obj := range objects {
		if strings.Contains(obj.Path, orphanID) {
			return obj, true
		}

		base := strings.TrimSuffix(path.Base(obj.Path), path.Ext(obj.Path))
		if base != "" && strings.Contains(orphanID, base) {
			return obj, true
		}
	}

	return entity.BlobObject{}, false
}

// matchLiteralURL reports whether the "id" is really an absolute URL, a
// legacy data shape where entries stored the asset location directly.
func matchLiteralURL(orphanID string) bool {
	u, err := url.Parse(orphanID)

	return err == nil && u.IsAbs() && u.Host != ""
}

// synthesizeFromBlob builds a document from a matched raw blob. The orphaned
// id is preserved verbatim — allocating a fresh id would leave the existing
// entry references dangling, defeating the repair.
func synthesizeFromBlob(orphanID string, obj entity.BlobObject) *model.MediaAsset {
	filename := path.Base(obj.Path)
	createdAt := obj.UploadedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	return &model.MediaAsset{
		ID:               orphanID,
		OriginalFilename: filename,
		StorageFilename:  filename,
		StoragePath:      obj.Path,
		MimeType:         utils.GetMimeTypeFromExtension(path.Ext(obj.Path)),
		URL:              obj.URL,
		ByteSize:         obj.Size,
		Variants:         map[string]model.Variant{},
		CreatedAt:        createdAt,
		UpdatedAt:        time.Now(),
	}
}

func synthesizeFromURL(orphanID string) *model.MediaAsset {
	filename := path.Base(orphanID)
	now := time.Now()

	return &model.MediaAsset{
		ID:               orphanID,
		OriginalFilename: filename,
		StorageFilename:  filename,
		StoragePath:      "",
		MimeType:         utils.GetMimeTypeFromExtension(path.Ext(filename)),
		URL:              orphanID,
		Variants:         map[string]model.Variant{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// findOrphans is the set difference R−S computed with hash membership, one
// pass over the referenced ids.
func findOrphans(referenced, stored map[string]struct{}) []string {
	var orphans []string
	for id := range referenced {
		if _, ok := stored[id]; !ok {
			orphans = append(orphans, id)
		}
	}
	sort.Strings(orphans)

	return orphans
}

// findUnused is the set difference S−R, preserving the lister's ordering.
func findUnused(assets []model.MediaAsset, referenced map[string]struct{}) []model.MediaAsset {
	var unused []model.MediaAsset
	for i := range assets {
		if _, ok := referenced[assets[i].ID]; !ok {
			unused = append(unused, assets[i])
		}
	}

	return unused
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	return set
}
