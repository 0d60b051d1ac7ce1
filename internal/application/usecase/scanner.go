package usecase

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"mediacore/internal/domain/dto"
	"mediacore/internal/domain/model"
	"mediacore/internal/domain/repository/database"
)

// Scanner computes the set of media ids referenced by any content entry.
// Which fields hold references comes from the declarative map supplied in
// configuration; the scanner never infers reference fields from document
// shape. Each Scan is a fresh full pass, nothing is cached between runs.
type Scanner struct {
	entries database.EntrySource
	refMap  model.ReferenceMap
}

func NewScanner(entries database.EntrySource, refMap model.ReferenceMap) *Scanner {
	return &Scanner{
		entries: entries,
		refMap:  refMap,
	}
}

func (s *Scanner) Scan(ctx context.Context) (*dto.ReferenceScan, error) {
	entries, err := s.entries.ListEntries(ctx)
	if err != nil {
		return nil, err
	}

	return ScanEntries(entries, s.refMap), nil
}

// ScanEntries extracts every media reference from entries. Missing or null
// reference fields are treated as empty. Whether a referenced id actually
// exists is not checked here; that is exactly the orphan case the output
// feeds into. The result is deterministic for a given set of entries,
// independent of their ordering.
func ScanEntries(entries []model.ContentEntry, refMap model.ReferenceMap) *dto.ReferenceScan {
	all := make(map[string]struct{})
	perEntry := make(map[string][]string)

	for _, entry := range entries {
		fields, ok := refMap[entry.Collection]
		if !ok || entry.Data == nil {
			continue
		}

		var ids []string
		for _, field := range fields {
			raw, ok := entry.Data[field.Field]
			if !ok || raw == nil {
				continue
			}

			switch field.Shape {
			case model.ShapeSingle:
				if id, ok := raw.(string); ok && id != "" {
					ids = append(ids, id)
				}
			case model.ShapeList:
				ids = append(ids, stringList(raw)...)
			}
		}

		if len(ids) == 0 {
			continue
		}

		perEntry[entry.ID] = ids
		for _, id := range ids {
			all[id] = struct{}{}
		}
	}

	sorted := make([]string, 0, len(all))
	for id := range all {
		sorted = append(sorted, id)
	}
	sort.Strings(sorted)

	return &dto.ReferenceScan{
		AllReferencedIDs: sorted,
		PerEntry:         perEntry,
	}
}

// stringList flattens a list-shaped reference field. Mongo decodes arrays
// into primitive.A, in-memory fixtures use []any or []string; non-string
// elements are skipped, not errors.
func stringList(raw any) []string {
	var out []string

	appendAny := func(items []any) {
		for _, item := range items {
			if id, ok := item.(string); ok && id != "" {
				out = append(out, id)
			}
		}
	}

	switch list := raw.(type) {
	case []string:
		for _, id := range list {
			if id != "" {
				out = append(out, id)
			}
		}
	case []any:
		appendAny(list)
	case primitive.A:
		appendAny(list)
	}

	return out
}
