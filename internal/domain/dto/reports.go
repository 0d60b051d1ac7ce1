package dto

// ReferenceScan is the output of one full pass over the content entries.
// AllReferencedIDs is sorted so repeated scans over the same entries compare
// equal regardless of entry ordering.
type ReferenceScan struct {
	AllReferencedIDs []string            `json:"allReferencedIds"`
	PerEntry         map[string][]string `json:"perEntryReferences"`
}

// UsedMediaReport backs the admin UI's "unused" filter.
type UsedMediaReport struct {
	UsedMediaIDs []string `json:"usedMediaIds"`
}

// ReconciliationReport classifies every asset id against the reference set.
// OrphanedIDs are referenced with no stored document; UnusedAssets have a
// document no entry references. The two sets are disjoint by construction.
type ReconciliationReport struct {
	OrphanedIDs       []string            `json:"orphanedIds"`
	PerEntryBreakdown map[string][]string `json:"perEntryBreakdown"`
	UnusedAssets      []MediaDescriptor   `json:"unusedAssets"`
}

// RepairReport is the outcome of one best-effort repair run. Failed maps an
// orphan id to the error that blocked its re-insertion; one failure never
// aborts the remaining ids.
type RepairReport struct {
	Repaired  []string          `json:"repaired"`
	Unmatched []string          `json:"unmatched"`
	Failed    map[string]string `json:"failed,omitempty"`
}
