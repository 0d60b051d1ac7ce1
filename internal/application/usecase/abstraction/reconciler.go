package abstraction

import (
	"context"

	"mediacore/internal/domain/dto"
)

type Reconciler interface {
	Report(ctx context.Context) (*dto.ReconciliationReport, error)
	Repair(ctx context.Context) (*dto.RepairReport, error)
}
