package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"mediacore/internal/application/usecase"
	"mediacore/internal/domain/entity"
	"mediacore/internal/domain/repository/broker"
	"mediacore/internal/infrastructure/database"
	"mediacore/internal/infrastructure/minio"
	"mediacore/pkg/logger"
)

// HandleReconcile runs one diagnostic pass and prints the report as JSON.
// It never mutates anything; use the repair command to act on the output.
func HandleReconcile(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	services, err := connectCore(args[2])
	if err != nil {
		ExitOnError(err)
	}
	defer services.close()

	reconciler := buildReconciler(services, noopPublisher{})

	report, err := reconciler.Report(context.Background())
	if err != nil {
		ExitOnError(err)
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		ExitOnError(err)
	}

	fmt.Println(string(out)) //nolint

	logger.Info("reconciliation finished",
		"orphaned", len(report.OrphanedIDs),
		"unused", len(report.UnusedAssets),
		"entries_with_broken_refs", len(report.PerEntryBreakdown))
}

func buildReconciler(services *services, publisher broker.Publisher) *usecase.Reconciler {
	cfg := services.cfg
	entryLister := database.NewEntryLister(services.db)
	mediaLister := database.NewMediaLister(services.db)
	writer := database.NewMediaWriter(services.db)
	blobLister := minio.NewLister(services.store, &cfg.MinIOLister)
	scanner := usecase.NewScanner(entryLister, cfg.References)

	return usecase.NewReconciler(scanner, mediaLister, writer, blobLister, publisher)
}

// noopPublisher stands in for the event stream in one-shot commands, which
// have no long-lived consumers to notify.
type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, entity.MediaEvent) error {
	return nil
}
