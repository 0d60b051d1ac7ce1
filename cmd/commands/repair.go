package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"mediacore/internal/infrastructure/broker"
	"mediacore/pkg/logger"
)

// HandleRepair attempts to rebuild media documents for orphaned references
// from raw blob storage and prints the per-id outcome.
func HandleRepair(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	services, err := connectCore(args[2])
	if err != nil {
		ExitOnError(err)
	}
	defer services.close()

	brokerClient, err := broker.NewClient(services.cfg.BrokerConfig)
	if err != nil {
		ExitOnError(err)
	}
	defer func() {
		if err := brokerClient.Close(); err != nil {
			logger.Error("couldn't close broker client", "err", err)
		}
	}()

	publisher := broker.NewPublisher(brokerClient, services.cfg.PublisherConfig)
	reconciler := buildReconciler(services, publisher)

	report, err := reconciler.Repair(context.Background())
	if err != nil {
		ExitOnError(err)
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		ExitOnError(err)
	}

	fmt.Println(string(out)) //nolint

	logger.Info("repair finished",
		"repaired", len(report.Repaired),
		"unmatched", len(report.Unmatched),
		"failed", len(report.Failed))
}
