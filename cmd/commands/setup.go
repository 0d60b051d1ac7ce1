package commands

import (
	"context"

	"mediacore/config"
	"mediacore/internal/infrastructure/database"
	"mediacore/internal/infrastructure/minio"
	"mediacore/pkg/logger"
)

// services bundles the external connections every command needs.
type services struct {
	cfg   *config.Config
	db    *database.Database
	store *minio.Client
}

func connectCore(cfgPath string) (*services, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	logger.InitGlobalLogger(&cfg.Logger)

	db, err := database.Connect(cfg.DBConfig)
	if err != nil {
		return nil, err
	}

	store, err := minio.New(context.Background(), &cfg.MinIOClient)
	if err != nil {
		_ = db.Stop()

		return nil, err
	}

	return &services{
		cfg:   cfg,
		db:    db,
		store: store,
	}, nil
}

func (s *services) close() {
	if err := s.db.Stop(); err != nil {
		logger.Error("couldn't stop db instance", "err", err)
	}
}
