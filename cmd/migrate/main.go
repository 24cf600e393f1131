package main

import (
	"context"
	"time"

	"github.com/pageza/portfolio/backend/config"
	"github.com/pageza/portfolio/backend/internal/database"
	"github.com/pageza/portfolio/backend/internal/logging"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}
	if err := logging.Setup(cfg.LogLevel, cfg.Environment); err != nil {
		logrus.WithError(err).Fatal("failed to configure logging")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	backend, err := database.Open(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to store")
	}
	defer backend.Close(context.Background())

	if err := database.Migrate(ctx, backend); err != nil {
		logrus.WithError(err).Fatal("migration failed")
	}
	logrus.WithField("driver", cfg.StoreDriver).Info("Migrations completed successfully")
}
