package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/pageza/portfolio/backend/config"
	"github.com/pageza/portfolio/backend/internal/database"
	"github.com/pageza/portfolio/backend/internal/logging"
	"github.com/pageza/portfolio/backend/internal/seed"
	"github.com/pageza/portfolio/backend/internal/service"
	"github.com/sirupsen/logrus"
)

func main() {
	file := flag.String("file", "", "YAML seed file (defaults to SEED_FILE, then the built-in set)")
	flag.Parse()

	if err := run(*file); err != nil {
		logrus.WithError(err).Fatal("seeding failed")
	}
}

func run(file string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logging.Setup(cfg.LogLevel, cfg.Environment); err != nil {
		return fmt.Errorf("failed to configure logging: %w", err)
	}
	if file == "" {
		file = cfg.SeedFile
	}

	set, err := seed.Load(file)
	if err != nil {
		return fmt.Errorf("failed to load seed data: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	backend, err := database.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to store: %w", err)
	}
	defer func() {
		if err := backend.Close(context.Background()); err != nil {
			logrus.WithError(err).Warn("failed to close store")
		}
	}()

	if err := database.Migrate(ctx, backend); err != nil {
		return fmt.Errorf("failed to migrate store: %w", err)
	}

	svc, err := service.NewServices(backend)
	if err != nil {
		return fmt.Errorf("failed to create services: %w", err)
	}

	seeded, err := seed.NewSeeder(svc, set).Seed(ctx)
	if err != nil {
		return err
	}
	if !seeded {
		logrus.Info("Profile already exists, nothing to seed")
		return nil
	}
	logrus.WithFields(logrus.Fields{
		"projects": len(set.Projects),
		"skills":   len(set.Skills),
	}).Info("Seeded portfolio data")
	return nil
}
