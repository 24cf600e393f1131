package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/pageza/portfolio/backend/config"
	"github.com/pageza/portfolio/backend/internal/database"
	"github.com/pageza/portfolio/backend/internal/logging"
	"github.com/pageza/portfolio/backend/internal/seed"
	"github.com/pageza/portfolio/backend/internal/server"
	"github.com/pageza/portfolio/backend/internal/service"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := run(); err != nil {
		logrus.WithError(err).Fatal("server error")
	}
	logrus.Info("Server stopped")
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if err := logging.Setup(cfg.LogLevel, cfg.Environment); err != nil {
		return err
	}
	gin.SetMode(cfg.Environment.GinMode())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, err := database.Open(ctx, cfg)
	if err != nil {
		return err
	}
	if err := database.Migrate(ctx, backend); err != nil {
		_ = backend.Close(context.Background())
		return err
	}

	svc, err := service.NewServices(backend)
	if err != nil {
		_ = backend.Close(context.Background())
		return err
	}

	set, err := seed.Load(cfg.SeedFile)
	if err != nil {
		logrus.WithError(err).Error("failed to load seed data, skipping seeding")
	} else {
		seed.NewSeeder(svc, set).Run(ctx)
	}

	opts := server.Options{}
	if cfg.RedisURL != "" {
		client, err := database.NewRedisClient(cfg.RedisURL)
		if err != nil {
			logrus.WithError(err).Warn("Redis unavailable, contact form is not rate limited")
		} else {
			opts.Redis = client
		}
	}
	if cfg.S3BucketName != "" {
		s3Cfg, err := config.NewS3Config(ctx, cfg.S3BucketName, cfg.AWSRegion)
		if err != nil {
			logrus.WithError(err).Warn("S3 unavailable, profile image upload is disabled")
		} else {
			opts.Images = service.NewImageService(s3Cfg.Client, s3Cfg.BucketName, svc.Profile)
		}
	}

	srv, err := server.New(cfg, backend, svc, opts)
	if err != nil {
		_ = backend.Close(context.Background())
		return err
	}
	return srv.Start(ctx)
}
