package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pageza/portfolio/backend/config"
	"github.com/pageza/portfolio/backend/internal/api"
	"github.com/pageza/portfolio/backend/internal/middleware"
	"github.com/pageza/portfolio/backend/internal/router"
	"github.com/pageza/portfolio/backend/internal/service"
	"github.com/pageza/portfolio/backend/internal/store"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Version is reported by the health endpoint.
var Version = "dev"

const shutdownTimeout = 10 * time.Second

// Server represents the HTTP server
type Server struct {
	router  *gin.Engine
	http    *http.Server
	backend *store.Backend
	redis   *redis.Client
}

// Options carries the optional collaborators.
type Options struct {
	Redis  *redis.Client
	Images *service.ImageService
}

// New creates a new server instance over an open backend.
func New(cfg *config.Config, backend *store.Backend, svc *service.Services, opts Options) (*Server, error) {
	var limiter *middleware.RateLimiter
	if opts.Redis != nil {
		limit, err := cfg.RateLimit()
		if err != nil {
			return nil, fmt.Errorf("invalid contact rate limit: %w", err)
		}
		limiter = middleware.NewContactRateLimiter(opts.Redis, limit)
	}

	engine := router.SetupRouter(router.Deps{
		Handlers:    api.NewHandlers(svc, opts.Images, limiter),
		Health:      api.NewHealthHandler("portfolio-backend", Version, backend),
		CORSOrigins: cfg.CORSOrigins,
		Logger:      logrus.StandardLogger(),
	})

	return &Server{
		router:  engine,
		backend: backend,
		redis:   opts.Redis,
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logrus.WithField("addr", s.http.Addr).Info("Starting HTTP server")
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.Shutdown(shutdownCtx)
}

// Shutdown drains the HTTP server, then closes the store and Redis.
func (s *Server) Shutdown(ctx context.Context) error {
	logrus.Info("Shutting down server")
	err := s.http.Shutdown(ctx)

	if s.redis != nil {
		if cerr := s.redis.Close(); cerr != nil {
			logrus.WithError(cerr).Warn("failed to close Redis client")
		}
	}
	if cerr := s.backend.Close(ctx); cerr != nil {
		err = errors.Join(err, cerr)
	}
	return err
}
