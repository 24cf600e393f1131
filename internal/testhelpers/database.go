// Package testhelpers builds stores for tests: an in-memory SQLite database
// and container-backed Postgres and MongoDB instances.
package testhelpers

import (
	"context"
	"fmt"
	"os/exec"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/pageza/portfolio/backend/internal/database"
	"github.com/pageza/portfolio/backend/internal/store"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLiteDB returns a migrated backend over a private in-memory SQLite
// database. It is closed when the test ends.
func NewSQLiteDB(t testing.TB) *store.Backend {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sqlite connection: %v", err)
	}
	// The in-memory database lives as long as one connection does.
	sqlDB.SetMaxOpenConns(1)

	backend := store.NewGormBackend(store.DriverSQLite, db)
	if err := database.Migrate(context.Background(), backend); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = backend.Close(context.Background())
	})
	return backend
}

func requireDocker(t testing.TB) {
	t.Helper()
	if _, err := exec.LookPath("docker"); err != nil {
		t.Skip("docker not installed, skipping container-based test")
	}
}

func startContainer(t testing.TB, req testcontainers.ContainerRequest, port nat.Port) (string, func()) {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("failed to start container: %v", err)
	}

	terminate := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := container.Terminate(ctx); err != nil {
			t.Errorf("failed to terminate container: %v", err)
		}
	}

	host, err := container.Host(ctx)
	if err != nil {
		terminate()
		t.Fatalf("failed to get container host: %v", err)
	}
	mappedPort, err := container.MappedPort(ctx, port)
	if err != nil {
		terminate()
		t.Fatalf("failed to get container port: %v", err)
	}
	return fmt.Sprintf("%s:%s", host, mappedPort.Port()), terminate
}

// SetupPostgres starts a PostgreSQL container and returns a migrated backend.
func SetupPostgres(t testing.TB) *store.Backend {
	t.Helper()
	requireDocker(t)

	addr, terminate := startContainer(t, testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_DB":       "portfolio",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
		).WithDeadline(60 * time.Second),
	}, "5432/tcp")
	t.Cleanup(terminate)

	dsn := fmt.Sprintf("postgres://postgres:postgres@%s/portfolio?sslmode=disable", addr)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}

	backend := store.NewGormBackend(store.DriverPostgres, db)
	if err := database.Migrate(context.Background(), backend); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	t.Cleanup(func() { _ = backend.Close(context.Background()) })
	return backend
}

// SetupMongo starts a MongoDB container and returns a backend over a fresh
// database with indexes in place.
func SetupMongo(t testing.TB) *store.Backend {
	t.Helper()
	requireDocker(t)

	addr, terminate := startContainer(t, testcontainers.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForListeningPort("27017/tcp").WithStartupTimeout(60 * time.Second),
	}, "27017/tcp")
	t.Cleanup(terminate)

	backend, err := database.OpenMongo("mongodb://"+addr, "portfolio_test")
	if err != nil {
		t.Fatalf("failed to connect to mongo: %v", err)
	}
	t.Cleanup(func() { _ = backend.Close(context.Background()) })

	if err := database.Migrate(context.Background(), backend); err != nil {
		t.Fatalf("failed to create mongo indexes: %v", err)
	}
	return backend
}
