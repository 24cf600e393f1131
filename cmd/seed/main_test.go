package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pageza/portfolio/backend/config"
	"github.com/pageza/portfolio/backend/internal/database"
	"github.com/pageza/portfolio/backend/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqliteEnv(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "portfolio.db")
	t.Setenv("SECRETS_DIR", t.TempDir())
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", path)
	t.Setenv("SEED_FILE", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("S3_BUCKET_NAME", "")
	return path
}

func TestRunSeedsOnce(t *testing.T) {
	sqliteEnv(t)

	require.NoError(t, run(""))
	require.NoError(t, run(""))

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	backend, err := database.Open(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = backend.Close(context.Background()) })

	svc, err := service.NewServices(backend)
	require.NoError(t, err)
	skills, err := svc.Skills.List(context.Background(), service.ListOptions{})
	require.NoError(t, err)
	assert.Len(t, skills, 6)
}

func TestRunReportsErrors(t *testing.T) {
	sqliteEnv(t)

	bad := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("profile: [\n"), 0o600))
	assert.Error(t, run(bad))

	assert.Error(t, run(filepath.Join(t.TempDir(), "missing.yaml")))

	t.Setenv("STORE_DRIVER", "mysql")
	assert.Error(t, run(""))
}
