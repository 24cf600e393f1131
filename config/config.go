package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment Environment

	// Server configuration
	ServerPort  string
	ServerHost  string
	CORSOrigins []string

	// Store configuration
	StoreDriver string
	DatabaseURL string
	SQLitePath  string
	MongoURL    string
	DBName      string

	// Redis configuration, optional
	RedisURL         string
	ContactRateLimit string

	// Profile image storage, optional
	S3BucketName string
	AWSRegion    string

	LogLevel string
	SeedFile string
}

// LoadConfig creates a new Config instance with values from the environment.
// A .env file in the working directory is loaded first when present.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	env := GetEnvironment()
	cfg := &Config{
		Environment:      env,
		ServerPort:       getEnv("SERVER_PORT", "8001"),
		ServerHost:       getEnv("SERVER_HOST", ""),
		CORSOrigins:      splitList(getEnv("CORS_ORIGINS", "*")),
		StoreDriver:      strings.ToLower(getEnv("STORE_DRIVER", "postgres")),
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		SQLitePath:       getEnv("SQLITE_PATH", "portfolio.db"),
		MongoURL:         getEnv("MONGO_URL", ""),
		DBName:           getEnv("DB_NAME", "portfolio"),
		RedisURL:         getEnv("REDIS_URL", ""),
		ContactRateLimit: getEnv("CONTACT_RATE_LIMIT", "5"),
		S3BucketName:     getEnv("S3_BUCKET_NAME", ""),
		AWSRegion:        getEnv("AWS_REGION", ""),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		SeedFile:         getEnv("SEED_FILE", ""),
	}

	// Validate the configuration
	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// getEnv returns the environment variable, falling back to a Docker secret
// of the same name in lower case, then to the default.
func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	if v := readSecret(strings.ToLower(key)); v != "" {
		return v
	}
	return fallback
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
