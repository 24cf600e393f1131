package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// driverRequirements lists the settings each store driver needs.
var driverRequirements = map[string][]struct {
	name  string
	value func(*Config) string
}{
	"postgres": {{"DATABASE_URL", func(c *Config) string { return c.DatabaseURL }}},
	"sqlite":   {{"SQLITE_PATH", func(c *Config) string { return c.SQLitePath }}},
	"mongo": {
		{"MONGO_URL", func(c *Config) string { return c.MongoURL }},
		{"DB_NAME", func(c *Config) string { return c.DBName }},
	},
}

// ValidateConfig checks the configuration and reports every problem at once.
func ValidateConfig(cfg *Config) error {
	var errors []ValidationError

	reqs, ok := driverRequirements[cfg.StoreDriver]
	if !ok {
		errors = append(errors, ValidationError{"STORE_DRIVER", fmt.Sprintf("unknown store driver %q", cfg.StoreDriver)})
	}
	for _, req := range reqs {
		if req.value(cfg) == "" {
			errors = append(errors, ValidationError{req.name, fmt.Sprintf("required for store driver %s", cfg.StoreDriver)})
		}
	}

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port <= 0 || port > 65535 {
		errors = append(errors, ValidationError{"SERVER_PORT", fmt.Sprintf("invalid port %q", cfg.ServerPort)})
	}

	if _, err := cfg.RateLimit(); err != nil {
		errors = append(errors, ValidationError{"CONTACT_RATE_LIMIT", err.Error()})
	}

	if cfg.S3BucketName != "" && cfg.AWSRegion == "" {
		errors = append(errors, ValidationError{"AWS_REGION", "required when S3_BUCKET_NAME is set"})
	}

	if len(errors) > 0 {
		msgs := make([]string, len(errors))
		for i, e := range errors {
			msgs[i] = e.Error()
		}
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(msgs, "\n"))
	}

	return nil
}

// RateLimit parses the contact form limit.
func (c *Config) RateLimit() (int, error) {
	n, err := strconv.Atoi(c.ContactRateLimit)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("must be a positive integer, got %q", c.ContactRateLimit)
	}
	return n, nil
}
