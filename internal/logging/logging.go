// Package logging configures the process-wide logrus logger.
package logging

import (
	"fmt"
	"os"

	"github.com/pageza/portfolio/backend/config"
	"github.com/sirupsen/logrus"
)

// Setup configures the standard logrus logger: JSON in production, text
// elsewhere, at the given level.
func Setup(level string, env config.Environment) error {
	return Configure(logrus.StandardLogger(), level, env)
}

// Configure applies the format and level to log.
func Configure(log *logrus.Logger, level string, env config.Environment) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	log.SetLevel(lvl)
	log.SetOutput(os.Stdout)

	if env == config.Production {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return nil
}
