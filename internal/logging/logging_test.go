package logging

import (
	"testing"

	"github.com/pageza/portfolio/backend/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure(t *testing.T) {
	log := logrus.New()

	require.NoError(t, Configure(log, "debug", config.Production))
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)

	require.NoError(t, Configure(log, "warn", config.Development))
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, log.Formatter)

	assert.Error(t, Configure(log, "loud", config.Development))
}
