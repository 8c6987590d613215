package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "console.db", c.DatabaseDSN)
	assert.Equal(t, 24*time.Hour, c.SessionValidity)
	assert.Equal(t, 1*time.Second, c.LoginDelay)
	assert.False(t, c.Demo)
	assert.Equal(t, "1", c.OperatorID)
	assert.Equal(t, "admin@example.com", c.OperatorUsername)
	assert.Equal(t, "admin@example.com", c.OperatorEmail)
	assert.Equal(t, "changeme", c.OperatorPassword)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), c.OperatorCreatedAt)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "console.db", cfg.DatabaseDSN)
	assert.Equal(t, 24*time.Hour, cfg.SessionValidity)
}
