package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	path := writeTempJSON(t, dir, "flag.json", map[string]any{
		"database_dsn":      "fromjson.db",
		"session_validity":  "48h",
		"login_delay":       "0s",
		"demo":              true,
		"operator_username": "owner@site.dev",
		"operator_password": "s3cret",
	})

	t.Run("loads from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "fromjson.db", cfg.DatabaseDSN)
		assert.Equal(t, 48*time.Hour, cfg.SessionValidity)
		assert.True(t, cfg.Demo)
		assert.Equal(t, "owner@site.dev", cfg.OperatorUsername)
		assert.Equal(t, "s3cret", cfg.OperatorPassword)
		// keys absent from the file keep their defaults
		assert.Equal(t, "admin@example.com", cfg.OperatorEmail)
	})

	t.Run("no config flag leaves cfg unchanged", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{
			DatabaseDSN:     "defaults.db",
			SessionValidity: 42 * time.Hour,
		}
		parseJson(cfg)

		assert.Equal(t, "defaults.db", cfg.DatabaseDSN)
		assert.Equal(t, 42*time.Hour, cfg.SessionValidity)
	})

	t.Run("unreadable file panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(dir, "missing.json")}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}
