package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "library.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigFile(t *testing.T) {
	t.Run("Defaults and duration conversion", func(t *testing.T) {
		path := writeConfig(t, `
database:
  driver: sqlite
  path: /tmp/library.db
library:
  timezone: Asia/Kolkata
`)
		cfg, err := LoadConfigFile(path)
		require.NoError(t, err)

		assert.Equal(t, 5000, cfg.Server.Port)
		assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
		assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
		assert.Equal(t, 5*time.Second, cfg.Database.QueryTimeout)
		assert.Equal(t, "sqlite", cfg.Database.Driver)
		assert.Equal(t, "/tmp/library.db", cfg.Database.Path)
		assert.Equal(t, 3, cfg.Library.CheckoutMaxRetries)
		assert.Equal(t, "Asia/Kolkata", cfg.Library.Location().String())
		assert.False(t, cfg.Auth.Enabled)
	})

	t.Run("Environment overrides win over the file", func(t *testing.T) {
		t.Setenv("LIB_DB_HOST", "db.internal")
		t.Setenv("LIB_DB_PASSWORD", "s3cret")
		t.Setenv("LIB_LIBRARY_CHECKOUT_MAX_RETRIES", "7")
		path := writeConfig(t, `
database:
  driver: postgres
  host: localhost
  password: from-file
`)
		cfg, err := LoadConfigFile(path)
		require.NoError(t, err)

		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.Equal(t, "s3cret", cfg.Database.Password)
		assert.Equal(t, 7, cfg.Library.CheckoutMaxRetries)
	})

	t.Run("Unsupported driver", func(t *testing.T) {
		path := writeConfig(t, "database:\n  driver: oracle\n")
		_, err := LoadConfigFile(path)
		assert.ErrorContains(t, err, "unsupported database driver")
	})

	t.Run("Invalid timezone", func(t *testing.T) {
		path := writeConfig(t, "library:\n  timezone: Mars/Olympus\n")
		_, err := LoadConfigFile(path)
		assert.ErrorContains(t, err, "invalid library timezone")
	})

	t.Run("Auth enabled without users", func(t *testing.T) {
		path := writeConfig(t, `
auth:
  enabled: true
  sessionSecret: 0123456789abcdef0123456789abcdef
`)
		_, err := LoadConfigFile(path)
		assert.ErrorContains(t, err, "auth.users")
	})
}

func TestLibraryConfigLocation(t *testing.T) {
	assert.Equal(t, time.UTC, LibraryConfig{}.Location())
	assert.Equal(t, time.UTC, LibraryConfig{Timezone: "nowhere"}.Location())
}
