//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDatabaseSettings_FromEnv(t *testing.T) {
	t.Setenv("HBNB_MYSQL_USER", "hbnb_test")
	t.Setenv("HBNB_MYSQL_PWD", "hbnb_test_pwd")
	t.Setenv("HBNB_MYSQL_DB", "hbnb_test_db")
	t.Setenv("HBNB_ENV", "test")

	settings, err := LoadDatabaseSettings("")
	require.NoError(t, err)

	assert.Equal(t, MysqlDbType, settings.Type)
	assert.Equal(t, "hbnb_test", settings.User)
	assert.Equal(t, DefaultDBHost, settings.Host)
	assert.True(t, settings.IsTestEnv())
	assert.Equal(t, "hbnb_test:hbnb_test_pwd@tcp(localhost)/hbnb_test_db?charset=utf8mb4&parseTime=True&loc=UTC", settings.ConnectionString())
}

func TestLoadDatabaseSettings_SqliteFromEnv(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "hbnb.db")
	t.Setenv("HBNB_DB_TYPE", SqliteDbType)
	t.Setenv("HBNB_DB_DSN", dsn)
	t.Setenv("HBNB_ENV", "")

	settings, err := LoadDatabaseSettings("")
	require.NoError(t, err)

	assert.Equal(t, SqliteDbType, settings.Type)
	assert.Equal(t, dsn, settings.DSN)
	assert.Equal(t, dsn, settings.ConnectionString())
	assert.False(t, settings.IsTestEnv())
}

func TestLoadDatabaseSettings_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cli.yaml")
	content := `database:
  type: mysql
  user: from_file
  name: file_db
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("HBNB_MYSQL_USER", "from_env")
	t.Setenv("HBNB_MYSQL_DB", "")

	settings, err := LoadDatabaseSettings(path)
	require.NoError(t, err)

	assert.Equal(t, "from_env", settings.User)
	assert.Equal(t, "file_db", settings.Name)
}

func TestLoadDatabaseSettings_MissingMysqlValues(t *testing.T) {
	t.Setenv("HBNB_DB_TYPE", MysqlDbType)

	_, err := LoadDatabaseSettings("")
	assert.Error(t, err)
}

func TestInitializeRestConfig_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rest-app.yaml")
	content := `port: "8080"
database:
  type: sqlite
  dsn: "file::memory:"
logger:
  log_level: debug
  log_type: console
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("HBNB_LOG_LEVEL", "error")

	cfg, err := InitializeRestConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, SqliteDbType, cfg.Database.Type)
	assert.Equal(t, "file::memory:", cfg.Database.DSN)
	assert.Equal(t, LogLevelError, cfg.Logger.LogLevel)
}

func TestInitializeRestConfig_MissingFile(t *testing.T) {
	_, err := InitializeRestConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
