package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, "postgres", cfg.Database.Driver)
	require.Equal(t, "clubsphere", cfg.Database.DBName)
	require.Equal(t, "1h", cfg.JWT.AccessTokenExpiration)
	require.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	content := `
server:
  port: "9090"
  mode: production
database:
  host: db.internal
  dbname: clubsphere_test
logging:
  level: debug
  format: text
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	require.Equal(t, "9090", cfg.Server.Port)
	require.Equal(t, "production", cfg.Server.Mode)
	require.Equal(t, "db.internal", cfg.Database.Host)
	require.Equal(t, "clubsphere_test", cfg.Database.DBName)
	require.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("DB_HOST", "env-host")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	require.Equal(t, "3000", cfg.Server.Port)
	require.Equal(t, "env-host", cfg.Database.Host)
}

func TestLoadConfigMissingJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)
	cfg.Database.Host = "localhost"
	cfg.Database.Port = "5432"
	cfg.Database.User = "app"
	cfg.Database.Password = "pw"
	cfg.Database.DBName = "clubs"

	require.Equal(t,
		"postgres://app:pw@localhost:5432/clubs?sslmode=disable",
		cfg.GetPostgresConnectionString())
}
