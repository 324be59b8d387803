package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, defaultPort, cfg.Port)
	assert.Equal(t, defaultEnv, cfg.Env)
	assert.True(t, cfg.IsDev())
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: 9090
env: production
dsn: "user:pass@tcp(db:3306)/app"
allowed_origins:
  - https://modelmart.example.com
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.False(t, cfg.IsDev())
	assert.Equal(t, "user:pass@tcp(db:3306)/app", cfg.ResolveDSN())
	assert.Equal(t, []string{"https://modelmart.example.com"}, cfg.AllowedOrigins)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("port: [not an int"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestResolveDSNFromParts(t *testing.T) {
	cfg := &AppConfig{Database: DatabaseConfig{
		Host: "db.internal", Port: 3307, User: "svc", Password: "s3cret", Name: "mart", Charset: "utf8mb4",
	}}
	assert.Equal(t,
		"svc:s3cret@tcp(db.internal:3307)/mart?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.ResolveDSN())
}
