package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgconfig "github.com/rdinit/hackathonService/pkg/config"
)

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	t.Setenv("HACKATHON_AUTH_VERIFY_SIGNATURE", "false")

	cfg, err := LoadConfig(pkgconfig.WithConfigDir(t.TempDir()), pkgconfig.WithOptionalFile())
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTP.Port)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, 200*time.Millisecond, cfg.Database.SlowThreshold)
	assert.False(t, cfg.Auth.VerifySignature)
	assert.False(t, cfg.Hackathon.ValidateWindows)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hackathon.yaml"), []byte(`
server:
  http:
    port: 8181
database:
  host: pg
  name: hackathons
auth:
  verify_signature: true
  secret: from-file
hackathon:
  validate_windows: true
`), 0o644))
	t.Setenv("HACKATHON_DATABASE_PASSWORD", "s3cret")

	cfg, err := LoadConfig(pkgconfig.WithConfigDir(dir))
	require.NoError(t, err)

	assert.Equal(t, 8181, cfg.Server.HTTP.Port)
	assert.Equal(t, "from-file", cfg.Auth.Secret)
	assert.True(t, cfg.Hackathon.ValidateWindows)
	assert.Equal(t, "host=pg port=5432 user=postgres password=s3cret dbname=hackathons sslmode=disable", cfg.Database.DSN())
}

func TestLoadConfig_RequiresSecretWhenVerifying(t *testing.T) {
	_, err := LoadConfig(pkgconfig.WithConfigDir(t.TempDir()), pkgconfig.WithOptionalFile())
	assert.ErrorContains(t, err, "auth.secret")
}
