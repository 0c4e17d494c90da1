package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigs(t *testing.T, public, private string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "public.yaml"), []byte(public), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "private.yaml"), []byte(private), 0o600))
	return dir
}

func TestMustLoad(t *testing.T) {
	public := `
jwt_ttl: 24h
public_url: "https://iqtrace.example.com"
face_service_url: "http://face:5000"
match_tolerance: 0.5
pg:
  host: localhost
  port: 5432
  user: iqtrace
  password: secret
  dbname: iqtrace
`
	private := `
jwt_key: "supersecret"
email:
  smtp_server: smtp.example.com
  smtp_port: 587
  username: noreply@example.com
  password: mailpass
  sender_name: IQTrace
  timeout: 10
`
	dir := writeConfigs(t, public, private)

	cfg := MustLoad(dir)

	assert.Equal(t, 24*time.Hour, cfg.JwtTTL())
	assert.Equal(t, "https://iqtrace.example.com", cfg.Public.PublicURL)
	assert.Equal(t, "http://face:5000", cfg.Public.FaceServiceURL)
	assert.Equal(t, 0.5, cfg.Public.MatchTolerance)
	assert.Equal(t, "localhost", cfg.Public.Pg.Host)
	assert.Equal(t, "supersecret", cfg.JwtKey())
	assert.Equal(t, "smtp.example.com", cfg.Private.Email.SMTPServer)
}

func TestMustLoadDefaults(t *testing.T) {
	dir := writeConfigs(t, "jwt_ttl: 1h\n", "jwt_key: 'k'\n")

	cfg := MustLoad(dir)

	assert.Equal(t, 0.6, cfg.Public.MatchTolerance)
	assert.Equal(t, 500, cfg.Public.ImageMaxSide)
	assert.Equal(t, []string{"image/png", "image/jpeg"}, cfg.Public.AllowedMimeTypes)
	assert.Equal(t, int64(10<<20), cfg.Public.MaxUploadSize)
}

func TestMustLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "public.yaml"), []byte("jwt_ttl: 1h\n"), 0o600))

	assert.Panics(t, func() { MustLoad(dir) }, "missing private.yaml must panic")
}
