package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		if v, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, v) })
		}
		os.Unsetenv(key)
	}
}

func TestLoadFromEnv(t *testing.T) {
	unsetEnv(t, "LOG_LEVEL", "JWT_TTL", "AUTH_REQUIRED")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("PORT", "8081")
	t.Setenv("CORS_ORIGINS", "http://a.test,http://b.test")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.JWTSecret)
	assert.Equal(t, ":8081", cfg.Addr())
	assert.Equal(t, 10*time.Minute, cfg.TokenTTL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.AuthRequired)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
}

func TestLoadRequiresSecret(t *testing.T) {
	unsetEnv(t, "JWT_SECRET")

	_, err := Load("")
	assert.Error(t, err)
}

func TestLoadFromFile(t *testing.T) {
	unsetEnv(t, "PORT", "JWT_SECRET", "JWT_TTL", "FIREBASE_PROJECT_ID")
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "port: \"4000\"\njwt_secret: from-file\njwt_ttl: 5m\nfirebase:\n  project_id: demo\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, "from-file", cfg.JWTSecret)
	assert.Equal(t, 5*time.Minute, cfg.TokenTTL)
	assert.Equal(t, "demo", cfg.Firebase.ProjectID)
}

func TestLoadMissingFileFallsBackToEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "env-secret", cfg.JWTSecret)
}

func TestFirebaseKeyAndValidate(t *testing.T) {
	fb := FirebaseConfig{ProjectID: "p", ClientEmail: "svc@p.iam", PrivateKey: `line1\nline2`}
	assert.Equal(t, "line1\nline2", fb.Key())
	assert.NoError(t, fb.Validate())

	assert.Error(t, FirebaseConfig{ProjectID: "p"}.Validate())
	assert.NoError(t, FirebaseConfig{CredentialsFile: "/tmp/key.json"}.Validate())
}
