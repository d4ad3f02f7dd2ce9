package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TIKKEUL_CONFIG", "")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/tikkeul")
	t.Setenv("AUTH_KEY", "secret")
	t.Setenv("UPLOAD_SIGNING_KEY", "upload-secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8000", cfg.ListenAddr)
	assert.Equal(t, []string{"http://127.0.0.1:5173"}, cfg.CORSOrigins)
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenTTL())
	assert.Equal(t, 15*time.Minute, cfg.Uploads.URLTTL)
	assert.Equal(t, 24*time.Hour, cfg.OrphanSweep.Grace)
	assert.Equal(t, "upload-secret", cfg.Uploads.SigningKey)
}

func TestLoadRejectsSharedSigningKey(t *testing.T) {
	t.Setenv("TIKKEUL_CONFIG", "")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/tikkeul")
	t.Setenv("AUTH_KEY", "secret")
	t.Setenv("UPLOAD_SIGNING_KEY", "secret")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UPLOAD_SIGNING_KEY must differ")
}

func TestLoadReportsMissingRequired(t *testing.T) {
	t.Setenv("TIKKEUL_CONFIG", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("AUTH_KEY", "")
	t.Setenv("UPLOAD_SIGNING_KEY", "")
	t.Setenv("LISTEN_ADDR", ":9999")

	cfg, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
	assert.Contains(t, err.Error(), "AUTH_KEY")
	assert.Contains(t, err.Error(), "UPLOAD_SIGNING_KEY not set")
	assert.Equal(t, ":9999", cfg.ListenAddr)
}
