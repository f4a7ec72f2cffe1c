package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "sistema_notas_v2.db", cfg.Database.Path)
	assert.Equal(t, 5*time.Second, cfg.Database.BusyTimeout)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddr)
	assert.Equal(t, []string{
		"https://site.suporteverde.com.br/md/",
		"http://localhost:5173",
	}, cfg.Server.CORSOrigins)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, int64(16<<20), cfg.Upload.MaxBytes)
	assert.Equal(t, "info", cfg.Logging.Level)

	require.NoError(t, cfg.Validate())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("DB_PATH", "/tmp/notas.db")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("UPLOAD_MAX_BYTES", "1048576")
	t.Setenv("DB_BUSY_TIMEOUT", "250ms")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := LoadConfig()

	assert.Equal(t, "/tmp/notas.db", cfg.Database.Path)
	assert.Equal(t, ":9090", cfg.Server.HTTPAddr)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSOrigins)
	assert.Equal(t, int64(1048576), cfg.Upload.MaxBytes)
	assert.Equal(t, 250*time.Millisecond, cfg.Database.BusyTimeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfigIgnoresMalformedValues(t *testing.T) {
	t.Setenv("UPLOAD_MAX_BYTES", "not-a-number")
	t.Setenv("DB_BUSY_TIMEOUT", "soon")

	cfg := LoadConfig()

	assert.Equal(t, int64(16<<20), cfg.Upload.MaxBytes)
	assert.Equal(t, 5*time.Second, cfg.Database.BusyTimeout)
}

func TestValidate(t *testing.T) {
	cfg := LoadConfig()
	cfg.Database.Path = ""
	assert.Error(t, cfg.Validate())

	cfg = LoadConfig()
	cfg.Server.HTTPAddr = ""
	assert.Error(t, cfg.Validate())

	cfg = LoadConfig()
	cfg.Upload.MaxBytes = 0
	assert.Error(t, cfg.Validate())
}
