package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "op@example.com")
	t.Setenv("ADMIN_SENHA", "secret")
	t.Setenv("TOKEN_SECRET", "hmac-secret")

	cfg := LoadConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "fs", cfg.StorageDriver)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 12*time.Hour, cfg.TokenTTL)
	assert.Equal(t, time.Hour, cfg.ReconcileInterval)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "op@example.com")
	t.Setenv("ADMIN_SENHA", "secret")
	t.Setenv("TOKEN_SECRET", "hmac-secret")
	t.Setenv("STORAGE_DRIVER", "sqlite")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("PORT", "9090")
	t.Setenv("ALLOWED_ORIGINS", "https://fotosdotap.com.br, https://admin.fotosdotap.com.br")

	cfg := LoadConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "sqlite", cfg.StorageDriver)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t,
		[]string{"https://fotosdotap.com.br", "https://admin.fotosdotap.com.br"},
		cfg.AllowedOrigins,
	)
}

func TestConfigValidate(t *testing.T) {
	base := Config{
		AdminEmail:    "op@example.com",
		AdminSenha:    "secret",
		TokenSecret:   "hmac-secret",
		StorageDriver: "memory",
	}
	require.NoError(t, base.Validate())

	missingOp := base
	missingOp.AdminSenha = ""
	assert.ErrorIs(t, missingOp.Validate(), errMissingOperator)

	missingSecret := base
	missingSecret.TokenSecret = ""
	assert.ErrorIs(t, missingSecret.Validate(), errMissingTokenSecret)

	badDriver := base
	badDriver.StorageDriver = "s3"
	assert.ErrorIs(t, badDriver.Validate(), errUnknownDriver)
}
