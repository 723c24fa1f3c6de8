package config_test

import (
	"testing"

	"github.com/demarillacizere/payment-api/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := config.LoadConfig()

	assert.Error(t, err)
}

func TestLoadConfigReadsEnvironment(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DB_HOST", "db.example.com")
	t.Setenv("DB_NAME", "payments")
	t.Setenv("PORT", "9090")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.JWTSecret)
	assert.Equal(t, "db.example.com", cfg.DBHost)
	assert.Equal(t, "payments", cfg.DBName)
	assert.Equal(t, "9090", cfg.Port)
}

func TestLoadConfigDefaultsPort(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("PORT", "")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
}
