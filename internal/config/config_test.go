package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"KOMOJU_SECRET_KEY", "KOMOJU_WEBHOOK_SECRET", "KOMOJU_BASE_URL",
		"PORT", "VERCEL_URL", "APP_BASE_URL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_RequiresSecrets(t *testing.T) {
	t.Run("missing secret key", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("KOMOJU_WEBHOOK_SECRET", "whsec_test")

		_, err := Load()
		require.ErrorIs(t, err, ErrMissingSecretKey)
	})

	t.Run("missing webhook secret", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("KOMOJU_SECRET_KEY", "sk_test")

		_, err := Load()
		require.ErrorIs(t, err, ErrMissingWebhookSecret)
	})

	t.Run("whitespace secret is still missing", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("KOMOJU_SECRET_KEY", "   ")
		t.Setenv("KOMOJU_WEBHOOK_SECRET", "whsec_test")

		_, err := Load()
		require.ErrorIs(t, err, ErrMissingSecretKey)
	})
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("KOMOJU_SECRET_KEY", "sk_test")
	t.Setenv("KOMOJU_WEBHOOK_SECRET", "whsec_test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://komoju.com/api/v1", cfg.KomojuBaseURL)
	assert.Equal(t, "sk_test", cfg.KomojuSecretKey)
	assert.Equal(t, "whsec_test", cfg.WebhookSecret)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
}

func TestLoad_BaseURLPrecedence(t *testing.T) {
	t.Run("platform host wins", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("KOMOJU_SECRET_KEY", "sk_test")
		t.Setenv("KOMOJU_WEBHOOK_SECRET", "whsec_test")
		t.Setenv("VERCEL_URL", "shop.vercel.app")
		t.Setenv("APP_BASE_URL", "https://shop.example.com")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "https://shop.vercel.app", cfg.BaseURL)
	})

	t.Run("explicit override next", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("KOMOJU_SECRET_KEY", "sk_test")
		t.Setenv("KOMOJU_WEBHOOK_SECRET", "whsec_test")
		t.Setenv("APP_BASE_URL", "https://shop.example.com")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "https://shop.example.com", cfg.BaseURL)
	})
}
