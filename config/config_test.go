package config_test

import (
	"testing"
	"time"

	"wirpackens-service/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "")
	t.Setenv("HTTP_PORT", "")
	t.Setenv("REDIS_HOST", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.HttpServer.Port)
	assert.Equal(t, "memory", cfg.App.StorageDriver)
	assert.Equal(t, "eur", cfg.Stripe.Currency)
	assert.Equal(t, 5*time.Minute, cfg.Stripe.WebhookTolerance)
	assert.Equal(t, "kontakt@wirpackens.org", cfg.Mail.TeamAddress)
	assert.False(t, cfg.Redis.Enabled())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "8081")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("BASE_URL", "https://wirpackens.org")
	t.Setenv("REDIS_HOST", "redis")
	t.Setenv("HTTP_CLIENT_TIMEOUT", "3s")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.HttpServer.Port)
	assert.Equal(t, "sk_test_123", cfg.Stripe.SecretKey)
	assert.Equal(t, "https://wirpackens.org", cfg.App.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.HttpClient.Timeout)
	assert.True(t, cfg.Redis.Enabled())
}
