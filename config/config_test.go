package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setSecrets(t *testing.T) {
	t.Helper()
	t.Setenv("ACCESS_TOKEN_SECRET", "access-secret")
	t.Setenv("REFRESH_TOKEN_SECRET", "refresh-secret")
}

func TestLoadDefaults(t *testing.T) {
	setSecrets(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Port)
	assert.False(t, cfg.Production())
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "wetube", cfg.Mongo.DB)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "wetube-media", cfg.Storage.Bucket)
	assert.Equal(t, 24*time.Hour, cfg.Token.AccessTTL)
	assert.Equal(t, 240*time.Hour, cfg.Token.RefreshTTL)
}

func TestLoadRequiresTokenSecrets(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "")
	t.Setenv("REFRESH_TOKEN_SECRET", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	setSecrets(t)
	t.Setenv("ENV", "PRODUCTION")
	t.Setenv("PORT", "9090")
	t.Setenv("MONGO_URI", "mongodb://db0.internal:27017")
	t.Setenv("REDIS_HOST", "cache.internal:6380")
	t.Setenv("ACCESS_TOKEN_EXPIRY", "15m")
	t.Setenv("REFRESH_TOKEN_EXPIRY", "720h")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Production())
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "mongodb://db0.internal:27017", cfg.Mongo.URI)
	assert.Equal(t, "cache.internal:6380", cfg.Redis.Addr)
	assert.Equal(t, 15*time.Minute, cfg.Token.AccessTTL)
	assert.Equal(t, 720*time.Hour, cfg.Token.RefreshTTL)
}
