package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_USER", "testuser")
	t.Setenv("DB_PASSWORD", "testpass")
	t.Setenv("DB_NAME", "testdb")
	t.Setenv("REDIS_HOST", "cache.internal")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ACCESS_TOKEN_TTL", "5m")
	t.Setenv("CORS_ORIGINS", "https://sekor.example, https://admin.sekor.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "6543", cfg.DBPort)
	assert.Equal(t, "testuser", cfg.DBUser)
	assert.Equal(t, "testpass", cfg.DBPassword)
	assert.Equal(t, "testdb", cfg.DBName)
	assert.Equal(t, "cache.internal:6380", cfg.RedisAddr())
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, 5*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, []string{"https://sekor.example", "https://admin.sekor.example"}, cfg.CORSOrigins)
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "local", cfg.StorageDriver)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.RefreshTokenTTL)
	assert.Equal(t, 100, cfg.RateLimitMax)
	assert.Equal(t, 15*time.Minute, cfg.RateLimitWindow)
	assert.False(t, cfg.RateLimitEnabled)
}

func TestLoadConfig_ProductionEnablesRateLimit(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.RateLimitEnabled)
}

func TestLoadConfig_RateLimitOverride(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.RateLimitEnabled)
}

func TestRabbitMQURL(t *testing.T) {
	cfg := &Config{RabbitMQUser: "guest", RabbitMQPassword: "pw", RabbitMQHost: "mq", RabbitMQPort: "5672"}
	assert.Equal(t, "amqp://guest:pw@mq:5672/", cfg.RabbitMQURL())
}
