package configs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, "json", cfg.Redis.Codec)
	require.Empty(t, cfg.Redis.ClusterAddrs)
	require.True(t, cfg.Captcha.Enabled)
	require.Equal(t, 2*time.Minute, cfg.Captcha.TTL)
	require.Equal(t, "captcha_codes", cfg.Captcha.KeyPrefix)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("REDIS_CLUSTER_ADDRS", "10.0.0.1:7000, 10.0.0.2:7000,")
	t.Setenv("CAPTCHA_ENABLED", "false")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("REDIS_DB", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, []string{"10.0.0.1:7000", "10.0.0.2:7000"}, cfg.Redis.ClusterAddrs)
	require.False(t, cfg.Captcha.Enabled)
	require.Equal(t, 30*time.Second, cfg.RateLimit.Window)
	require.Equal(t, 0, cfg.Redis.DB)
}
