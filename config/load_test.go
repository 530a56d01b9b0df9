package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	configs, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "prod", configs.Env)
	require.Equal(t, "!", configs.Bot.Prefix)
	require.Equal(t, "https://discord.com/api", configs.Api.URL)
	require.Equal(t, 6, configs.Gateway.Version)
	require.Equal(t, "json", configs.Gateway.Encoding)
	require.Equal(t, 250, configs.Gateway.LargeThreshold)
	require.Equal(t, 1, configs.Gateway.ShardCount)
	require.Equal(t, 30*time.Second, configs.Gateway.HandshakeTimeout)
	require.Equal(t, time.Minute, configs.Gateway.MaxBackoff)
	require.Equal(t, "info", configs.Log.Level)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot.toml")
	content := `
env = "dev"

[bot]
token = "secret"
prefix = "?"

[gateway]
url = "wss://gateway.discord.gg"
compress = true
shard_id = 1
shard_count = 4

[log]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	configs, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "dev", configs.Env)
	require.Equal(t, "secret", configs.Bot.Token)
	require.Equal(t, "?", configs.Bot.Prefix)
	require.Equal(t, "wss://gateway.discord.gg", configs.Gateway.URL)
	require.True(t, configs.Gateway.Compress)
	require.Equal(t, 1, configs.Gateway.ShardID)
	require.Equal(t, 4, configs.Gateway.ShardCount)
	require.Equal(t, "debug", configs.Log.Level)

	// Unset fields still fall back to defaults.
	require.Equal(t, "https://discord.com/api", configs.Api.URL)
	require.Equal(t, 6, configs.Gateway.Version)
}

func TestLoadTokenFromEnvironment(t *testing.T) {
	t.Setenv("GOCORD_BOT_TOKEN", "env-token")

	configs, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "env-token", configs.Bot.Token)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}
