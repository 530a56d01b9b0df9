package config

import "time"

type Configs struct {
	Env string `toml:"env"`

	Bot     BotConfigs     `toml:"bot"`
	Api     ApiConfigs     `toml:"api"`
	Gateway GatewayConfigs `toml:"gateway"`
	Log     LogConfigs     `toml:"log"`
}

type BotConfigs struct {
	// Token is the bot token sent in the Authorization header and in the
	// gateway identify payload. GOCORD_BOT_TOKEN overrides it when set.
	Token  string `toml:"token"`
	Prefix string `toml:"prefix"`
}

type ApiConfigs struct {
	URL     string        `toml:"url"`
	Timeout time.Duration `toml:"timeout"`
}

type GatewayConfigs struct {
	// URL is a fixed gateway address. When empty, the client resolves it
	// through the REST endpoint before connecting.
	URL            string `toml:"url"`
	Version        int    `toml:"version"`
	Encoding       string `toml:"encoding"`
	Compress       bool   `toml:"compress"`
	LargeThreshold int    `toml:"large_threshold"`
	ShardID        int    `toml:"shard_id"`
	ShardCount     int    `toml:"shard_count"`

	HandshakeTimeout time.Duration `toml:"handshake_timeout"`
	MaxBackoff       time.Duration `toml:"max_backoff"`
}

type LogConfigs struct {
	Level string `toml:"level"`
}
