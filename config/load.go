package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	defaultApiURL   = "https://discord.com/api"
	defaultEncoding = "json"
	defaultVersion  = 6
)

// Load reads a TOML config file and applies defaults. An empty path
// returns a config built only from defaults and the environment.
func Load(path string) (*Configs, error) {
	configs := &Configs{}
	if path != "" {
		if _, err := toml.DecodeFile(path, configs); err != nil {
			return nil, err
		}
	}

	applyDefaults(configs)

	if token := os.Getenv("GOCORD_BOT_TOKEN"); token != "" {
		configs.Bot.Token = token
	}

	return configs, nil
}

func applyDefaults(configs *Configs) {
	if configs.Env == "" {
		configs.Env = "prod"
	}

	if configs.Bot.Prefix == "" {
		configs.Bot.Prefix = "!"
	}

	if configs.Api.URL == "" {
		configs.Api.URL = defaultApiURL
	}

	if configs.Api.Timeout == 0 {
		configs.Api.Timeout = 10 * time.Second
	}

	if configs.Gateway.Version == 0 {
		configs.Gateway.Version = defaultVersion
	}

	if configs.Gateway.Encoding == "" {
		configs.Gateway.Encoding = defaultEncoding
	}

	if configs.Gateway.LargeThreshold == 0 {
		configs.Gateway.LargeThreshold = 250
	}

	if configs.Gateway.ShardCount == 0 {
		configs.Gateway.ShardCount = 1
	}

	if configs.Gateway.HandshakeTimeout == 0 {
		configs.Gateway.HandshakeTimeout = 30 * time.Second
	}

	if configs.Gateway.MaxBackoff == 0 {
		configs.Gateway.MaxBackoff = time.Minute
	}

	if configs.Log.Level == "" {
		configs.Log.Level = "info"
	}
}
