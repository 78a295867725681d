package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// envPrefix is stripped from environment variables before mapping them onto
// config keys.
const envPrefix = "ZENGROW_"

// defaultConfig holds the baseline configuration. File and environment
// values layer on top of it.
var defaultConfig = []byte(`
server:
  host: 127.0.0.1
  port: 8420
  shutdown_timeout: 10s

logging:
  level: info
  format: json

database:
  path: zengrow.db

openai:
  model: gpt-4o-mini
  timeout: 60s

alarms:
  enabled: true
  check_interval: 30s

reminders:
  enabled: true
  check_interval: 1m
  seed_defaults: true
`)

// Load builds the configuration from defaults, an optional YAML file, and
// ZENGROW_* environment variables, in increasing precedence.
//
// Environment variables use underscore separators and are uppercased. The
// first underscore after the prefix splits section from field:
//
//	ZENGROW_SERVER_PORT           -> server.port
//	ZENGROW_OPENAI_API_KEY        -> openai.api_key
//	ZENGROW_REMINDERS_CHECK_INTERVAL -> reminders.check_interval
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(rawbytes.Provider(defaultConfig), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load default config: %w", err)
	}

	if configPath != "" {
		content, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		lower := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		parts := strings.SplitN(lower, "_", 2)
		if len(parts) == 1 {
			return lower
		}
		return parts[0] + "." + parts[1]
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}
