// Package config provides configuration loading for zengrowd.
package config

import (
	"fmt"
	"time"
)

// Config is the complete zengrowd configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
	Database  DatabaseConfig  `koanf:"database"`
	OpenAI    OpenAIConfig    `koanf:"openai"`
	Alarms    AlarmsConfig    `koanf:"alarms"`
	Reminders RemindersConfig `koanf:"reminders"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Host            string   `koanf:"host"`
	Port            int      `koanf:"port"`
	ShutdownTimeout Duration `koanf:"shutdown_timeout"`
}

// Addr returns the host:port listen address.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `koanf:"level"`  // debug|info|warn|error
	Format string `koanf:"format"` // json|console
}

// DatabaseConfig locates the SQLite database.
type DatabaseConfig struct {
	Path string `koanf:"path"`
}

// OpenAIConfig configures the schedule assistant's model access. An unset
// API key disables the assistant.
type OpenAIConfig struct {
	APIKey  Secret   `koanf:"api_key"`
	Model   string   `koanf:"model"`
	BaseURL string   `koanf:"base_url"`
	Timeout Duration `koanf:"timeout"`
}

// AlarmsConfig controls the alarm checker.
type AlarmsConfig struct {
	Enabled       bool     `koanf:"enabled"`
	CheckInterval Duration `koanf:"check_interval"`
}

// RemindersConfig controls the wellness reminder checker.
type RemindersConfig struct {
	Enabled       bool     `koanf:"enabled"`
	CheckInterval Duration `koanf:"check_interval"`
	SeedDefaults  bool     `koanf:"seed_defaults"`
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}
	if c.Alarms.Enabled && c.Alarms.CheckInterval.Duration() < time.Second {
		return fmt.Errorf("alarms.check_interval must be at least 1s")
	}
	if c.Reminders.Enabled && c.Reminders.CheckInterval.Duration() < time.Second {
		return fmt.Errorf("reminders.check_interval must be at least 1s")
	}
	return nil
}
