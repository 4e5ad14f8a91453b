// Package config reads the localefixture command configuration from the environment.
package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/dmitrymomot/localefixture/pkg/logger"
)

// Config holds process configuration. Command-line flags take precedence over it.
type Config struct {
	Snapshot  string `env:"LOCALEFIXTURE_SNAPSHOT" env-description:"Snapshot file to use instead of the embedded data"`
	Output    string `env:"LOCALEFIXTURE_OUTPUT" env-default:"text" env-description:"Output format: text, json or yaml"`
	LogLevel  string `env:"LOCALEFIXTURE_LOG_LEVEL" env-default:"info" env-description:"Log level: debug, info, warn or error"`
	LogFormat string `env:"LOCALEFIXTURE_LOG_FORMAT" env-default:"text" env-description:"Log format: text or json"`
}

// Load reads Config from the environment, applying defaults for unset variables.
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("reading environment: %w", err)
	}
	return cfg, nil
}

// Logger returns the logger configuration.
func (c Config) Logger() logger.Config {
	return logger.Config{Level: c.LogLevel, Format: c.LogFormat}
}

// Description lists the supported environment variables.
func Description() (string, error) {
	header := "Environment variables:"
	return cleanenv.GetDescription(&Config{}, &header)
}
