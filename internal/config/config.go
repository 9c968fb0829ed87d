package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// envPrefix is the prefix for environment variable overrides (MAE_*).
const envPrefix = "MAE"

// Config represents the complete pipeline configuration.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Paths    PathsConfig    `yaml:"paths" envconfig:"PATHS"`
	Pipeline PipelineConfig `yaml:"pipeline" envconfig:"PIPELINE"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" envconfig:"FORMAT" validate:"oneof=text json"`
}

// PipelineConfig contains event-window parameters. The defaults cover the
// standard 1-30 calendar day post-announcement horizon.
type PipelineConfig struct {
	WindowStartDay int `yaml:"window_start_day" envconfig:"WINDOW_START_DAY" validate:"min=1"`
	WindowEndDay   int `yaml:"window_end_day" envconfig:"WINDOW_END_DAY" validate:"gtefield=WindowStartDay"`
}

// Default returns the configuration defaults applied before any file or
// environment overrides.
func Default() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Paths: DefaultPaths(),
		Pipeline: PipelineConfig{
			WindowStartDay: 1,
			WindowEndDay:   30,
		},
	}
}

// Load builds the configuration in three layers: defaults, then the YAML
// file at configPath (skipped when empty or absent), then MAE_-prefixed
// environment variables. Later layers win.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return validate.Struct(c)
}
