package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Mireles-OConnor/CLI-project/foundation/retry"
	"github.com/Mireles-OConnor/CLI-project/foundation/validator"
)

// Config holds contactbook configuration.
type Config struct {
	// File is the contacts file.
	File string `yaml:"file" validate:"required"`

	Log     LogConfig     `yaml:"log"`
	Save    SaveConfig    `yaml:"save"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Env    string `yaml:"env" validate:"oneof=development debug production"`
	Output string `yaml:"output" validate:"required"` // stderr, stdout or a file path
}

// SaveConfig bounds retries of a failed save.
type SaveConfig struct {
	Attempts        int           `yaml:"attempts" validate:"min=1,max=10"`
	InitialInterval time.Duration `yaml:"initial_interval" validate:"gt=0"`
	MaxInterval     time.Duration `yaml:"max_interval" validate:"gtefield=InitialInterval"`
}

type MetricsConfig struct {
	// Textfile, when set, receives a Prometheus text dump on exit.
	Textfile string `yaml:"textfile"`
}

func DefaultConfig() *Config {
	p := retry.DefaultPolicy()
	return &Config{
		File: "contacts.txt",
		Log: LogConfig{
			Env:    "production",
			Output: "stderr",
		},
		Save: SaveConfig{
			Attempts:        p.Attempts,
			InitialInterval: p.InitialInterval,
			MaxInterval:     p.MaxInterval,
		},
	}
}

// Load reads a YAML config over the defaults. An empty path or a missing
// file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Validate checks field bounds.
func (c *Config) Validate() error {
	if err := validator.Check(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// RetryPolicy converts the save section into a retry policy.
func (c *Config) RetryPolicy() retry.Policy {
	return retry.Policy{
		Attempts:        c.Save.Attempts,
		InitialInterval: c.Save.InitialInterval,
		MaxInterval:     c.Save.MaxInterval,
	}
}
