// Package config loads cubie settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// ErrInvalidConfig is returned when a parsed value is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the settings shared by every cubie command.
type Config struct {
	DBPath         string `env:"CUBIE_DB"`
	StateFile      string `env:"CUBIE_STATE_FILE"`
	ScrambleLength int    `env:"CUBIE_SCRAMBLE_LENGTH" envDefault:"25"`
	// Seed fixes the scramble generator. Zero means a random seed.
	Seed    uint64 `env:"CUBIE_SEED"`
	NoColor bool   `env:"CUBIE_NO_COLOR"`
}

// ParseEnv parses environment variables into the target struct.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses the environment and fills in default paths under DefaultDir.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.DBPath == "" || cfg.StateFile == "" {
		dir, err := DefaultDir()
		if err != nil {
			return Config{}, err
		}
		if cfg.DBPath == "" {
			cfg.DBPath = filepath.Join(dir, "cubie.db")
		}
		if cfg.StateFile == "" {
			cfg.StateFile = filepath.Join(dir, "state.json")
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges that the environment parser cannot express.
func (c Config) Validate() error {
	if c.ScrambleLength <= 0 {
		return fmt.Errorf("%w: scramble length must be positive, got %d", ErrInvalidConfig, c.ScrambleLength)
	}
	return nil
}

// DefaultDir returns ~/.cubie.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".cubie"), nil
}
