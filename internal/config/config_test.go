package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type envTestConfig struct {
	Length int `env:"CUBIE_TEST_LENGTH" envDefault:"123"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Length != 123 {
		t.Fatalf("expected default length 123, got %d", cfg.Length)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("CUBIE_TEST_LENGTH", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range []string{"CUBIE_DB", "CUBIE_STATE_FILE", "CUBIE_SCRAMBLE_LENGTH", "CUBIE_SEED", "CUBIE_NO_COLOR"} {
		unsetenv(t, key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ScrambleLength != 25 {
		t.Errorf("ScrambleLength = %d, want 25", cfg.ScrambleLength)
	}
	if want := filepath.Join(home, ".cubie", "cubie.db"); cfg.DBPath != want {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, want)
	}
	if want := filepath.Join(home, ".cubie", "state.json"); cfg.StateFile != want {
		t.Errorf("StateFile = %q, want %q", cfg.StateFile, want)
	}
	if cfg.Seed != 0 || cfg.NoColor {
		t.Errorf("unexpected seed/no-color: %d %v", cfg.Seed, cfg.NoColor)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CUBIE_DB", "/tmp/x.db")
	t.Setenv("CUBIE_STATE_FILE", "/tmp/x.json")
	t.Setenv("CUBIE_SCRAMBLE_LENGTH", "12")
	t.Setenv("CUBIE_SEED", "42")
	t.Setenv("CUBIE_NO_COLOR", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Config{DBPath: "/tmp/x.db", StateFile: "/tmp/x.json", ScrambleLength: 12, Seed: 42, NoColor: true}
	if cfg != want {
		t.Errorf("Load() = %+v, want %+v", cfg, want)
	}
}

func TestLoadRejectsNonPositiveLength(t *testing.T) {
	t.Setenv("CUBIE_DB", "/tmp/x.db")
	t.Setenv("CUBIE_STATE_FILE", "/tmp/x.json")
	t.Setenv("CUBIE_SCRAMBLE_LENGTH", "0")

	_, err := Load()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

// unsetenv removes key for the duration of the test.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("unsetenv %s: %v", key, err)
	}
}
