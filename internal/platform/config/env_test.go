package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Addr    string `env:"LAUNCHBOARD_TEST_ADDR" envDefault:"localhost:8050"`
	Dataset string `env:"LAUNCHBOARD_TEST_DATASET"`
	Port    int    `env:"LAUNCHBOARD_TEST_PORT" envDefault:"123"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 || cfg.Addr != "localhost:8050" {
		t.Fatalf("defaults = %+v", cfg)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("LAUNCHBOARD_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestParseEnvMap(t *testing.T) {
	t.Parallel()

	var cfg envTestConfig
	err := ParseEnvMap(&cfg, map[string]string{
		"LAUNCHBOARD_TEST_DATASET": "launches.db",
		"LAUNCHBOARD_TEST_PORT":    "9",
	})
	if err != nil {
		t.Fatalf("ParseEnvMap() error = %v", err)
	}
	if cfg.Dataset != "launches.db" || cfg.Port != 9 || cfg.Addr != "localhost:8050" {
		t.Fatalf("ParseEnvMap() = %+v", cfg)
	}
}
