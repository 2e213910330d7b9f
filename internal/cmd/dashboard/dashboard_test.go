package dashboard

import (
	"context"
	"errors"
	"flag"
	"os"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("dashboard", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != "localhost:8050" {
		t.Fatalf("expected default http addr, got %q", cfg.HTTPAddr)
	}
	if cfg.Dataset != "spacex_launch_dash.csv" {
		t.Fatalf("expected default dataset, got %q", cfg.Dataset)
	}
	if cfg.DefaultLocale != "en-US" {
		t.Fatalf("expected default locale, got %q", cfg.DefaultLocale)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("LAUNCHBOARD_DASHBOARD_HTTP_ADDR", "env-addr")
	t.Setenv("LAUNCHBOARD_DATASET", "env.csv")
	t.Setenv("LAUNCHBOARD_DEFAULT_LOCALE", "pt-BR")

	fs := flag.NewFlagSet("dashboard", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", "flag-addr", "-dataset", "sqlite://launches.db"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != "flag-addr" {
		t.Fatalf("expected flag http addr, got %q", cfg.HTTPAddr)
	}
	if cfg.Dataset != "sqlite://launches.db" {
		t.Fatalf("expected flag dataset, got %q", cfg.Dataset)
	}
	if cfg.DefaultLocale != "pt-BR" {
		t.Fatalf("expected env locale, got %q", cfg.DefaultLocale)
	}
}

func TestRunFailsOnMissingDataset(t *testing.T) {
	err := Run(context.Background(), Config{HTTPAddr: "127.0.0.1:0", Dataset: "testdata/does-not-exist.csv"})
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Run() error = %v, want not exist", err)
	}
}
