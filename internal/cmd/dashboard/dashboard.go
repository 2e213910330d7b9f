// Package dashboard parses dashboard flags, loads the launch dataset and
// serves the web dashboard.
package dashboard

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/louisbranch/launchboard/internal/launch/source"
	"github.com/louisbranch/launchboard/internal/launch/view"
	entrypoint "github.com/louisbranch/launchboard/internal/platform/cmd"
	dashboardservice "github.com/louisbranch/launchboard/internal/services/dashboard"
)

// Config holds dashboard command configuration.
type Config struct {
	HTTPAddr      string `env:"LAUNCHBOARD_DASHBOARD_HTTP_ADDR" envDefault:"localhost:8050"`
	Dataset       string `env:"LAUNCHBOARD_DATASET"             envDefault:"spacex_launch_dash.csv"`
	DefaultLocale string `env:"LAUNCHBOARD_DEFAULT_LOCALE"      envDefault:"en-US"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.Dataset, "dataset", cfg.Dataset, "Dataset location: CSV path, sqlite://path or gs://bucket/object")
	fs.StringVar(&cfg.DefaultLocale, "locale", cfg.DefaultLocale, "Locale used when a request names none")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run loads the dataset and serves the dashboard until ctx ends. A dataset
// that cannot be loaded aborts startup.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceDashboard, func(ctx context.Context) error {
		views, err := loadViews(ctx, cfg.Dataset)
		if err != nil {
			return err
		}
		server, err := dashboardservice.NewServer(ctx, dashboardservice.Config{
			HTTPAddr:      cfg.HTTPAddr,
			Views:         views,
			DefaultLocale: cfg.DefaultLocale,
			Logger:        log.Default(),
		})
		if err != nil {
			return fmt.Errorf("init dashboard server: %w", err)
		}
		defer server.Close()

		summary := views.Summary()
		log.Printf("dashboard listening addr=%s dataset=%s rows=%d sites=%d", cfg.HTTPAddr, cfg.Dataset, summary.Rows, len(summary.Sites))
		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve dashboard: %w", err)
		}
		return nil
	})
}

func loadViews(ctx context.Context, location string) (*view.Service, error) {
	ds, err := source.Open(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("load dataset %q: %w", location, err)
	}
	return view.New(ds)
}
