// Package mcp parses MCP command flags and selects stdio or HTTP transport.
package mcp

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/louisbranch/launchboard/internal/launch/source"
	"github.com/louisbranch/launchboard/internal/launch/view"
	entrypoint "github.com/louisbranch/launchboard/internal/platform/cmd"
	mcpservice "github.com/louisbranch/launchboard/internal/services/mcp/service"
)

// Config holds MCP command configuration.
type Config struct {
	Dataset   string `env:"LAUNCHBOARD_DATASET"        envDefault:"spacex_launch_dash.csv"`
	HTTPAddr  string `env:"LAUNCHBOARD_MCP_HTTP_ADDR"  envDefault:"localhost:8051"`
	Transport string `env:"LAUNCHBOARD_MCP_TRANSPORT"  envDefault:"stdio"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Dataset, "dataset", cfg.Dataset, "Dataset location: CSV path, sqlite://path or gs://bucket/object")
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP server address (for HTTP transport)")
	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "Transport type: stdio or http")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run loads the dataset and starts the MCP server.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceMCP, func(ctx context.Context) error {
		ds, err := source.Open(ctx, cfg.Dataset)
		if err != nil {
			return fmt.Errorf("load dataset %q: %w", cfg.Dataset, err)
		}
		views, err := view.New(ds)
		if err != nil {
			return err
		}
		return mcpservice.Run(ctx, mcpservice.Config{
			Views:     views,
			Transport: mcpservice.TransportKind(cfg.Transport),
			HTTPAddr:  cfg.HTTPAddr,
			Logger:    log.Default(),
		})
	})
}
