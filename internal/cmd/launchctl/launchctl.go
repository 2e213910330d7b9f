// Package launchctl implements the launchctl command line: dataset queries,
// SQLite imports and PDF reports.
package launchctl

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/louisbranch/launchboard/internal/launch"
	"github.com/louisbranch/launchboard/internal/launch/source"
	launchsqlite "github.com/louisbranch/launchboard/internal/launch/storage/sqlite"
	"github.com/louisbranch/launchboard/internal/launch/view"
	entrypoint "github.com/louisbranch/launchboard/internal/platform/cmd"
	"github.com/spf13/cobra"
)

// Config holds environment defaults for launchctl.
type Config struct {
	Dataset string `env:"LAUNCHBOARD_DATASET" envDefault:"spacex_launch_dash.csv"`
}

// Loader opens a dataset location.
type Loader func(ctx context.Context, location string) (*launch.Dataset, error)

type rootOptions struct {
	dataset string
	output  string
	load    Loader
}

// NewRootCommand builds the launchctl command tree. A nil load reads
// datasets with source.Open.
func NewRootCommand(load Loader) (*cobra.Command, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return nil, err
	}
	if load == nil {
		load = source.Open
	}
	opts := &rootOptions{load: load}

	root := &cobra.Command{
		Use:           "launchctl",
		Short:         "Query and export launch records",
		Long:          "launchctl reads the launch dataset the dashboard serves and prints\nthe same views, imports it into SQLite or renders a PDF report.",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&opts.dataset, "dataset", cfg.Dataset, "Dataset location: CSV path, sqlite://path or gs://bucket/object")
	pf.StringVarP(&opts.output, "output", "o", OutputTable, "Output format: table, markdown, json or yaml")

	root.AddCommand(
		newSitesCommand(opts),
		newSummaryCommand(opts),
		newProportionCommand(opts),
		newCorrelationCommand(opts),
		newImportCommand(opts),
		newReportCommand(opts),
	)
	return root, nil
}

// Execute runs launchctl with args and reports failures to stderr.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root, err := NewRootCommand(nil)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}

func (o *rootOptions) views(cmd *cobra.Command) (*view.Service, error) {
	ds, err := o.load(cmd.Context(), o.dataset)
	if err != nil {
		return nil, fmt.Errorf("load dataset %q: %w", o.dataset, err)
	}
	return view.New(ds)
}

func newSitesCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sites",
		Short: "List the site selector options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			views, err := opts.views(cmd)
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), opts.output, sitesResult{Sites: views.Controls().Sites})
		},
	}
}

func newSummaryCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Describe the dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			views, err := opts.views(cmd)
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), opts.output, summaryResult{Summary: views.Summary()})
		},
	}
}

func newProportionCommand(opts *rootOptions) *cobra.Command {
	var site string
	cmd := &cobra.Command{
		Use:   "proportion",
		Short: "Print successful launches by site, or one site's outcome split",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			views, err := opts.views(cmd)
			if err != nil {
				return err
			}
			site = siteOrAll(site)
			warnUnknownSite(cmd, views.Dataset(), site)
			chart := views.Proportion(cmd.Context(), site)
			return writeResult(cmd.OutOrStdout(), opts.output, proportionResult{ProportionChart: chart})
		},
	}
	cmd.Flags().StringVar(&site, "site", launch.SiteAll, "Launch site, or ALL")
	return cmd
}

// payloadFlags holds an optional payload range. Unset bounds fall back to
// the dataset's observed bounds.
type payloadFlags struct {
	min, max float64
}

func (p *payloadFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&p.min, "payload-min", 0, "Lower payload bound in kg (default observed minimum)")
	cmd.Flags().Float64Var(&p.max, "payload-max", 0, "Upper payload bound in kg (default observed maximum)")
}

func (p *payloadFlags) resolve(cmd *cobra.Command, defaults launch.PayloadRange) launch.PayloadRange {
	r := defaults
	if cmd.Flags().Changed("payload-min") {
		r.Min = p.min
	}
	if cmd.Flags().Changed("payload-max") {
		r.Max = p.max
	}
	return launch.ClampPayload(r)
}

func newCorrelationCommand(opts *rootOptions) *cobra.Command {
	var site string
	var payload payloadFlags
	cmd := &cobra.Command{
		Use:   "correlation",
		Short: "Print payload against outcome for a site and payload range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			views, err := opts.views(cmd)
			if err != nil {
				return err
			}
			site = siteOrAll(site)
			warnUnknownSite(cmd, views.Dataset(), site)
			r := payload.resolve(cmd, views.Defaults().Payload)
			chart := views.Correlation(cmd.Context(), site, r)
			return writeResult(cmd.OutOrStdout(), opts.output, correlationResult{CorrelationChart: chart})
		},
	}
	cmd.Flags().StringVar(&site, "site", launch.SiteAll, "Launch site, or ALL")
	payload.register(cmd)
	return cmd
}

func newImportCommand(opts *rootOptions) *cobra.Command {
	var dbPath string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Copy the dataset into a SQLite database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, err := opts.load(cmd.Context(), opts.dataset)
			if err != nil {
				return fmt.Errorf("load dataset %q: %w", opts.dataset, err)
			}
			store, err := launchsqlite.Open(cmd.Context(), strings.TrimPrefix(dbPath, "sqlite://"))
			if err != nil {
				return err
			}
			defer store.Close()
			if err := store.ImportLaunchRecords(cmd.Context(), ds.Records()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d launch records into %s\n", ds.Len(), dbPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path (required)")
	_ = cmd.MarkFlagRequired("db")
	return cmd
}

func newReportCommand(opts *rootOptions) *cobra.Command {
	var (
		out     string
		site    string
		title   string
		payload payloadFlags
	)
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render the dashboard views as a PDF report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			views, err := opts.views(cmd)
			if err != nil {
				return err
			}
			warnUnknownSite(cmd, views.Dataset(), siteOrAll(site))
			state := launch.Controls{
				Site:    siteOrAll(site),
				Payload: payload.resolve(cmd, views.Defaults().Payload),
			}
			file, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create report: %w", err)
			}
			if err := views.WriteReport(cmd.Context(), file, title, state); err != nil {
				_ = file.Close()
				_ = os.Remove(out)
				return err
			}
			if err := file.Close(); err != nil {
				return fmt.Errorf("close report: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "launch-report.pdf", "PDF output path")
	cmd.Flags().StringVar(&site, "site", launch.SiteAll, "Launch site, or ALL")
	cmd.Flags().StringVar(&title, "title", "SpaceX Launch Records Dashboard", "Report title")
	payload.register(cmd)
	return cmd
}

// warnUnknownSite notes on stderr that site matches no rows; the views it
// selects are empty rather than an error.
func warnUnknownSite(cmd *cobra.Command, ds *launch.Dataset, site string) {
	if site == launch.SiteAll || ds.HasSite(site) {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "warning: no launches from site %q\n", site)
}

func siteOrAll(site string) string {
	site = strings.TrimSpace(site)
	if site == "" {
		return launch.SiteAll
	}
	return site
}
