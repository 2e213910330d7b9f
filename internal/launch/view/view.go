// Package view resolves dashboard view models for the HTTP, live and MCP
// surfaces and traces each resolution.
package view

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/louisbranch/launchboard/internal/launch"
	"github.com/louisbranch/launchboard/internal/launch/render"
	platformotel "github.com/louisbranch/launchboard/internal/platform/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/louisbranch/launchboard/internal/launch/view"

// Service is safe for concurrent use; it only reads the dataset.
type Service struct {
	ds         *launch.Dataset
	dispatcher *launch.Dispatcher
	tracer     trace.Tracer
	now        func() time.Time
}

// ControlsView describes the selector widgets and their initial state.
type ControlsView struct {
	Sites    []launch.SiteOption `json:"sites" yaml:"sites"`
	Slider   launch.Slider       `json:"payload_slider" yaml:"payload_slider"`
	Defaults launch.Controls     `json:"defaults" yaml:"defaults"`
}

// Summary describes the loaded dataset.
type Summary struct {
	Rows          int                 `json:"rows" yaml:"rows"`
	Sites         []string            `json:"sites" yaml:"sites"`
	PayloadBounds launch.PayloadRange `json:"payload_bounds" yaml:"payload_bounds"`
}

// New returns a Service over ds.
func New(ds *launch.Dataset) (*Service, error) {
	if ds == nil {
		return nil, errors.New("dataset is required")
	}
	return &Service{
		ds:         ds,
		dispatcher: launch.NewDispatcher(ds),
		tracer:     platformotel.Tracer(tracerName),
		now:        time.Now,
	}, nil
}

// Dataset returns the dataset the service reads.
func (s *Service) Dataset() *launch.Dataset { return s.ds }

// Defaults returns the initial control state.
func (s *Service) Defaults() launch.Controls { return launch.DefaultControls(s.ds) }

// Controls describes the selectors.
func (s *Service) Controls() ControlsView {
	return ControlsView{
		Sites:    launch.SiteOptions(s.ds),
		Slider:   launch.PayloadSlider(s.ds),
		Defaults: s.Defaults(),
	}
}

// Summary describes the dataset.
func (s *Service) Summary() Summary {
	return Summary{
		Rows:          s.ds.Len(),
		Sites:         s.ds.Sites(),
		PayloadBounds: s.ds.PayloadBounds(),
	}
}

// Proportion resolves the proportion view for site.
func (s *Service) Proportion(ctx context.Context, site string) launch.ProportionChart {
	_, span := s.tracer.Start(ctx, "view.proportion", trace.WithAttributes(
		attribute.String("launch.site", site),
	))
	defer span.End()

	chart := launch.ResolveProportion(s.ds, site)
	span.SetAttributes(
		attribute.Int("launch.segments", len(chart.Segments)),
		attribute.Int("launch.total", chart.Total()),
	)
	return chart
}

// Correlation resolves the correlation view for site and r.
func (s *Service) Correlation(ctx context.Context, site string, r launch.PayloadRange) launch.CorrelationChart {
	_, span := s.tracer.Start(ctx, "view.correlation", trace.WithAttributes(
		attribute.String("launch.site", site),
		attribute.Float64("launch.payload_min", r.Min),
		attribute.Float64("launch.payload_max", r.Max),
	))
	defer span.End()

	chart := launch.ResolveCorrelation(s.ds, site, r)
	span.SetAttributes(attribute.Int("launch.points", len(chart.Points)))
	return chart
}

// Resolve returns both views for state.
func (s *Service) Resolve(ctx context.Context, state launch.Controls) (launch.ProportionChart, launch.CorrelationChart) {
	return s.Proportion(ctx, state.Site), s.Correlation(ctx, state.Site, state.Payload)
}

// Dispatch applies ev to state and resolves the affected views.
func (s *Service) Dispatch(ctx context.Context, state launch.Controls, ev launch.Event) (launch.Controls, []launch.Update, error) {
	_, span := s.tracer.Start(ctx, "view.dispatch", trace.WithAttributes(
		attribute.String("launch.control", string(ev.Control)),
	))
	defer span.End()

	next, updates, err := s.dispatcher.Dispatch(state, ev)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return next, nil, err
	}
	span.SetAttributes(
		attribute.String("launch.site", next.Site),
		attribute.Int("launch.updates", len(updates)),
	)
	return next, updates, nil
}

// WriteReport renders the PDF report for state.
func (s *Service) WriteReport(ctx context.Context, w io.Writer, title string, state launch.Controls) error {
	ctx, span := s.tracer.Start(ctx, "view.report", trace.WithAttributes(
		attribute.String("launch.site", state.Site),
	))
	defer span.End()

	proportion, correlation := s.Resolve(ctx, state)
	err := render.WriteReport(ctx, w, render.ReportInput{
		Title:       title,
		Controls:    state,
		Proportion:  proportion,
		Correlation: correlation,
		Generated:   s.now(),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
