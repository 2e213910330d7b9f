// Package charts serves the pie and scatter charts as SVG images.
package charts

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/louisbranch/launchboard/internal/launch/render"
	module "github.com/louisbranch/launchboard/internal/services/dashboard/module"
	"github.com/louisbranch/launchboard/internal/services/dashboard/modules/viewdata"
	"github.com/louisbranch/launchboard/internal/services/dashboard/platform/httpx"
	"github.com/louisbranch/launchboard/internal/services/dashboard/platform/weberror"
	"github.com/louisbranch/launchboard/internal/services/dashboard/routepath"
)

// Module provides the chart image routes.
type Module struct{}

// New returns a charts module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "charts" }

// Mount wires chart handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Views == nil {
		return module.Mount{}, errors.New("view service is required")
	}
	h := handlers{deps: deps}
	mux := http.NewServeMux()
	mux.HandleFunc(http.MethodGet+" "+routepath.ProportionChart, h.handleProportion)
	mux.HandleFunc(http.MethodGet+" "+routepath.CorrelationChart, h.handleCorrelation)
	return module.Mount{Prefix: routepath.ChartsPrefix, Handler: mux}, nil
}

type handlers struct {
	deps module.Dependencies
}

func (h handlers) handleProportion(w http.ResponseWriter, r *http.Request) {
	state, err := viewdata.State(r, h.deps.Views)
	if err != nil {
		weberror.Write(w, r, err, h.deps)
		return
	}
	chart := h.deps.Views.Proportion(r.Context(), state.Site)
	var buf bytes.Buffer
	err = render.ProportionSVG(&buf, chart, render.Options{})
	h.writeSVG(w, r, &buf, chart.Title, err)
}

func (h handlers) handleCorrelation(w http.ResponseWriter, r *http.Request) {
	state, err := viewdata.State(r, h.deps.Views)
	if err != nil {
		weberror.Write(w, r, err, h.deps)
		return
	}
	chart := h.deps.Views.Correlation(r.Context(), state.Site, state.Payload)
	var buf bytes.Buffer
	err = render.CorrelationSVG(&buf, chart, render.Options{})
	h.writeSVG(w, r, &buf, chart.Title, err)
}

// writeSVG buffers the render so a failed chart never sends a partial
// image. Empty charts become a placeholder panel.
func (h handlers) writeSVG(w http.ResponseWriter, r *http.Request, buf *bytes.Buffer, title string, err error) {
	if errors.Is(err, render.ErrEmptyChart) {
		loc, _ := h.deps.Locales.ResolveLocalizer(w, r)
		buf.Reset()
		err = render.Placeholder(buf, title, loc.Sprintf("dashboard.no_data"), render.Options{})
	}
	if err != nil {
		weberror.Write(w, r, err, h.deps)
		return
	}
	w.Header().Set("Content-Type", render.FormatSVG.ContentType())
	httpx.NoStore(w)
	_, _ = buf.WriteTo(w)
}
