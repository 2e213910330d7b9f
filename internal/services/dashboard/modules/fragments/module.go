// Package fragments serves the chart panels HTMX swaps into the page.
package fragments

import (
	"errors"
	"net/http"

	"github.com/a-h/templ"
	module "github.com/louisbranch/launchboard/internal/services/dashboard/module"
	"github.com/louisbranch/launchboard/internal/services/dashboard/modules/viewdata"
	"github.com/louisbranch/launchboard/internal/services/dashboard/platform/httpx"
	"github.com/louisbranch/launchboard/internal/services/dashboard/platform/weberror"
	"github.com/louisbranch/launchboard/internal/services/dashboard/routepath"
	"github.com/louisbranch/launchboard/internal/services/dashboard/templates"
)

// Module provides the fragment routes.
type Module struct{}

// New returns a fragments module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "fragments" }

// Mount wires fragment handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Views == nil {
		return module.Mount{}, errors.New("view service is required")
	}
	h := handlers{deps: deps}
	mux := http.NewServeMux()
	mux.HandleFunc(http.MethodGet+" "+routepath.ProportionFragment, h.handleProportion)
	mux.HandleFunc(http.MethodGet+" "+routepath.CorrelationFragment, h.handleCorrelation)
	return module.Mount{Prefix: routepath.FragmentsPrefix, Handler: mux}, nil
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
	loc, tag := h.deps.Locales.ResolveLocalizer(w, r)
	v := viewdata.Proportion(r.Context(), h.deps.Views, state, tag.String())
	httpx.NoStore(w)
	templ.Handler(templates.ProportionFragment(v, loc)).ServeHTTP(w, r)
}

func (h handlers) handleCorrelation(w http.ResponseWriter, r *http.Request) {
	state, err := viewdata.State(r, h.deps.Views)
	if err != nil {
		weberror.Write(w, r, err, h.deps)
		return
	}
	loc, tag := h.deps.Locales.ResolveLocalizer(w, r)
	v := viewdata.Correlation(r.Context(), h.deps.Views, state, tag.String())
	httpx.NoStore(w)
	templ.Handler(templates.CorrelationFragment(v, loc)).ServeHTTP(w, r)
}
