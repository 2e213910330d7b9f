// Package api serves the dashboard view models as JSON.
package api

import (
	"errors"
	"net/http"

	"github.com/louisbranch/launchboard/internal/launch"
	module "github.com/louisbranch/launchboard/internal/services/dashboard/module"
	"github.com/louisbranch/launchboard/internal/services/dashboard/modules/viewdata"
	apperrors "github.com/louisbranch/launchboard/internal/services/dashboard/platform/errors"
	"github.com/louisbranch/launchboard/internal/services/dashboard/platform/httpx"
	"github.com/louisbranch/launchboard/internal/services/dashboard/platform/weberror"
	"github.com/louisbranch/launchboard/internal/services/dashboard/routepath"
)

// Module provides the JSON API.
type Module struct{}

// New returns an api module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "api" }

// Mount wires api handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Views == nil {
		return module.Mount{}, errors.New("view service is required")
	}
	h := handlers{deps: deps}
	mux := http.NewServeMux()
	mux.HandleFunc(http.MethodGet+" "+routepath.APIControls, h.handleControls)
	mux.HandleFunc(http.MethodGet+" "+routepath.APISummary, h.handleSummary)
	mux.HandleFunc(http.MethodGet+" "+routepath.APIProportion, h.handleProportion)
	mux.HandleFunc(http.MethodGet+" "+routepath.APICorrelation, h.handleCorrelation)
	mux.HandleFunc(routepath.APIPrefix, h.handleNotFound)
	return module.Mount{Prefix: routepath.APIPrefix, Handler: mux}, nil
}

type handlers struct {
	deps module.Dependencies
}

func (h handlers) handleControls(w http.ResponseWriter, r *http.Request) {
	_ = httpx.WriteJSON(w, http.StatusOK, h.deps.Views.Controls())
}

func (h handlers) handleSummary(w http.ResponseWriter, r *http.Request) {
	_ = httpx.WriteJSON(w, http.StatusOK, h.deps.Views.Summary())
}

func (h handlers) handleProportion(w http.ResponseWriter, r *http.Request) {
	state, ok := h.state(w, r)
	if !ok {
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, h.deps.Views.Proportion(r.Context(), state.Site))
}

func (h handlers) handleCorrelation(w http.ResponseWriter, r *http.Request) {
	state, ok := h.state(w, r)
	if !ok {
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, h.deps.Views.Correlation(r.Context(), state.Site, state.Payload))
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteJSON(w, r, apperrors.E(apperrors.KindNotFound, "no route for "+r.URL.Path), h.deps)
}

func (h handlers) state(w http.ResponseWriter, r *http.Request) (launch.Controls, bool) {
	state, err := viewdata.State(r, h.deps.Views)
	if err != nil {
		weberror.WriteJSON(w, r, err, h.deps)
		return launch.Controls{}, false
	}
	return state, true
}
