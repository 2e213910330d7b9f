// Package page serves the dashboard document.
package page

import (
	"errors"
	"net/http"

	"github.com/a-h/templ"
	module "github.com/louisbranch/launchboard/internal/services/dashboard/module"
	"github.com/louisbranch/launchboard/internal/services/dashboard/modules/viewdata"
	apperrors "github.com/louisbranch/launchboard/internal/services/dashboard/platform/errors"
	"github.com/louisbranch/launchboard/internal/services/dashboard/platform/weberror"
	"github.com/louisbranch/launchboard/internal/services/dashboard/routepath"
	"github.com/louisbranch/launchboard/internal/services/dashboard/templates"
)

// Module provides the dashboard page.
type Module struct{}

// New returns a page module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "page" }

// Mount wires the page route. Every other path under the root is a 404.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Views == nil {
		return module.Mount{}, errors.New("view service is required")
	}
	h := handlers{deps: deps}
	mux := http.NewServeMux()
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleIndex)
	mux.HandleFunc(routepath.Root, h.handleNotFound)
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}

type handlers struct {
	deps module.Dependencies
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	state, err := viewdata.State(r, h.deps.Views)
	if err != nil {
		weberror.Write(w, r, err, h.deps)
		return
	}
	loc, tag := h.deps.Locales.ResolveLocalizer(w, r)
	page := viewdata.Page(r.Context(), h.deps.Views, state, tag.String())
	templ.Handler(templates.Page(page, loc)).ServeHTTP(w, r)
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.Write(w, r, apperrors.E(apperrors.KindNotFound, "no route for "+r.URL.Path), h.deps)
}
