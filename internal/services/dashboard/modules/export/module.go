// Package export serves the PDF report of the current dashboard state.
package export

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/louisbranch/launchboard/internal/platform/timeouts"
	module "github.com/louisbranch/launchboard/internal/services/dashboard/module"
	"github.com/louisbranch/launchboard/internal/services/dashboard/modules/viewdata"
	apperrors "github.com/louisbranch/launchboard/internal/services/dashboard/platform/errors"
	"github.com/louisbranch/launchboard/internal/services/dashboard/platform/httpx"
	"github.com/louisbranch/launchboard/internal/services/dashboard/platform/weberror"
	"github.com/louisbranch/launchboard/internal/services/dashboard/routepath"
)

const reportFilename = "launch-report.pdf"

// Module provides the report export route.
type Module struct{}

// New returns an export module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "export" }

// Mount wires the export handler.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Views == nil {
		return module.Mount{}, errors.New("view service is required")
	}
	h := handlers{deps: deps}
	mux := http.NewServeMux()
	mux.HandleFunc(http.MethodGet+" "+routepath.ExportReport, h.handleReport)
	return module.Mount{Prefix: routepath.ExportPrefix, Handler: mux}, nil
}

type handlers struct {
	deps module.Dependencies
}

func (h handlers) handleReport(w http.ResponseWriter, r *http.Request) {
	state, err := viewdata.State(r, h.deps.Views)
	if err != nil {
		weberror.Write(w, r, err, h.deps)
		return
	}
	loc, _ := h.deps.Locales.ResolveLocalizer(w, r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Render)
	defer cancel()
	var buf bytes.Buffer
	if err := h.deps.Views.WriteReport(ctx, &buf, loc.Sprintf("dashboard.title"), state); err != nil {
		kind := apperrors.KindUnknown
		if errors.Is(err, context.DeadlineExceeded) {
			kind = apperrors.KindUnavailable
		}
		weberror.Write(w, r, apperrors.Wrap(kind, "", err), h.deps)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+reportFilename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	httpx.NoStore(w)
	_, _ = buf.WriteTo(w)
}
