// Package weberror renders localized error responses for dashboard modules.
package weberror

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"
	module "github.com/louisbranch/launchboard/internal/services/dashboard/module"
	apperrors "github.com/louisbranch/launchboard/internal/services/dashboard/platform/errors"
	"github.com/louisbranch/launchboard/internal/services/dashboard/platform/httpx"
	dashi18n "github.com/louisbranch/launchboard/internal/services/dashboard/platform/i18n"
	"github.com/louisbranch/launchboard/internal/services/dashboard/templates"
)

// statusKeys localizes errors that carry no key of their own.
var statusKeys = map[int]string{
	http.StatusBadRequest:          "errors.invalid_input",
	http.StatusNotFound:            "errors.not_found",
	http.StatusServiceUnavailable:  "errors.unavailable",
	http.StatusInternalServerError: "errors.internal",
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc dashi18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	status := apperrors.HTTPStatus(err)
	key := apperrors.LocalizationKey(err)
	if key == "" {
		key = statusKeys[status]
	}
	if loc != nil && key != "" {
		if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" && localized != key {
			return localized
		}
	}
	return http.StatusText(status)
}

// Write renders err as a full page, or as an inline fragment for HTMX
// requests, with the mapped status code.
func Write(w http.ResponseWriter, r *http.Request, err error, deps module.Dependencies) {
	if w == nil || err == nil {
		return
	}
	status := apperrors.HTTPStatus(err)
	loc, tag := deps.Locales.ResolveLocalizer(w, r)
	message := PublicMessage(loc, err)
	if status >= http.StatusInternalServerError && deps.Logger != nil {
		deps.Logger.Printf("request failed path=%s request_id=%s err=%v", r.URL.Path, httpx.RequestIDFrom(r), err)
	}

	var body templ.Component
	if httpx.IsHTMXRequest(r) {
		body = templates.ErrorFragment(message)
	} else {
		body = templates.ErrorPage(status, tag.String(), message)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	httpx.NoStore(w)
	w.WriteHeader(status)
	_ = body.Render(httpx.RequestContext(r), w)
}

// WriteJSON writes err as {"error": message} with the mapped status code.
func WriteJSON(w http.ResponseWriter, r *http.Request, err error, deps module.Dependencies) {
	if w == nil || err == nil {
		return
	}
	loc, _ := deps.Locales.ResolveLocalizer(w, r)
	_ = httpx.WriteJSONError(w, apperrors.HTTPStatus(err), PublicMessage(loc, err))
}
