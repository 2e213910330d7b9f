// Package viewdata builds template view models from request state.
package viewdata

import (
	"context"
	"net/http"
	"net/url"

	"github.com/louisbranch/launchboard/internal/launch"
	"github.com/louisbranch/launchboard/internal/launch/view"
	"github.com/louisbranch/launchboard/internal/services/dashboard/platform/controls"
	"github.com/louisbranch/launchboard/internal/services/dashboard/routepath"
	"github.com/louisbranch/launchboard/internal/services/dashboard/templates"
)

// State reads the control state of r, defaulting to the dataset's initial
// controls.
func State(r *http.Request, views *view.Service) (launch.Controls, error) {
	return controls.FromQuery(r.URL.Query(), views.Defaults())
}

// ProportionImageURL addresses the pie for site. The pie ignores payload.
func ProportionImageURL(site, lang string) string {
	q := url.Values{}
	q.Set(routepath.ParamSite, site)
	if lang != "" {
		q.Set(routepath.ParamLang, lang)
	}
	return routepath.ProportionChart + "?" + q.Encode()
}

// Proportion resolves the pie panel for state.
func Proportion(ctx context.Context, views *view.Service, state launch.Controls, lang string) templates.ProportionView {
	return templates.ProportionView{
		Chart:    views.Proportion(ctx, state.Site),
		ImageURL: ProportionImageURL(state.Site, lang),
	}
}

// Correlation resolves the scatter panel for state.
func Correlation(ctx context.Context, views *view.Service, state launch.Controls, lang string) templates.CorrelationView {
	return templates.CorrelationView{
		Chart:    views.Correlation(ctx, state.Site, state.Payload),
		ImageURL: controls.URL(routepath.CorrelationChart, state, lang),
	}
}

// Page resolves every panel of the dashboard page.
func Page(ctx context.Context, views *view.Service, state launch.Controls, lang string) templates.PageView {
	return templates.PageView{
		Lang:        lang,
		Controls:    views.Controls(),
		State:       state,
		Proportion:  Proportion(ctx, views, state, lang),
		Correlation: Correlation(ctx, views, state, lang),
		ExportURL:   controls.URL(routepath.ExportReport, state, lang),
	}
}
