package templates

import (
	"strconv"

	"github.com/louisbranch/launchboard/internal/launch"
	"github.com/louisbranch/launchboard/internal/launch/view"
	dashi18n "github.com/louisbranch/launchboard/internal/services/dashboard/platform/i18n"
	"github.com/louisbranch/launchboard/internal/services/dashboard/routepath"
)

// htmxScript is the HTMX build the page loads.
const htmxScript = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"

// PageView is everything the dashboard page shows.
type PageView struct {
	Lang        string
	Controls    view.ControlsView
	State       launch.Controls
	Proportion  ProportionView
	Correlation CorrelationView
	ExportURL   string
}

func siteLabel(opt launch.SiteOption, loc dashi18n.Localizer) string {
	if opt.Value == launch.SiteAll {
		return loc.Sprintf("dashboard.site_all")
	}
	return opt.Label
}

type payloadBound struct {
	id, name, key string
	value         float64
}

func payloadBounds(p PageView) []payloadBound {
	return []payloadBound{
		{"payload-min", routepath.ParamPayloadMin, "dashboard.payload_min", p.State.Payload.Min},
		{"payload-max", routepath.ParamPayloadMax, "dashboard.payload_max", p.State.Payload.Max},
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
