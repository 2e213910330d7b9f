// Package templates renders dashboard HTML as templ components.
package templates

import (
	"github.com/louisbranch/launchboard/internal/launch"
	dashi18n "github.com/louisbranch/launchboard/internal/services/dashboard/platform/i18n"
)

// ProportionView is the pie chart panel.
type ProportionView struct {
	Chart    launch.ProportionChart
	ImageURL string
}

// CorrelationView is the scatter chart panel.
type CorrelationView struct {
	Chart    launch.CorrelationChart
	ImageURL string
}

// segmentLabel names per-site outcome segments; site segments keep the
// site name.
func segmentLabel(c launch.ProportionChart, seg launch.Segment, loc dashi18n.Localizer) string {
	if c.Site == launch.SiteAll {
		return seg.Label
	}
	switch seg.Label {
	case launch.OutcomeSuccess.String():
		return loc.Sprintf("dashboard.outcome.success") + " (" + seg.Label + ")"
	case launch.OutcomeFailure.String():
		return loc.Sprintf("dashboard.outcome.failure") + " (" + seg.Label + ")"
	default:
		return seg.Label
	}
}
