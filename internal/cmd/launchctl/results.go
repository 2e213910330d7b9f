package launchctl

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/louisbranch/launchboard/internal/launch"
	"github.com/louisbranch/launchboard/internal/launch/view"
)

type sitesResult struct {
	Sites []launch.SiteOption `json:"sites" yaml:"sites"`
}

func (r sitesResult) table(t table.Writer) {
	t.AppendHeader(table.Row{"Label", "Value"})
	for _, site := range r.Sites {
		t.AppendRow(table.Row{site.Label, site.Value})
	}
}

type summaryResult struct {
	view.Summary `yaml:",inline"`
}

func (r summaryResult) table(t table.Writer) {
	t.AppendHeader(table.Row{"Field", "Value"})
	t.AppendRow(table.Row{"Rows", r.Rows})
	t.AppendRow(table.Row{"Sites", len(r.Sites)})
	t.AppendRow(table.Row{"Payload min (kg)", formatKG(r.PayloadBounds.Min)})
	t.AppendRow(table.Row{"Payload max (kg)", formatKG(r.PayloadBounds.Max)})
	t.SetColumnConfigs(rightAligned(2))
}

type proportionResult struct {
	launch.ProportionChart `yaml:",inline"`
}

func (r proportionResult) title() string { return r.Title }

func (r proportionResult) table(t table.Writer) {
	t.AppendHeader(table.Row{"Segment", "Launches"})
	for _, seg := range r.Segments {
		t.AppendRow(table.Row{seg.Label, seg.Value})
	}
	t.AppendFooter(table.Row{"Total", r.Total()})
	t.SetColumnConfigs(rightAligned(2))
}

type correlationResult struct {
	launch.CorrelationChart `yaml:",inline"`
}

func (r correlationResult) title() string { return r.Title }

func (r correlationResult) table(t table.Writer) {
	t.AppendHeader(table.Row{"Payload (kg)", "Class", "Booster Version Category"})
	for _, p := range r.Points {
		t.AppendRow(table.Row{formatKG(p.X), p.Y, p.Group})
	}
	t.AppendFooter(table.Row{"Launches", len(r.Points), ""})
	t.SetColumnConfigs(rightAligned(1, 2))
}

func formatKG(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
