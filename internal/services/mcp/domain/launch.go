package domain

import (
	"context"
	"strings"

	"github.com/louisbranch/launchboard/internal/launch"
	"github.com/louisbranch/launchboard/internal/launch/view"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ListSitesInput takes no arguments.
type ListSitesInput struct{}

// ListSitesResult lists the site selector choices.
type ListSitesResult struct {
	Sites []launch.SiteOption `json:"sites" jsonschema:"site selector options, all sites first"`
}

// ProportionViewInput selects the pie view.
type ProportionViewInput struct {
	Site string `json:"site,omitempty" jsonschema:"launch site, or ALL for every site (default ALL)"`
}

// ProportionViewResult is the pie view model.
type ProportionViewResult struct {
	Site     string           `json:"site" jsonschema:"resolved site"`
	Title    string           `json:"title" jsonschema:"chart title"`
	Segments []launch.Segment `json:"segments" jsonschema:"pie segments"`
	Total    int              `json:"total" jsonschema:"sum of segment values"`
}

// CorrelationViewInput selects the scatter view.
type CorrelationViewInput struct {
	Site       string   `json:"site,omitempty" jsonschema:"launch site, or ALL for every site (default ALL)"`
	PayloadMin *float64 `json:"payload_min,omitempty" jsonschema:"lower payload bound in kg (default observed minimum)"`
	PayloadMax *float64 `json:"payload_max,omitempty" jsonschema:"upper payload bound in kg (default observed maximum)"`
}

// CorrelationViewResult is the scatter view model.
type CorrelationViewResult struct {
	Site    string              `json:"site" jsonschema:"resolved site"`
	Title   string              `json:"title" jsonschema:"chart title"`
	Payload launch.PayloadRange `json:"payload" jsonschema:"clamped payload range"`
	Points  []launch.Point      `json:"points" jsonschema:"plotted launches in dataset order"`
	Groups  []string            `json:"groups" jsonschema:"booster version categories in first-appearance order"`
}

// ListSitesTool defines the site listing tool.
func ListSitesTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "list_sites",
		Description: "Lists the launch sites the dashboard can filter by",
	}
}

// ProportionViewTool defines the pie view tool.
func ProportionViewTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "proportion_view",
		Description: "Returns successful launches by site, or the outcome split for one site",
	}
}

// CorrelationViewTool defines the scatter view tool.
func CorrelationViewTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "correlation_view",
		Description: "Returns payload mass against launch outcome for a site and payload range",
	}
}

// ListSitesHandler lists the site options of views.
func ListSitesHandler(views *view.Service) mcp.ToolHandlerFor[ListSitesInput, ListSitesResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ ListSitesInput) (*mcp.CallToolResult, ListSitesResult, error) {
		return nil, ListSitesResult{Sites: views.Controls().Sites}, nil
	}
}

// ProportionViewHandler resolves the pie view.
func ProportionViewHandler(views *view.Service) mcp.ToolHandlerFor[ProportionViewInput, ProportionViewResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ProportionViewInput) (*mcp.CallToolResult, ProportionViewResult, error) {
		chart := views.Proportion(ctx, siteOrAll(input.Site))
		segments := chart.Segments
		if segments == nil {
			segments = []launch.Segment{}
		}
		return nil, ProportionViewResult{
			Site:     chart.Site,
			Title:    chart.Title,
			Segments: segments,
			Total:    chart.Total(),
		}, nil
	}
}

// CorrelationViewHandler resolves the scatter view. Missing bounds take the
// observed payload bounds; every bound is clamped to the selector domain.
func CorrelationViewHandler(views *view.Service) mcp.ToolHandlerFor[CorrelationViewInput, CorrelationViewResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CorrelationViewInput) (*mcp.CallToolResult, CorrelationViewResult, error) {
		r := views.Defaults().Payload
		if input.PayloadMin != nil {
			r.Min = *input.PayloadMin
		}
		if input.PayloadMax != nil {
			r.Max = *input.PayloadMax
		}
		chart := views.Correlation(ctx, siteOrAll(input.Site), launch.ClampPayload(r))
		points := chart.Points
		if points == nil {
			points = []launch.Point{}
		}
		groups := chart.Groups()
		if groups == nil {
			groups = []string{}
		}
		return nil, CorrelationViewResult{
			Site:    chart.Site,
			Title:   chart.Title,
			Payload: chart.Payload,
			Points:  points,
			Groups:  groups,
		}, nil
	}
}

func siteOrAll(site string) string {
	site = strings.TrimSpace(site)
	if site == "" {
		return launch.SiteAll
	}
	return site
}
