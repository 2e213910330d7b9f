package domain

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/louisbranch/launchboard/internal/launch/view"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// DatasetSummaryURI addresses the dataset summary resource.
const DatasetSummaryURI = "launch://dataset/summary"

// DatasetSummaryResource defines the dataset summary resource.
func DatasetSummaryResource() *mcp.Resource {
	return &mcp.Resource{
		Name:        "dataset_summary",
		Description: "Row count, launch sites and observed payload bounds",
		MIMEType:    "application/json",
		URI:         DatasetSummaryURI,
	}
}

// DatasetSummaryResourceHandler serves the summary of views' dataset.
func DatasetSummaryResourceHandler(views *view.Service) mcp.ResourceHandler {
	return func(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if views == nil {
			return nil, fmt.Errorf("view service is not configured")
		}
		uri := DatasetSummaryURI
		if req != nil && req.Params != nil && req.Params.URI != "" {
			uri = req.Params.URI
		}
		if uri != DatasetSummaryURI {
			return nil, fmt.Errorf("unknown resource %q", uri)
		}

		data, err := json.MarshalIndent(views.Summary(), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal dataset summary: %w", err)
		}
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{
					URI:      uri,
					MIMEType: "application/json",
					Text:     string(data),
				},
			},
		}, nil
	}
}
