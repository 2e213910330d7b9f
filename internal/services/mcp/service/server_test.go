package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/louisbranch/launchboard/internal/launch"
	"github.com/louisbranch/launchboard/internal/launch/view"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	ds, err := launch.NewDataset([]launch.LaunchRecord{
		{LaunchSite: "CCAFS LC-40", PayloadMassKG: 0, BoosterVersionCategory: "v1.0", Outcome: launch.OutcomeFailure},
		{LaunchSite: "KSC LC-39A", PayloadMassKG: 2500, BoosterVersionCategory: "FT", Outcome: launch.OutcomeSuccess},
		{LaunchSite: "KSC LC-39A", PayloadMassKG: 5300, BoosterVersionCategory: "B4", Outcome: launch.OutcomeSuccess},
	})
	if err != nil {
		t.Fatalf("NewDataset() error = %v", err)
	}
	views, err := view.New(ds)
	if err != nil {
		t.Fatalf("view.New() error = %v", err)
	}
	server, err := NewServer(views)
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	return server
}

func connectInMemory(t *testing.T, ctx context.Context, server *Server) *mcp.ClientSession {
	t.Helper()
	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.MCPServer().Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("server connect: %v", err)
	}
	t.Cleanup(func() { _ = serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func callTool(t *testing.T, ctx context.Context, session *mcp.ClientSession, name string, args map[string]any, out any) {
	t.Helper()
	res, err := session.CallTool(ctx, &mcp.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		t.Fatalf("CallTool(%s): %v", name, err)
	}
	if res.IsError {
		t.Fatalf("CallTool(%s) returned tool error: %+v", name, res.Content)
	}
	for _, c := range res.Content {
		if text, ok := c.(*mcp.TextContent); ok {
			if err := json.Unmarshal([]byte(text.Text), out); err != nil {
				t.Fatalf("decode %s result: %v (text: %s)", name, err, text.Text)
			}
			return
		}
	}
	t.Fatalf("CallTool(%s) returned no text content", name)
}

func TestNewServerRequiresViews(t *testing.T) {
	t.Parallel()

	if _, err := NewServer(nil); err == nil {
		t.Fatal("NewServer(nil) error = nil")
	}
}

func TestToolDiscovery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	session := connectInMemory(t, ctx, testServer(t))
	tools, err := session.ListTools(ctx, nil)
	if err != nil {
		t.Fatalf("ListTools: %v", err)
	}
	var names []string
	for _, tool := range tools.Tools {
		names = append(names, tool.Name)
	}
	sort.Strings(names)
	want := []string{"correlation_view", "list_sites", "proportion_view"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("tools mismatch (-want +got):\n%s", diff)
	}
}

func TestToolsOverInMemoryTransport(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	session := connectInMemory(t, ctx, testServer(t))

	var sites struct {
		Sites []launch.SiteOption `json:"sites"`
	}
	callTool(t, ctx, session, "list_sites", map[string]any{}, &sites)
	if len(sites.Sites) != 3 || sites.Sites[0].Value != launch.SiteAll {
		t.Fatalf("sites = %+v", sites.Sites)
	}

	var pie struct {
		Title    string           `json:"title"`
		Segments []launch.Segment `json:"segments"`
		Total    int              `json:"total"`
	}
	callTool(t, ctx, session, "proportion_view", map[string]any{"site": "KSC LC-39A"}, &pie)
	if pie.Title != "Total Success Launches for site KSC LC-39A" {
		t.Fatalf("title = %q", pie.Title)
	}
	if diff := cmp.Diff([]launch.Segment{{Label: "1", Value: 2}}, pie.Segments); diff != "" {
		t.Fatalf("segments mismatch (-want +got):\n%s", diff)
	}

	var scatter struct {
		Payload launch.PayloadRange `json:"payload"`
		Points  []launch.Point      `json:"points"`
	}
	callTool(t, ctx, session, "correlation_view", map[string]any{"payload_min": 1000, "payload_max": 6000}, &scatter)
	if scatter.Payload != (launch.PayloadRange{Min: 1000, Max: 6000}) {
		t.Fatalf("payload = %+v", scatter.Payload)
	}
	if len(scatter.Points) != 2 {
		t.Fatalf("points = %d, want 2", len(scatter.Points))
	}
}

func TestDatasetSummaryResource(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	session := connectInMemory(t, ctx, testServer(t))
	res, err := session.ReadResource(ctx, &mcp.ReadResourceParams{URI: "launch://dataset/summary"})
	if err != nil {
		t.Fatalf("ReadResource: %v", err)
	}
	if len(res.Contents) != 1 || !strings.Contains(res.Contents[0].Text, `"rows": 3`) {
		t.Fatalf("contents = %+v", res.Contents)
	}
}

func TestStreamableHTTPHandler(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(NewHTTPHandler(testServer(t)))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/mcp/health")
	if err != nil {
		t.Fatalf("GET health: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK || string(body) != "OK" {
		t.Fatalf("health = %d %q", resp.StatusCode, body)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	client := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{Endpoint: srv.URL + "/mcp"}, nil)
	if err != nil {
		t.Fatalf("connect over http: %v", err)
	}
	defer session.Close()

	var sites struct {
		Sites []launch.SiteOption `json:"sites"`
	}
	callTool(t, ctx, session, "list_sites", map[string]any{}, &sites)
	if len(sites.Sites) != 3 {
		t.Fatalf("sites = %+v", sites.Sites)
	}
}

func TestRunUnsupportedTransport(t *testing.T) {
	t.Parallel()

	err := Run(context.Background(), Config{Views: testServer(t).views, Transport: "carrier-pigeon"})
	if err == nil || !strings.Contains(err.Error(), "not supported") {
		t.Fatalf("Run() error = %v, want unsupported transport", err)
	}
}

func TestRunRequiresViews(t *testing.T) {
	t.Parallel()

	if err := Run(context.Background(), Config{}); err == nil {
		t.Fatal("Run() error = nil")
	}
}

func TestServeWithTransportStopsOnCancel(t *testing.T) {
	t.Parallel()

	server := testServer(t)
	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.serveWithTransport(ctx, serverTransport) }()

	client := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(context.Background(), clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	defer session.Close()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("serveWithTransport() error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("serveWithTransport() did not stop")
	}
}
