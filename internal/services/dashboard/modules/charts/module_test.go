package charts

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louisbranch/launchboard/internal/services/dashboard/dashboardtest"
	module "github.com/louisbranch/launchboard/internal/services/dashboard/module"
)

func serve(t *testing.T, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	m, err := New().Mount(dashboardtest.Dependencies(t))
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	rr := httptest.NewRecorder()
	m.Handler.ServeHTTP(rr, httptest.NewRequest(method, target, nil))
	return rr
}

func TestMountRequiresViews(t *testing.T) {
	t.Parallel()

	if _, err := New().Mount(module.Dependencies{}); err == nil {
		t.Fatal("Mount() error = nil")
	}
}

func TestChartsServeSVG(t *testing.T) {
	t.Parallel()

	for _, target := range []string{
		"/charts/proportion.svg",
		"/charts/proportion.svg?site=A",
		"/charts/correlation.svg",
		"/charts/correlation.svg?site=B&payload_min=3000&payload_max=10000",
	} {
		rr := serve(t, http.MethodGet, target)
		if rr.Code != http.StatusOK {
			t.Fatalf("GET %s status = %d, want %d", target, rr.Code, http.StatusOK)
		}
		if got := rr.Header().Get("Content-Type"); got != "image/svg+xml" {
			t.Fatalf("GET %s Content-Type = %q", target, got)
		}
		if !strings.Contains(rr.Body.String(), "<svg") {
			t.Fatalf("GET %s body is not svg", target)
		}
	}
}

func TestEmptyChartsServePlaceholder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		target string
		title  string
	}{
		{"/charts/proportion.svg?site=Nowhere", "Total Success Launches for site Nowhere"},
		{"/charts/correlation.svg?payload_min=6000&payload_max=1000", "Correlation between Payload and Success for all Sites"},
	}
	for _, tc := range tests {
		rr := serve(t, http.MethodGet, tc.target)
		if rr.Code != http.StatusOK {
			t.Fatalf("GET %s status = %d", tc.target, rr.Code)
		}
		body := rr.Body.String()
		if !strings.Contains(body, tc.title) || !strings.Contains(body, "No launches match the current selection.") {
			t.Fatalf("GET %s placeholder = %s", tc.target, body)
		}
	}
}

func TestChartsRejectMalformedPayload(t *testing.T) {
	t.Parallel()

	rr := serve(t, http.MethodGet, "/charts/correlation.svg?payload_max=lots")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestChartsRejectNonGet(t *testing.T) {
	t.Parallel()

	rr := serve(t, http.MethodPost, "/charts/proportion.svg")
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
}
