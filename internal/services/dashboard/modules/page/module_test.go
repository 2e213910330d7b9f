package page

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louisbranch/launchboard/internal/services/dashboard/dashboardtest"
	module "github.com/louisbranch/launchboard/internal/services/dashboard/module"
)

func mount(t *testing.T) http.Handler {
	t.Helper()
	m, err := New().Mount(dashboardtest.Dependencies(t))
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if m.Prefix != "/" {
		t.Fatalf("Prefix = %q, want /", m.Prefix)
	}
	return m.Handler
}

func TestModuleIDReturnsPage(t *testing.T) {
	t.Parallel()

	if got := New().ID(); got != "page" {
		t.Fatalf("ID() = %q, want %q", got, "page")
	}
}

func TestMountRequiresViews(t *testing.T) {
	t.Parallel()

	if _, err := New().Mount(module.Dependencies{}); err == nil {
		t.Fatal("Mount() error = nil")
	}
}

func TestIndexRendersInitialState(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	mount(t).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	for _, want := range []string{
		"SpaceX Launch Records Dashboard",
		`<option value="ALL" selected>All Sites</option>`,
		`<option value="A">A</option>`,
		"Total Success Launches by Site",
		"Correlation between Payload and Success for all Sites",
		`value="500"`,
		`value="9600"`,
		"5 launches plotted",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("page missing %q", want)
		}
	}
}

func TestIndexAppliesQueryState(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	mount(t).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/?site=B&payload_min=0&payload_max=5000&lang=pt-BR", nil))
	body := rr.Body.String()
	for _, want := range []string{
		`<html lang="pt-BR">`,
		`<option value="B" selected>B</option>`,
		"Total Success Launches for site B",
		"1 lançamentos exibidos",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("page missing %q", want)
		}
	}
}

func TestIndexRejectsMalformedPayload(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	mount(t).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/?payload_min=heavy", nil))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestUnknownPathIsNotFound(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	mount(t).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/missing", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}
