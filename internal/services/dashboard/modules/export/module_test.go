package export

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/louisbranch/launchboard/internal/services/dashboard/dashboardtest"
)

func serve(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	m, err := New().Mount(dashboardtest.Dependencies(t))
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	rr := httptest.NewRecorder()
	m.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func TestReportIsPDFAttachment(t *testing.T) {
	t.Parallel()

	for _, target := range []string{
		"/export/report.pdf",
		"/export/report.pdf?site=A&payload_min=0&payload_max=2000",
		"/export/report.pdf?site=Nowhere&lang=pt-BR",
	} {
		rr := serve(t, target)
		if rr.Code != http.StatusOK {
			t.Fatalf("GET %s status = %d, want %d", target, rr.Code, http.StatusOK)
		}
		if got := rr.Header().Get("Content-Type"); got != "application/pdf" {
			t.Fatalf("GET %s Content-Type = %q", target, got)
		}
		if got := rr.Header().Get("Content-Disposition"); got != `attachment; filename="launch-report.pdf"` {
			t.Fatalf("GET %s Content-Disposition = %q", target, got)
		}
		if !bytes.HasPrefix(rr.Body.Bytes(), []byte("%PDF-")) {
			t.Fatalf("GET %s body is not a PDF", target)
		}
	}
}

func TestReportRejectsMalformedPayload(t *testing.T) {
	t.Parallel()

	rr := serve(t, "/export/report.pdf?payload_min=ten")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}
