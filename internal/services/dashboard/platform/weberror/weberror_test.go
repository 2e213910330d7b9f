package weberror

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	module "github.com/louisbranch/launchboard/internal/services/dashboard/module"
	apperrors "github.com/louisbranch/launchboard/internal/services/dashboard/platform/errors"
	dashi18n "github.com/louisbranch/launchboard/internal/services/dashboard/platform/i18n"
	"golang.org/x/text/language"
)

func testDeps() module.Dependencies {
	return module.Dependencies{Locales: dashi18n.NewResolver(nil, "en-US")}
}

func TestPublicMessage(t *testing.T) {
	t.Parallel()

	en := dashi18n.Printer(language.AmericanEnglish)
	pt := dashi18n.Printer(language.BrazilianPortuguese)
	tests := []struct {
		name string
		loc  dashi18n.Localizer
		err  error
		want string
	}{
		{name: "keyed", loc: en, err: apperrors.EK(apperrors.KindInvalidInput, "errors.invalid_payload", "x"), want: "Payload bounds must be numbers."},
		{name: "keyed pt", loc: pt, err: apperrors.EK(apperrors.KindInvalidInput, "errors.invalid_payload", "x"), want: "Os limites de carga devem ser números."},
		{name: "status key", loc: en, err: apperrors.E(apperrors.KindNotFound, "x"), want: "Page not found."},
		{name: "plain error hides detail", loc: en, err: errors.New("disk on fire"), want: "Something went wrong."},
		{name: "unknown key", loc: en, err: apperrors.EK(apperrors.KindInvalidInput, "errors.absent", "x"), want: "Bad Request"},
		{name: "nil localizer", loc: nil, err: apperrors.E(apperrors.KindUnavailable, "x"), want: "Service Unavailable"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := PublicMessage(tc.loc, tc.err); got != tc.want {
				t.Fatalf("PublicMessage() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestWriteRendersPageOrFragment(t *testing.T) {
	t.Parallel()

	err := apperrors.EK(apperrors.KindInvalidInput, "errors.invalid_payload", "bad")

	rr := httptest.NewRecorder()
	Write(rr, httptest.NewRequest(http.MethodGet, "/", nil), err, testDeps())
	if rr.Code != http.StatusBadRequest || !strings.Contains(rr.Body.String(), "<!doctype html>") {
		t.Fatalf("full page: status = %d body = %s", rr.Code, rr.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/fragments/correlation", nil)
	req.Header.Set("HX-Request", "true")
	rr = httptest.NewRecorder()
	Write(rr, req, err, testDeps())
	if rr.Code != http.StatusBadRequest || strings.Contains(rr.Body.String(), "<html") {
		t.Fatalf("fragment: status = %d body = %s", rr.Code, rr.Body.String())
	}
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	WriteJSON(rr, httptest.NewRequest(http.MethodGet, "/api/v1/correlation?lang=pt-BR", nil),
		apperrors.EK(apperrors.KindInvalidInput, "errors.invalid_payload", "bad"), testDeps())
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Os limites de carga devem ser números.") {
		t.Fatalf("body = %s", rr.Body.String())
	}
}
