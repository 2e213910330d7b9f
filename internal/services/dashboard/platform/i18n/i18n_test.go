package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/louisbranch/launchboard/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
)

func TestResolveTag(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(catalog.Default(), "en-US")
	tests := []struct {
		name   string
		target string
		accept string
		want   language.Tag
	}{
		{name: "default", target: "/", want: language.AmericanEnglish},
		{name: "lang param", target: "/?lang=pt-BR", want: language.BrazilianPortuguese},
		{name: "lang param wins", target: "/?lang=en-US", accept: "pt-BR", want: language.AmericanEnglish},
		{name: "accept language", target: "/", accept: "pt-BR,pt;q=0.9", want: language.BrazilianPortuguese},
		{name: "base language match", target: "/", accept: "pt-PT", want: language.BrazilianPortuguese},
		{name: "unsupported falls back", target: "/?lang=ja", accept: "de-DE", want: language.AmericanEnglish},
		{name: "garbage falls back", target: "/?lang=%3B%3B", want: language.AmericanEnglish},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			if tc.accept != "" {
				req.Header.Set("Accept-Language", tc.accept)
			}
			if got := resolver.ResolveTag(req); got != tc.want {
				t.Fatalf("ResolveTag() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestNewResolverHonorsConfiguredDefault(t *testing.T) {
	t.Parallel()

	if got := NewResolver(nil, "pt-BR").Default(); got != language.BrazilianPortuguese {
		t.Fatalf("Default() = %v, want pt-BR", got)
	}
	if got := NewResolver(nil, "fr-FR").Default(); got != language.AmericanEnglish {
		t.Fatalf("Default() = %v, want en-US for unsupported locale", got)
	}
	if got := (Resolver{}).Default(); got != language.AmericanEnglish {
		t.Fatalf("zero Resolver Default() = %v", got)
	}
}

func TestResolveLocalizerSetsContentLanguage(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(nil, "en-US")
	rr := httptest.NewRecorder()
	loc, tag := resolver.ResolveLocalizer(rr, httptest.NewRequest(http.MethodGet, "/?lang=pt-BR", nil))
	if tag != language.BrazilianPortuguese {
		t.Fatalf("tag = %v", tag)
	}
	if got := rr.Header().Get("Content-Language"); got != "pt-BR" {
		t.Fatalf("Content-Language = %q", got)
	}
	if got := loc.Sprintf("dashboard.site_all"); got != "Todos os Locais" {
		t.Fatalf("Sprintf() = %q", got)
	}
}
