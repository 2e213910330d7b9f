package catalog

import (
	"testing"
	"testing/fstest"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestLoadEmbeddedHasExpectedLocales(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	for _, locale := range []string{BaseLocale, "pt-BR"} {
		if !bundle.HasLocale(locale) {
			t.Fatalf("expected locale %s", locale)
		}
	}
	if got, _ := bundle.Message("en-US", "dashboard.title"); got != "SpaceX Launch Records Dashboard" {
		t.Fatalf("dashboard.title = %q", got)
	}
}

func TestEmbeddedLocalesCoverBaseKeys(t *testing.T) {
	bundle := Default()
	base := bundle.locales[BaseLocale].Messages
	for _, locale := range bundle.Locales() {
		for key := range base {
			if _, ok := bundle.locales[locale].Messages[key]; !ok {
				t.Errorf("locale %s is missing %q", locale, key)
			}
		}
	}
}

func TestMessageFallsBackToBaseLocale(t *testing.T) {
	got, ok := Default().Message("fr-FR", "errors.not_found")
	if !ok || got != "Page not found." {
		t.Fatalf("Message() = %q, %v", got, ok)
	}
	if _, ok := Default().Message("en-US", "errors.absent"); ok {
		t.Fatal("Message() found an undefined key")
	}
}

func TestRegisterFeedsMessagePrinter(t *testing.T) {
	p := message.NewPrinter(language.BrazilianPortuguese)
	if got := p.Sprintf("dashboard.points", 3); got != "3 lançamentos exibidos" {
		t.Fatalf("Sprintf() = %q", got)
	}
}

func TestLoadFromFSRejectsBadCatalogs(t *testing.T) {
	t.Parallel()

	good := &fstest.MapFile{Data: []byte("locale: en-US\nnamespace: errors\nmessages:\n  errors.a: \"a\"\n")}
	tests := []struct {
		name string
		fs   fstest.MapFS
	}{
		{name: "empty", fs: fstest.MapFS{}},
		{name: "missing base", fs: fstest.MapFS{
			"locales/pt-BR/errors.yaml": {Data: []byte("locale: pt-BR\nnamespace: errors\nmessages:\n  errors.a: \"a\"\n")},
		}},
		{name: "locale mismatch", fs: fstest.MapFS{
			"locales/en-US/errors.yaml": {Data: []byte("locale: pt-BR\nnamespace: errors\nmessages:\n  errors.a: \"a\"\n")},
		}},
		{name: "key outside namespace", fs: fstest.MapFS{
			"locales/en-US/errors.yaml": {Data: []byte("locale: en-US\nnamespace: errors\nmessages:\n  dashboard.a: \"a\"\n")},
		}},
		{name: "translation without base key", fs: fstest.MapFS{
			"locales/en-US/errors.yaml": good,
			"locales/pt-BR/errors.yaml": {Data: []byte("locale: pt-BR\nnamespace: errors\nmessages:\n  errors.b: \"b\"\n")},
		}},
		{name: "invalid yaml", fs: fstest.MapFS{
			"locales/en-US/errors.yaml": {Data: []byte("locale: [\n")},
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := LoadFromFS(tc.fs); err == nil {
				t.Fatal("LoadFromFS() error = nil")
			}
		})
	}
}

func TestTagsListBaseFirst(t *testing.T) {
	tags := Default().Tags()
	if len(tags) != 2 || tags[0] != language.AmericanEnglish || tags[1] != language.BrazilianPortuguese {
		t.Fatalf("Tags() = %v", tags)
	}
}
