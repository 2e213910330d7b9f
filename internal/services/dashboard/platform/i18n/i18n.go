// Package i18n resolves the request locale and prints catalog messages.
package i18n

import (
	"net/http"
	"strings"

	"github.com/louisbranch/launchboard/internal/platform/i18n/catalog"
	"github.com/louisbranch/launchboard/internal/services/dashboard/routepath"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Localizer formats catalog messages for one locale.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// Resolver picks a supported locale for each request.
type Resolver struct {
	matcher   language.Matcher
	supported []language.Tag
	fallback  language.Tag
}

// NewResolver matches requests against the bundle's locales. fallback is
// used when neither the lang parameter nor Accept-Language matches; an
// unsupported fallback becomes the catalog base locale.
func NewResolver(bundle *catalog.Bundle, fallback string) Resolver {
	if bundle == nil {
		bundle = catalog.Default()
	}
	supported := bundle.Tags()
	def := supported[0]
	if tag, err := language.Parse(strings.TrimSpace(fallback)); err == nil && bundle.HasLocale(tag.String()) {
		def = tag
	}
	return Resolver{
		matcher:   language.NewMatcher(supported),
		supported: supported,
		fallback:  def,
	}
}

// Default returns the fallback locale.
func (r Resolver) Default() language.Tag {
	if r.matcher == nil {
		return language.MustParse(catalog.BaseLocale)
	}
	return r.fallback
}

// Supported lists the catalog locales.
func (r Resolver) Supported() []language.Tag {
	return append([]language.Tag(nil), r.supported...)
}

// Match returns the supported tag for a lang value or Accept-Language
// header, and whether anything matched.
func (r Resolver) Match(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" || r.matcher == nil {
		return r.Default(), false
	}
	tags, _, err := language.ParseAcceptLanguage(value)
	if err != nil || len(tags) == 0 {
		return r.Default(), false
	}
	_, index, confidence := r.matcher.Match(tags...)
	if confidence == language.No {
		return r.Default(), false
	}
	return r.supported[index], true
}

// ResolveTag reads the lang query parameter, then Accept-Language.
func (r Resolver) ResolveTag(req *http.Request) language.Tag {
	if req == nil {
		return r.Default()
	}
	if tag, ok := r.Match(req.URL.Query().Get(routepath.ParamLang)); ok {
		return tag
	}
	if tag, ok := r.Match(req.Header.Get("Accept-Language")); ok {
		return tag
	}
	return r.Default()
}

// ResolveLocalizer returns a printer for the request locale and the locale
// itself. It sets Content-Language on w when w is non-nil.
func (r Resolver) ResolveLocalizer(w http.ResponseWriter, req *http.Request) (Localizer, language.Tag) {
	tag := r.ResolveTag(req)
	if w != nil {
		w.Header().Set("Content-Language", tag.String())
	}
	return message.NewPrinter(tag), tag
}

// Printer returns a Localizer for tag.
func Printer(tag language.Tag) Localizer {
	return message.NewPrinter(tag)
}
