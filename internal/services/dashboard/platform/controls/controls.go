// Package controls reads dashboard control state from request parameters.
package controls

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/louisbranch/launchboard/internal/launch"
	apperrors "github.com/louisbranch/launchboard/internal/services/dashboard/platform/errors"
	"github.com/louisbranch/launchboard/internal/services/dashboard/routepath"
)

// KeyInvalidPayload localizes malformed payload bounds.
const KeyInvalidPayload = "errors.invalid_payload"

// FromQuery builds control state from q. Missing values take the defaults;
// payload bounds are clamped to the selector domain but never reordered.
func FromQuery(q url.Values, defaults launch.Controls) (launch.Controls, error) {
	state := defaults
	if site := strings.TrimSpace(q.Get(routepath.ParamSite)); site != "" {
		state.Site = site
	}
	if state.Site == "" {
		state.Site = launch.SiteAll
	}

	var err error
	if state.Payload.Min, err = bound(q, routepath.ParamPayloadMin, defaults.Payload.Min); err != nil {
		return defaults, err
	}
	if state.Payload.Max, err = bound(q, routepath.ParamPayloadMax, defaults.Payload.Max); err != nil {
		return defaults, err
	}
	state.Payload = launch.ClampPayload(state.Payload)
	return state, nil
}

func bound(q url.Values, name string, fallback float64) (float64, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, apperrors.EK(apperrors.KindInvalidInput, KeyInvalidPayload, fmt.Sprintf("%s must be a number, got %q", name, raw))
	}
	return v, nil
}

// Query encodes state as request parameters. lang is omitted when empty.
func Query(state launch.Controls, lang string) url.Values {
	q := url.Values{}
	q.Set(routepath.ParamSite, state.Site)
	q.Set(routepath.ParamPayloadMin, strconv.FormatFloat(state.Payload.Min, 'f', -1, 64))
	q.Set(routepath.ParamPayloadMax, strconv.FormatFloat(state.Payload.Max, 'f', -1, 64))
	if lang != "" {
		q.Set(routepath.ParamLang, lang)
	}
	return q
}

// URL returns path with state encoded as its query.
func URL(path string, state launch.Controls, lang string) string {
	return path + "?" + Query(state, lang).Encode()
}
