package launch

import (
	"math"
	"strconv"
)

const (
	// SiteAll selects every launch site.
	SiteAll = "ALL"
	// SiteAllLabel is the selector label for SiteAll.
	SiteAllLabel = "All Sites"

	// PayloadDomainMin is the lowest value the payload selector accepts.
	PayloadDomainMin = 0.0
	// PayloadDomainMax is the highest value the payload selector accepts.
	PayloadDomainMax = 10000.0
	// PayloadStep is the payload selector increment.
	PayloadStep = 1000.0
)

// PayloadRange is a closed payload interval in kilograms.
type PayloadRange struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Contains reports whether v lies within the range, bounds included.
func (r PayloadRange) Contains(v float64) bool {
	return r.Min <= v && v <= r.Max
}

// PayloadDomain returns the selector domain.
func PayloadDomain() PayloadRange {
	return PayloadRange{Min: PayloadDomainMin, Max: PayloadDomainMax}
}

// ClampPayload pulls each bound into the selector domain. Bounds are never
// swapped: an inverted range stays inverted and selects nothing.
func ClampPayload(r PayloadRange) PayloadRange {
	return PayloadRange{Min: clamp(r.Min), Max: clamp(r.Max)}
}

func clamp(v float64) float64 {
	if math.IsNaN(v) || v < PayloadDomainMin {
		return PayloadDomainMin
	}
	if v > PayloadDomainMax {
		return PayloadDomainMax
	}
	return v
}

// Controls is the current value of both dashboard inputs.
type Controls struct {
	Site    string       `json:"site" yaml:"site"`
	Payload PayloadRange `json:"payload" yaml:"payload"`
}

// DefaultControls selects every site and the observed payload bounds.
func DefaultControls(ds *Dataset) Controls {
	return Controls{Site: SiteAll, Payload: ds.PayloadBounds()}
}

// SiteOption is one choice of the site selector.
type SiteOption struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// SiteOptions lists the selector choices: all sites first, then each site in
// order of first appearance.
func SiteOptions(ds *Dataset) []SiteOption {
	sites := ds.Sites()
	out := make([]SiteOption, 0, len(sites)+1)
	out = append(out, SiteOption{Label: SiteAllLabel, Value: SiteAll})
	for _, site := range sites {
		out = append(out, SiteOption{Label: site, Value: site})
	}
	return out
}

// SliderMark labels one tick of the payload selector.
type SliderMark struct {
	Value float64 `json:"value" yaml:"value"`
	Label string  `json:"label" yaml:"label"`
}

// Slider describes the payload range selector.
type Slider struct {
	Domain  PayloadRange `json:"domain" yaml:"domain"`
	Step    float64      `json:"step" yaml:"step"`
	Marks   []SliderMark `json:"marks" yaml:"marks"`
	Default PayloadRange `json:"default" yaml:"default"`
}

// PayloadSlider describes the payload selector for ds.
func PayloadSlider(ds *Dataset) Slider {
	marks := make([]SliderMark, 0, int(PayloadDomainMax/PayloadStep)+1)
	for v := PayloadDomainMin; v <= PayloadDomainMax; v += PayloadStep {
		marks = append(marks, SliderMark{Value: v, Label: strconv.FormatFloat(v, 'f', -1, 64)})
	}
	return Slider{
		Domain:  PayloadDomain(),
		Step:    PayloadStep,
		Marks:   marks,
		Default: ds.PayloadBounds(),
	}
}
