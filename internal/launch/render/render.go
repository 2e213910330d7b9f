// Package render draws launch view models as SVG or PNG charts and PDF
// reports.
package render

import (
	"errors"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrEmptyChart reports a view model with nothing to draw.
var ErrEmptyChart = errors.New("chart has no data")

const (
	defaultWidth  = 640
	defaultHeight = 420
)

// Options sizes a rendered chart. Zero values fall back to the defaults.
type Options struct {
	Width  int
	Height int
}

func (o Options) size() (int, int) {
	w, h := o.Width, o.Height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

// Format selects the output encoding.
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

func (f Format) provider() chart.RendererProvider {
	if f == FormatPNG {
		return chart.PNG
	}
	return chart.SVG
}

// ContentType is the media type of the rendered bytes.
func (f Format) ContentType() string {
	if f == FormatPNG {
		return "image/png"
	}
	return "image/svg+xml"
}

var palette = []string{
	"636efa", "EF553B", "00cc96", "ab63fa", "FFA15A",
	"19d3f3", "FF6692", "B6E880", "FF97FF", "FECB52",
}

// Color returns the stable palette color for the i-th series or segment.
func Color(i int) drawing.Color {
	if i < 0 {
		i = -i
	}
	return drawing.ColorFromHex(palette[i%len(palette)])
}
