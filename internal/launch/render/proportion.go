package render

import (
	"fmt"
	"io"

	"github.com/louisbranch/launchboard/internal/launch"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Proportion draws a pie chart with one slice per segment.
func Proportion(w io.Writer, c launch.ProportionChart, format Format, opts Options) error {
	if c.Empty() {
		return ErrEmptyChart
	}
	width, height := opts.size()
	pie := chart.PieChart{
		Title:  c.Title,
		Width:  width,
		Height: height,
		Values: make([]chart.Value, 0, len(c.Segments)),
	}
	// go-chart drops zero slices and draws a lone slice with the palette's
	// first color, ignoring its style.
	colors := make([]drawing.Color, 0, len(c.Segments))
	for i, seg := range c.Segments {
		if seg.Value > 0 {
			colors = append(colors, Color(i))
		}
	}
	pie.ColorPalette = slicePalette{ColorPalette: chart.AlternateColorPalette, colors: colors}
	for i, seg := range c.Segments {
		pie.Values = append(pie.Values, chart.Value{
			Value: float64(seg.Value),
			Label: fmt.Sprintf("%s (%d)", seg.Label, seg.Value),
			Style: chart.Style{
				FillColor:   Color(i),
				StrokeColor: drawing.ColorWhite,
				StrokeWidth: 1,
			},
		})
	}
	if err := pie.Render(format.provider(), w); err != nil {
		return fmt.Errorf("render proportion chart: %w", err)
	}
	return nil
}

// slicePalette colors the drawn slices in order.
type slicePalette struct {
	chart.ColorPalette
	colors []drawing.Color
}

func (p slicePalette) GetSeriesColor(index int) drawing.Color {
	if len(p.colors) == 0 {
		return p.ColorPalette.GetSeriesColor(index)
	}
	return p.colors[index%len(p.colors)]
}

// ProportionSVG draws c as SVG.
func ProportionSVG(w io.Writer, c launch.ProportionChart, opts Options) error {
	return Proportion(w, c, FormatSVG, opts)
}

// ProportionPNG draws c as PNG.
func ProportionPNG(w io.Writer, c launch.ProportionChart, opts Options) error {
	return Proportion(w, c, FormatPNG, opts)
}
