package render

import (
	"fmt"
	"io"

	"github.com/louisbranch/launchboard/internal/launch"
	"github.com/wcharczuk/go-chart/v2"
)

// minAxisSpan keeps the x axis drawable when the selected range is a point.
const minAxisSpan = launch.PayloadStep / 2

// Correlation draws a scatter chart with one dot series per booster
// category. The x axis spans the selected payload range.
func Correlation(w io.Writer, c launch.CorrelationChart, format Format, opts Options) error {
	if c.Empty() {
		return ErrEmptyChart
	}
	width, height := opts.size()

	groups := c.Groups()
	series := make([]chart.Series, 0, len(groups))
	for i, group := range groups {
		s := chart.ContinuousSeries{
			Name: group,
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotWidth:    5,
				DotColor:    Color(i),
			},
		}
		for _, p := range c.Points {
			if p.Group != group {
				continue
			}
			s.XValues = append(s.XValues, p.X)
			s.YValues = append(s.YValues, float64(p.Y))
		}
		series = append(series, s)
	}

	ch := chart.Chart{
		Title:  c.Title,
		Width:  width,
		Height: height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis: chart.XAxis{
			Name:  "Payload Mass (kg)",
			Range: xRange(c.Payload),
		},
		YAxis: chart.YAxis{
			Name:  "class",
			Range: &chart.ContinuousRange{Min: -0.25, Max: 1.25},
			Ticks: []chart.Tick{{Value: 0, Label: "0"}, {Value: 1, Label: "1"}},
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	if err := ch.Render(format.provider(), w); err != nil {
		return fmt.Errorf("render correlation chart: %w", err)
	}
	return nil
}

func xRange(r launch.PayloadRange) *chart.ContinuousRange {
	lo, hi := r.Min, r.Max
	if hi-lo < minAxisSpan {
		mid := (lo + hi) / 2
		lo, hi = mid-minAxisSpan/2, mid+minAxisSpan/2
	}
	return &chart.ContinuousRange{Min: lo, Max: hi}
}

// CorrelationSVG draws c as SVG.
func CorrelationSVG(w io.Writer, c launch.CorrelationChart, opts Options) error {
	return Correlation(w, c, FormatSVG, opts)
}

// CorrelationPNG draws c as PNG.
func CorrelationPNG(w io.Writer, c launch.CorrelationChart, opts Options) error {
	return Correlation(w, c, FormatPNG, opts)
}
