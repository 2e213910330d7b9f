package templates

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/louisbranch/launchboard/internal/launch"
	"github.com/louisbranch/launchboard/internal/launch/view"
	dashi18n "github.com/louisbranch/launchboard/internal/services/dashboard/platform/i18n"
	"golang.org/x/text/language"
)

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return buf.String()
}

func samplePage() PageView {
	state := launch.Controls{Site: "KSC LC-39A", Payload: launch.PayloadRange{Min: 0, Max: 9600}}
	return PageView{
		Lang: "en-US",
		Controls: view.ControlsView{
			Sites: []launch.SiteOption{
				{Label: launch.SiteAllLabel, Value: launch.SiteAll},
				{Label: "KSC LC-39A", Value: "KSC LC-39A"},
			},
			Slider: launch.Slider{
				Domain: launch.PayloadRange{Min: 0, Max: 10000},
				Step:   1000,
				Marks:  []launch.SliderMark{{Value: 0, Label: "0"}, {Value: 10000, Label: "10000"}},
			},
			Defaults: state,
		},
		State: state,
		Proportion: ProportionView{
			Chart: launch.ProportionChart{
				Site:     "KSC LC-39A",
				Title:    "Total Success Launches for site KSC LC-39A",
				Segments: []launch.Segment{{Label: "1", Value: 10}, {Label: "0", Value: 3}},
			},
			ImageURL: "/charts/proportion.svg?site=KSC+LC-39A",
		},
		Correlation: CorrelationView{
			Chart: launch.CorrelationChart{
				Site:    "KSC LC-39A",
				Title:   "Correlation between Payload and Success for KSC LC-39A",
				Payload: state.Payload,
				Points:  []launch.Point{{X: 2490, Y: 1, Group: "FT"}},
			},
			ImageURL: "/charts/correlation.svg?site=KSC+LC-39A",
		},
		ExportURL: "/export/report.pdf?site=KSC+LC-39A",
	}
}

func TestPageRendersControlsAndViews(t *testing.T) {
	t.Parallel()

	out := renderString(t, Page(samplePage(), dashi18n.Printer(language.AmericanEnglish)))
	for _, want := range []string{
		"<title>SpaceX Launch Records Dashboard</title>",
		`<option value="ALL">All Sites</option>`,
		`<option value="KSC LC-39A" selected>KSC LC-39A</option>`,
		`hx-trigger="change from:#site-dropdown"`,
		`hx-trigger="change from:#controls"`,
		`name="payload_min" min="0" max="10000" step="any" value="0"`,
		`name="payload_max" min="0" max="10000" step="any" value="9600"`,
		`data-step="1000"`,
		`<option value="10000" label="10000">`,
		`href="/export/report.pdf?site=KSC+LC-39A"`,
		"Success (1)",
		"Failure (0)",
		"1 launches plotted",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("page missing %q", want)
		}
	}
}

func TestPayloadInputsKeepObservedBounds(t *testing.T) {
	t.Parallel()

	p := samplePage()
	p.State.Payload = launch.PayloadRange{Min: 350, Max: 9600}
	out := renderString(t, Page(p, dashi18n.Printer(language.AmericanEnglish)))
	for _, want := range []string{
		`id="payload-min" name="payload_min" min="0" max="10000" step="any" value="350"`,
		`id="payload-max" name="payload_max" min="0" max="10000" step="any" value="9600"`,
		`<output for="payload-max">9600</output>`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("page missing %q", want)
		}
	}
	if strings.Contains(out, `step="1000"`) {
		t.Fatal("range inputs snap to the mark step")
	}
}

func TestPageIsLocalized(t *testing.T) {
	t.Parallel()

	p := samplePage()
	p.Lang = "pt-BR"
	out := renderString(t, Page(p, dashi18n.Printer(language.BrazilianPortuguese)))
	for _, want := range []string{`<html lang="pt-BR">`, "Painel de Lançamentos da SpaceX", "Todos os Locais", "Sucesso (1)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("page missing %q", want)
		}
	}
}

func TestFragmentsEscapeData(t *testing.T) {
	t.Parallel()

	loc := dashi18n.Printer(language.AmericanEnglish)
	out := renderString(t, CorrelationFragment(CorrelationView{
		Chart: launch.CorrelationChart{
			Title:  `<script>alert("x")</script>`,
			Points: []launch.Point{{X: 1, Y: 0, Group: "<b>"}},
		},
		ImageURL: `/charts/correlation.svg?site="x"`,
	}, loc))
	if strings.Contains(out, "<script>") || strings.Contains(out, "<b>") {
		t.Fatalf("fragment did not escape data: %s", out)
	}
}

func TestEmptyFragmentsShowNoDataMessage(t *testing.T) {
	t.Parallel()

	loc := dashi18n.Printer(language.AmericanEnglish)
	for _, out := range []string{
		renderString(t, ProportionFragment(ProportionView{Chart: launch.ProportionChart{Title: "t", Segments: []launch.Segment{}}}, loc)),
		renderString(t, CorrelationFragment(CorrelationView{Chart: launch.CorrelationChart{Title: "t", Points: []launch.Point{}}}, loc)),
	} {
		if !strings.Contains(out, "No launches match the current selection.") {
			t.Fatalf("fragment missing empty message: %s", out)
		}
		if strings.Contains(out, "<table") {
			t.Fatalf("empty fragment rendered a table: %s", out)
		}
	}
}

func TestProportionFragmentAllSitesKeepsSiteLabels(t *testing.T) {
	t.Parallel()

	out := renderString(t, ProportionFragment(ProportionView{Chart: launch.ProportionChart{
		Site:     launch.SiteAll,
		Title:    "Total Success Launches by Site",
		Segments: []launch.Segment{{Label: "CCAFS LC-40", Value: 7}, {Label: "KSC LC-39A", Value: 10}},
	}}, dashi18n.Printer(language.AmericanEnglish)))
	if !strings.Contains(out, "<td>CCAFS LC-40</td>") || !strings.Contains(out, `<td class="num">17</td>`) {
		t.Fatalf("fragment = %s", out)
	}
}

func TestErrorPage(t *testing.T) {
	t.Parallel()

	out := renderString(t, ErrorPage(http.StatusBadRequest, "en-US", "Payload bounds must be numbers."))
	if !strings.Contains(out, "400 Bad Request") || !strings.Contains(out, "Payload bounds must be numbers.") {
		t.Fatalf("ErrorPage() = %s", out)
	}
	if got := renderString(t, ErrorFragment("x & y")); got != `<p class="error" role="alert">x &amp; y</p>` {
		t.Fatalf("ErrorFragment() = %s", got)
	}
}
