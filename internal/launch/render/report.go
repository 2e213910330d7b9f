package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/louisbranch/launchboard/internal/launch"
	"golang.org/x/sync/errgroup"
)

// ReportInput is everything one PDF report shows.
type ReportInput struct {
	Title       string
	Controls    launch.Controls
	Proportion  launch.ProportionChart
	Correlation launch.CorrelationChart
	Generated   time.Time
}

const (
	reportImageWidth  = 960
	reportImageHeight = 600
	pageMargin        = 15.0
	contentWidth      = 180.0
	imageWidthMM      = 140.0
	imageHeightMM     = imageWidthMM * reportImageHeight / reportImageWidth
)

// WriteReport renders both charts concurrently and lays them out on one A4
// page. Empty charts are reported as text instead of an image.
func WriteReport(ctx context.Context, w io.Writer, in ReportInput) error {
	var pieImg, scatterImg bytes.Buffer
	opts := Options{Width: reportImageWidth, Height: reportImageHeight}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return optionalImage(gctx, func() error { return ProportionPNG(&pieImg, in.Proportion, opts) })
	})
	g.Go(func() error {
		return optionalImage(gctx, func() error { return CorrelationPNG(&scatterImg, in.Correlation, opts) })
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("render report charts: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetTitle(in.Title, true)
	pdf.AddPage()
	// Core fonts are cp1252; localized titles and site names need mapping.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentWidth, 10, tr(in.Title), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	site := in.Controls.Site
	if site == launch.SiteAll {
		site = launch.SiteAllLabel
	}
	summary := fmt.Sprintf("Site: %s    Payload: %s - %s kg", site,
		formatKG(in.Controls.Payload.Min), formatKG(in.Controls.Payload.Max))
	pdf.CellFormat(contentWidth, 6, tr(summary), "", 1, "L", false, 0, "")
	if !in.Generated.IsZero() {
		pdf.CellFormat(contentWidth, 6, "Generated "+in.Generated.UTC().Format(time.RFC3339), "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)

	drawSection(pdf, "proportion", tr(in.Proportion.Title), &pieImg)
	drawSegmentTable(pdf, tr, in.Proportion)
	pdf.Ln(2)
	drawSection(pdf, "correlation", tr(in.Correlation.Title), &scatterImg)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentWidth, 6, fmt.Sprintf("Launches plotted: %d", len(in.Correlation.Points)), "", 1, "L", false, 0, "")

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("build report: %w", err)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func optionalImage(ctx context.Context, render func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := render(); err != nil && !errors.Is(err, ErrEmptyChart) {
		return err
	}
	return nil
}

func drawSection(pdf *gofpdf.Fpdf, name, title string, img *bytes.Buffer) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(contentWidth, 8, title, "", 1, "L", false, 0, "")
	if img.Len() == 0 {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.CellFormat(contentWidth, 6, "No launches match the current selection.", "", 1, "L", false, 0, "")
		return
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	pdf.RegisterImageOptionsReader(name, opts, img)
	pdf.ImageOptions(name, pageMargin+(contentWidth-imageWidthMM)/2, pdf.GetY(), imageWidthMM, imageHeightMM, true, opts, 0, "")
}

func drawSegmentTable(pdf *gofpdf.Fpdf, tr func(string) string, c launch.ProportionChart) {
	if c.Empty() {
		return
	}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(0xe5, 0xec, 0xf6)
	pdf.CellFormat(120, 6, "Segment", "1", 0, "L", true, 0, "")
	pdf.CellFormat(60, 6, "Launches", "1", 1, "R", true, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, seg := range c.Segments {
		pdf.CellFormat(120, 6, tr(seg.Label), "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 6, strconv.Itoa(seg.Value), "1", 1, "R", false, 0, "")
	}
	pdf.CellFormat(120, 6, "Total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(60, 6, strconv.Itoa(c.Total()), "1", 1, "R", false, 0, "")
}

func formatKG(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
