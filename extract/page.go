package extract

import (
	"strings"

	"github.com/tsawler/folio/boxes"
	"github.com/tsawler/folio/layout"
	"github.com/tsawler/folio/model"
)

// PageConfig holds configuration for single-page extraction.
type PageConfig struct {
	// HeaderRatio is the fraction of the page height cropped from the top.
	// Default: 0.08.
	HeaderRatio float64

	// FooterRatio is the fraction of the page height cropped from the
	// bottom. Default: 0.06.
	FooterRatio float64

	// LineTolerance is the vertical tolerance (in points) for grouping
	// glyphs into lines. Values below 1.0 are raised to 1.0. Default: 2.0.
	LineTolerance float64

	// GapRatio is the word-boundary threshold relative to the previous
	// glyph's width. Default: 0.5.
	GapRatio float64

	// NormalizeLigatures folds ligature glyphs into their component
	// characters. Default: false.
	NormalizeLigatures bool
}

// DefaultPageConfig returns sensible default configuration.
func DefaultPageConfig() PageConfig {
	return PageConfig{
		HeaderRatio:   0.08,
		FooterRatio:   0.06,
		LineTolerance: 2.0,
		GapRatio:      0.5,
	}
}

// PageExtractor produces a page's text from its glyphs and column boxes.
type PageExtractor struct {
	config PageConfig
}

// NewPageExtractor creates a page extractor with default configuration.
func NewPageExtractor() *PageExtractor {
	return &PageExtractor{
		config: DefaultPageConfig(),
	}
}

// NewPageExtractorWithConfig creates a page extractor with custom configuration.
func NewPageExtractorWithConfig(config PageConfig) *PageExtractor {
	return &PageExtractor{
		config: config,
	}
}

// Text extracts the page's text for the given column boxes, left to right.
// Each column's glyphs are grouped into lines, reconstructed, and cleaned;
// non-empty column texts are joined with a blank line. Columns that yield
// no text are omitted entirely.
func (e *PageExtractor) Text(page model.Page, cols []boxes.ColumnBox) string {
	y0 := page.Height * e.config.HeaderRatio
	y1 := page.Height * (1.0 - e.config.FooterRatio)
	if y1 <= y0 {
		// Misconfigured ratios collapse the crop; fall back to the full
		// page rather than extracting nothing.
		y0, y1 = 0, page.Height
	}

	tolerance := e.config.LineTolerance
	if tolerance < 1.0 {
		tolerance = 1.0
	}
	grouper := layout.NewLineGrouperWithConfig(layout.LineGrouperConfig{
		Tolerance: tolerance,
	})
	reconstructor := layout.NewReconstructorWithConfig(layout.ReconstructorConfig{
		GapRatio:           e.config.GapRatio,
		NormalizeLigatures: e.config.NormalizeLigatures,
	})

	var colTexts []string
	for _, col := range cols {
		region := model.NewRect(col.X0, y0, col.X1, y1).ClampX(0, page.Width)
		if region.IsEmpty() {
			continue
		}

		text := e.regionText(page, region, grouper, reconstructor)
		if text != "" {
			colTexts = append(colTexts, text)
		}
	}

	return strings.Join(colTexts, "\n\n")
}

// regionText extracts and cleans the text of one rectangular region.
func (e *PageExtractor) regionText(page model.Page, region model.Rect, grouper *layout.LineGrouper, reconstructor *layout.Reconstructor) string {
	lines := grouper.Group(page.GlyphsIn(region))
	if len(lines) == 0 {
		return ""
	}

	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		parts = append(parts, reconstructor.Text(line))
	}

	return CleanLines(strings.Join(parts, "\n"))
}
