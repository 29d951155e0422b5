package layout

import (
	"math"
	"sort"

	"github.com/tsawler/folio/model"
)

// Line is an ordered run of glyphs sharing an inferred vertical position,
// sorted left to right. Lines are transient: each one exists only long
// enough to be handed to a Reconstructor.
type Line []model.Glyph

// LineGrouperConfig holds configuration for line grouping.
type LineGrouperConfig struct {
	// Tolerance is the maximum vertical distance (in points) between a
	// glyph and the first glyph of the current line for the glyph to join
	// that line. Default: 2.0.
	Tolerance float64
}

// DefaultLineGrouperConfig returns sensible default configuration.
func DefaultLineGrouperConfig() LineGrouperConfig {
	return LineGrouperConfig{
		Tolerance: 2.0,
	}
}

// LineGrouper partitions glyphs into visual text lines.
type LineGrouper struct {
	config LineGrouperConfig
}

// NewLineGrouper creates a line grouper with default configuration.
func NewLineGrouper() *LineGrouper {
	return &LineGrouper{
		config: DefaultLineGrouperConfig(),
	}
}

// NewLineGrouperWithConfig creates a line grouper with custom configuration.
func NewLineGrouperWithConfig(config LineGrouperConfig) *LineGrouper {
	return &LineGrouper{
		config: config,
	}
}

// Group partitions the given glyphs into lines, ordered top to bottom with
// each line's glyphs ordered left to right. Empty input yields no lines.
func (g *LineGrouper) Group(glyphs []model.Glyph) []Line {
	if len(glyphs) == 0 {
		return nil
	}

	// Sort by vertical position first, horizontal second. Tops are rounded
	// to avoid floating-point jitter reordering glyphs that share a
	// baseline.
	sorted := make([]model.Glyph, len(glyphs))
	copy(sorted, glyphs)
	sort.SliceStable(sorted, func(i, j int) bool {
		ti, tj := roundTop(sorted[i].Top), roundTop(sorted[j].Top)
		if ti != tj {
			return ti < tj
		}
		return sorted[i].X0 < sorted[j].X0
	})

	var lines []Line
	var current Line
	var anchorTop float64

	for _, glyph := range sorted {
		if len(current) == 0 {
			current = Line{glyph}
			anchorTop = glyph.Top
			continue
		}

		// A new line begins when the glyph drifts beyond the tolerance
		// from the line's anchor (its first glyph).
		if math.Abs(glyph.Top-anchorTop) > g.config.Tolerance {
			lines = append(lines, sortLine(current))
			current = Line{glyph}
			anchorTop = glyph.Top
		} else {
			current = append(current, glyph)
		}
	}

	if len(current) > 0 {
		lines = append(lines, sortLine(current))
	}

	return lines
}

// sortLine orders a finished line's glyphs left to right. The initial sort
// already interleaves by X, but the per-line re-sort defends against any
// instability across the rounded-top boundary.
func sortLine(line Line) Line {
	sort.SliceStable(line, func(i, j int) bool {
		return line[i].X0 < line[j].X0
	})
	return line
}

// roundTop rounds a vertical coordinate to three decimals.
func roundTop(top float64) float64 {
	return math.Round(top*1000) / 1000
}
