package layout

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Bold run markers emitted by the Reconstructor.
const (
	BoldOpen  = "<bold>"
	BoldClose = "</bold>"
)

// fallbackGlyphWidth is the reference width used for the word-gap heuristic
// when the previous glyph's own width is unknown or non-positive.
const fallbackGlyphWidth = 3.0

// boldTokens are the font-name substrings that mark a glyph as bold. The
// match is case-insensitive.
var boldTokens = []string{
	"bold", "bd", "black", "heavy", "semibold", "demi", "mediumbold",
}

// LooksBold reports whether a font name indicates a bold weight.
//
// This is a heuristic, not a guarantee: it matches known weight keywords as
// substrings of the font name, so a bold font with an unusual name will be
// missed, and a font whose name merely contains a keyword (say "Blackwood")
// will trigger spuriously.
func LooksBold(fontName string) bool {
	if fontName == "" {
		return false
	}
	fn := strings.ToLower(fontName)
	for _, tok := range boldTokens {
		if strings.Contains(fn, tok) {
			return true
		}
	}
	return false
}

// ReconstructorConfig holds configuration for line reconstruction.
type ReconstructorConfig struct {
	// GapRatio is the threshold, relative to the previous glyph's width,
	// above which a horizontal gap is treated as a word boundary.
	// Default: 0.5.
	GapRatio float64

	// NormalizeLigatures folds ligature glyphs such as "ﬁ" into their
	// component characters using NFKC normalization. Off by default to
	// preserve the source text exactly.
	NormalizeLigatures bool
}

// DefaultReconstructorConfig returns sensible default configuration.
func DefaultReconstructorConfig() ReconstructorConfig {
	return ReconstructorConfig{
		GapRatio:           0.5,
		NormalizeLigatures: false,
	}
}

// Reconstructor converts a line of ordered glyphs into a text string with
// inferred word spacing and bold markup.
type Reconstructor struct {
	config ReconstructorConfig
}

// NewReconstructor creates a reconstructor with default configuration.
func NewReconstructor() *Reconstructor {
	return &Reconstructor{
		config: DefaultReconstructorConfig(),
	}
}

// NewReconstructorWithConfig creates a reconstructor with custom configuration.
func NewReconstructorWithConfig(config ReconstructorConfig) *Reconstructor {
	return &Reconstructor{
		config: config,
	}
}

// Text reconstructs a single line. Bold runs are wrapped in BoldOpen and
// BoldClose markers; a run still open at the end of the line is closed
// after the last glyph, so markers are always balanced and never nested.
func (r *Reconstructor) Text(line Line) string {
	if len(line) == 0 {
		return ""
	}

	var sb strings.Builder
	inBold := false

	// Gap tracking follows the last glyph that produced output, so a
	// skipped empty glyph cannot cause a false space between its neighbors.
	var prevRight, prevWidth float64
	havePrev := false

	for _, glyph := range line {
		txt := glyph.Text
		if txt == "" {
			continue
		}
		if r.config.NormalizeLigatures {
			txt = norm.NFKC.String(txt)
		}

		if havePrev {
			ref := prevWidth
			if ref <= 0 {
				ref = fallbackGlyphWidth
			}
			if glyph.X0-prevRight > r.config.GapRatio*ref {
				sb.WriteString(" ")
			}
		}

		isBold := LooksBold(glyph.FontName)
		if isBold && !inBold {
			sb.WriteString(BoldOpen)
			inBold = true
		} else if !isBold && inBold {
			sb.WriteString(BoldClose)
			inBold = false
		}

		sb.WriteString(txt)

		prevRight = glyph.X1
		prevWidth = glyph.Width()
		havePrev = true
	}

	if inBold {
		sb.WriteString(BoldClose)
	}

	return sb.String()
}
