package folio

import (
	"fmt"
	"os"

	"github.com/tsawler/folio/extract"
	"github.com/tsawler/folio/model"
	"github.com/tsawler/folio/reader"
)

// Extractor converts a document into plain text. Configuration methods
// return a new Extractor, so a partially-configured Extractor can be reused
// as a template.
type Extractor struct {
	filename string
	source   model.PageSource
	options  extractOptions
}

// clone creates a copy of the Extractor with the same configuration.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		source:   e.source,
		options:  e.options,
	}
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// PageRange restricts extraction to pages start through end (1-indexed,
// inclusive). An end of 0 means the last page of the document. Values
// outside the document are clamped to it.
//
// Example:
//
//	text, err := folio.Open("doc.pdf").PageRange(6, 0).Text()
func (e *Extractor) PageRange(start, end int) *Extractor {
	newExt := e.clone()
	newExt.options.startPage = start
	newExt.options.endPage = end
	return newExt
}

// Columns sets the number of equal-width columns assumed for pages with no
// matching column spec. The default is 3.
func (e *Extractor) Columns(n int) *Extractor {
	newExt := e.clone()
	newExt.options.defaultColumns = n
	return newExt
}

// OddColumns sets the column-box specification applied to odd pages, e.g.
// "0:180,180:360,360:540" or "0%:33.3%,33.3%:66.6%,66.6%:100%". Percentages
// are resolved against each page's own width.
func (e *Extractor) OddColumns(spec string) *Extractor {
	newExt := e.clone()
	newExt.options.oddColumns = spec
	return newExt
}

// EvenColumns sets the column-box specification applied to even pages. See
// OddColumns for the format.
func (e *Extractor) EvenColumns(spec string) *Extractor {
	newExt := e.clone()
	newExt.options.evenColumns = spec
	return newExt
}

// HeaderRatio sets the fraction of each page's height cropped from the top
// before extraction. The default is 0.08.
func (e *Extractor) HeaderRatio(ratio float64) *Extractor {
	newExt := e.clone()
	newExt.options.headerRatio = ratio
	return newExt
}

// FooterRatio sets the fraction of each page's height cropped from the
// bottom before extraction. The default is 0.06.
func (e *Extractor) FooterRatio(ratio float64) *Extractor {
	newExt := e.clone()
	newExt.options.footerRatio = ratio
	return newExt
}

// LineTolerance sets the vertical tolerance, in points, for grouping glyphs
// into lines. The default is 2.0; values below 1.0 are raised to 1.0 during
// extraction.
func (e *Extractor) LineTolerance(tolerance float64) *Extractor {
	newExt := e.clone()
	newExt.options.lineTolerance = tolerance
	return newExt
}

// GapRatio sets the word-boundary threshold relative to the previous
// glyph's width. The default is 0.5.
func (e *Extractor) GapRatio(ratio float64) *Extractor {
	newExt := e.clone()
	newExt.options.gapRatio = ratio
	return newExt
}

// NormalizeLigatures folds ligature glyphs such as "ﬁ" into their component
// characters in the output.
func (e *Extractor) NormalizeLigatures() *Extractor {
	newExt := e.clone()
	newExt.options.normalizeLigatures = true
	return newExt
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Text extracts the configured page range and returns the document text.
func (e *Extractor) Text() (string, error) {
	src := e.source
	if src == nil {
		doc, err := reader.Open(e.filename)
		if err != nil {
			return "", err
		}
		defer doc.Close()
		src = doc
	}

	assembler := extract.NewAssemblerWithOptions(extract.Options{
		StartPage:      e.options.startPage,
		EndPage:        e.options.endPage,
		DefaultColumns: e.options.defaultColumns,
		OddColumns:     e.options.oddColumns,
		EvenColumns:    e.options.evenColumns,
		Page: extract.PageConfig{
			HeaderRatio:        e.options.headerRatio,
			FooterRatio:        e.options.footerRatio,
			LineTolerance:      e.options.lineTolerance,
			GapRatio:           e.options.gapRatio,
			NormalizeLigatures: e.options.normalizeLigatures,
		},
	})

	return assembler.Text(src)
}

// WriteFile extracts the document text and writes it to path as UTF-8. The
// extraction runs fully in memory first; nothing is written when any page
// fails, so a failed run never leaves a partial output file.
func (e *Extractor) WriteFile(path string) error {
	text, err := e.Text()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
