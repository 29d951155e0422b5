package extract

import (
	"fmt"
	"strings"

	"github.com/tsawler/folio/boxes"
	"github.com/tsawler/folio/logging"
	"github.com/tsawler/folio/model"
)

// Options holds configuration for document assembly.
type Options struct {
	// StartPage is the first page to extract (1-based, inclusive). Values
	// below 1 are clamped to 1.
	StartPage int

	// EndPage is the last page to extract (1-based, inclusive). Zero or
	// negative means the last page of the document; values beyond the
	// document are clamped to it.
	EndPage int

	// DefaultColumns is the number of equal-width columns generated for
	// pages with no matching column spec. Default: 3.
	DefaultColumns int

	// OddColumns and EvenColumns are column-box specifications (see the
	// boxes package) applied to odd and even pages respectively. An empty
	// spec falls back to DefaultColumns equal columns.
	OddColumns  string
	EvenColumns string

	// XTolerance is accepted for interface compatibility with the CLI but
	// is not consumed: the word-gap heuristic derives its threshold from
	// the previous glyph's own width (see PageConfig.GapRatio).
	XTolerance float64

	// Page configures per-page extraction.
	Page PageConfig
}

// DefaultOptions returns sensible default options covering the whole
// document.
func DefaultOptions() Options {
	return Options{
		StartPage:      1,
		EndPage:        0,
		DefaultColumns: 3,
		Page:           DefaultPageConfig(),
	}
}

// Assembler extracts a page range from a glyph source and concatenates the
// page texts into the final document text.
type Assembler struct {
	opts Options
}

// NewAssembler creates an assembler with default options.
func NewAssembler() *Assembler {
	return &Assembler{
		opts: DefaultOptions(),
	}
}

// NewAssemblerWithOptions creates an assembler with custom options.
func NewAssemblerWithOptions(opts Options) *Assembler {
	return &Assembler{
		opts: opts,
	}
}

// Text extracts the configured page range from src. Pages are processed
// strictly in increasing order, each completed before the next begins.
// Non-empty page texts are joined with a blank line; pages yielding nothing
// contribute nothing.
//
// Column boxes are re-resolved against each page's own width, since widths
// may vary across a document. A malformed column spec aborts the whole run.
func (a *Assembler) Text(src model.PageSource) (string, error) {
	total := src.PageCount()

	start := a.opts.StartPage
	if start < 1 {
		start = 1
	}
	end := a.opts.EndPage
	if end <= 0 || end > total {
		end = total
	}
	if end < start {
		end = start
	}
	if start > total {
		// The requested range lies entirely beyond the document.
		return "", nil
	}

	extractor := NewPageExtractorWithConfig(a.opts.Page)
	log := logging.Logger()

	var pageTexts []string
	for n := start; n <= end; n++ {
		page, err := src.Page(n)
		if err != nil {
			return "", fmt.Errorf("reading page %d: %w", n, err)
		}

		cols, err := a.columnsFor(n, page.Width)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", n, err)
		}

		text := extractor.Text(page, cols)
		log.Debug("extracted page",
			"page", n,
			"columns", len(cols),
			"glyphs", len(page.Glyphs),
			"chars", len(text),
		)

		if text != "" {
			pageTexts = append(pageTexts, text)
		}
	}

	return strings.Join(pageTexts, "\n\n"), nil
}

// columnsFor resolves the column boxes for a page from its parity. A parity
// spec that is empty, or that parses to no boxes, falls back to the default
// equal-width columns.
func (a *Assembler) columnsFor(pageNum int, width float64) ([]boxes.ColumnBox, error) {
	spec := a.opts.EvenColumns
	if pageNum%2 == 1 {
		spec = a.opts.OddColumns
	}

	if spec != "" {
		cols, err := boxes.ParseSpec(spec, width)
		if err != nil {
			return nil, err
		}
		if len(cols) > 0 {
			return cols, nil
		}
	}

	return boxes.EqualColumns(width, a.opts.DefaultColumns), nil
}
