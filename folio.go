// Package folio provides a fluent API for converting multi-column PDF
// documents into plain text with column-aware reading order.
//
// Basic usage:
//
//	text, err := folio.Open("document.pdf").Text()
//	if err != nil {
//	    // handle error
//	}
//
// With options:
//
//	err := folio.Open("thesaurus.pdf").
//	    PageRange(6, 0). // page 6 to the end
//	    OddColumns("0%:35.1%,35.1%:63.7%,63.7%:100%").
//	    EvenColumns("0%:37.9%,37.9%:66.4%,66.4%:100%").
//	    HeaderRatio(0.08).
//	    FooterRatio(0.06).
//	    WriteFile("thesaurus.txt")
//
// Bold runs are wrapped in literal <bold> and </bold> markers. Columns
// within a page and pages within the document are separated by blank lines.
//
// For glyph sources other than PDF files, implement model.PageSource and
// use FromSource.
package folio

import (
	"github.com/tsawler/folio/model"
)

// Open prepares a PDF file for extraction and returns an Extractor for
// fluent configuration. The file is not touched until a terminal operation
// (Text or WriteFile) runs.
//
// Example:
//
//	text, err := folio.Open("document.pdf").Columns(3).Text()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromSource creates an Extractor over an already-open glyph source. The
// caller retains ownership of the source and is responsible for closing it
// if it needs closing.
//
// Example:
//
//	doc, err := reader.Open("document.pdf")
//	if err != nil {
//	    // handle error
//	}
//	defer doc.Close()
//	text, err := folio.FromSource(doc).Text()
func FromSource(src model.PageSource) *Extractor {
	return &Extractor{
		source:  src,
		options: defaultOptions(),
	}
}
