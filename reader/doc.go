// Package reader supplies positioned glyphs from PDF files.
//
// It adapts the glyph-level API of github.com/ledongthuc/pdf to folio's
// model.PageSource interface, converting the PDF's bottom-left origin
// coordinates to folio's top-left origin. This is the only package that
// touches PDF structure; everything above it works on model.Glyph values.
package reader
