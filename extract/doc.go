// Package extract assembles page and document text from positioned glyphs.
//
// The [PageExtractor] applies the header/footer crop, walks the page's
// column boxes left to right, and produces the page's text with lines
// grouped and reconstructed by the layout package. The [Assembler] iterates
// a page range, resolving the column-box set for each page from its parity,
// and joins the non-empty page texts.
//
// Both components are stateless: each page is processed independently and
// nothing survives past the final output string.
package extract
