// Package model defines the core data types shared across folio: positioned
// glyphs, pages, rectangles, and the PageSource interface that abstracts the
// underlying PDF parser.
//
// All coordinates are in page points with the origin at the top-left corner:
// X grows rightward, Y (Top) grows downward. This matches the coordinate
// space most glyph-level extractors report and keeps line grouping simple
// (smaller Top means higher on the page).
package model
