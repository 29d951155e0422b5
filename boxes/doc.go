// Package boxes parses column-box specifications into validated extraction
// rectangles.
//
// A specification is a comma-separated list of "x0:x1" tokens. Each endpoint
// is either an absolute coordinate in points ("180") or a percentage of a
// reference width ("33.3%"). Parsed boxes are sorted left to right and must
// not overlap.
//
//	cols, err := boxes.ParseSpec("0%:33.3%,33.3%:66.6%,66.6%:100%", pageWidth)
//
// When no specification is supplied, EqualColumns generates N contiguous
// equal-width boxes spanning the page:
//
//	cols := boxes.EqualColumns(pageWidth, 3)
package boxes
