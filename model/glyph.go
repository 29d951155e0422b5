package model

// Glyph represents one rendered character (or ligature) positioned on a
// page. Glyphs are supplied by a PageSource and treated as immutable.
type Glyph struct {
	// Text is the character content. It may hold more than one rune for
	// ligature glyphs such as "ﬁ", and may be empty for glyphs that render
	// nothing.
	Text string

	// X0 and X1 are the left and right edges of the glyph's bounding box.
	X0, X1 float64

	// Top is the vertical position of the glyph (distance from the top of
	// the page).
	Top float64

	// FontName is the name of the font the glyph was rendered with. It may
	// be empty when the source cannot determine it.
	FontName string
}

// Width returns the horizontal extent of the glyph, never negative.
func (g Glyph) Width() float64 {
	if g.X1 <= g.X0 {
		return 0
	}
	return g.X1 - g.X0
}

// Anchor returns the point used to decide which region a glyph belongs to:
// the horizontal center of the glyph at its Top coordinate.
func (g Glyph) Anchor() Point {
	return Point{X: g.X0 + g.Width()/2, Y: g.Top}
}

// Page holds the dimensions and glyphs of a single page. Pages are value
// types scoped to the extraction of that page; nothing retains them after
// the page's text has been produced.
type Page struct {
	// Number is the 1-based page number.
	Number int

	// Width and Height are the page dimensions in points.
	Width, Height float64

	// Glyphs are the positioned characters on the page, in source order.
	Glyphs []Glyph
}

// GlyphsIn returns the glyphs whose anchor point falls inside r.
func (p Page) GlyphsIn(r Rect) []Glyph {
	var inside []Glyph
	for _, g := range p.Glyphs {
		if r.Contains(g.Anchor()) {
			inside = append(inside, g)
		}
	}
	return inside
}

// PageSource supplies pages from an underlying document parser. It is the
// seam between folio and the PDF engine: folio only ever consumes page
// dimensions and positioned glyphs, never raw PDF structure.
type PageSource interface {
	// PageCount returns the total number of pages in the document.
	PageCount() int

	// Page returns the glyphs and dimensions of the given 1-based page.
	Page(number int) (Page, error)
}
