package reader

import (
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/folio/model"
)

// NotFoundError reports an input document path that does not exist.
type NotFoundError struct {
	// Path is the missing file path.
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("PDF not found: %s", e.Path)
}

// Document is a PDF file opened for glyph extraction. It implements
// model.PageSource.
type Document struct {
	file   *os.File
	reader *pdf.Reader
}

// Open opens a PDF file for extraction. The returned Document must be
// closed when done. A missing file yields a *NotFoundError.
func Open(path string) (*Document, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	file, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return &Document{file: file, reader: r}, nil
}

// Close releases the underlying file. It is safe to call Close multiple
// times.
func (d *Document) Close() error {
	if d.file == nil {
		return nil
	}
	err := d.file.Close()
	d.file = nil
	return err
}

// PageCount returns the total number of pages in the document.
func (d *Document) PageCount() int {
	return d.reader.NumPage()
}

// Page returns the glyphs and dimensions of the given 1-based page. Pages
// that cannot be resolved (for example, null page objects in a damaged
// document) come back empty rather than failing the run.
func (d *Document) Page(number int) (model.Page, error) {
	p := d.reader.Page(number)
	if p.V.IsNull() {
		return model.Page{Number: number}, nil
	}

	width, height := pageSize(p.V)

	content := p.Content()
	glyphs := make([]model.Glyph, 0, len(content.Text))
	for _, t := range content.Text {
		glyphs = append(glyphs, model.Glyph{
			Text:     t.S,
			X0:       t.X,
			X1:       t.X + t.W,
			Top:      height - t.Y,
			FontName: t.Font,
		})
	}

	return model.Page{
		Number: number,
		Width:  width,
		Height: height,
		Glyphs: glyphs,
	}, nil
}

// pageSize resolves a page's MediaBox, walking up the page tree for
// inherited boxes, and returns its width and height.
func pageSize(v pdf.Value) (width, height float64) {
	box := mediaBox(v)
	if box.IsNull() || box.Len() < 4 {
		return 0, 0
	}

	x0 := box.Index(0).Float64()
	y0 := box.Index(1).Float64()
	x1 := box.Index(2).Float64()
	y1 := box.Index(3).Float64()

	return x1 - x0, y1 - y0
}

// mediaBox finds the MediaBox for a page object, checking ancestors when
// the page inherits it from the page tree.
func mediaBox(v pdf.Value) pdf.Value {
	for !v.IsNull() {
		if box := v.Key("MediaBox"); !box.IsNull() {
			return box
		}
		v = v.Key("Parent")
	}
	return pdf.Value{}
}
