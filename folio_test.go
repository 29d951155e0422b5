package folio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tsawler/folio/model"
	"github.com/tsawler/folio/reader"
)

// stubSource is an in-memory PageSource for exercising the fluent API.
type stubSource struct {
	pages []model.Page
}

func (s *stubSource) PageCount() int {
	return len(s.pages)
}

func (s *stubSource) Page(number int) (model.Page, error) {
	return s.pages[number-1], nil
}

// twoColumnPage builds a 200x200 page with one word per column.
func twoColumnPage(number int, left, right string) model.Page {
	page := model.Page{Number: number, Width: 200, Height: 200}
	x := 10.0
	for _, r := range left {
		page.Glyphs = append(page.Glyphs, model.Glyph{Text: string(r), X0: x, X1: x + 6, Top: 100})
		x += 6
	}
	x = 110.0
	for _, r := range right {
		page.Glyphs = append(page.Glyphs, model.Glyph{Text: string(r), X0: x, X1: x + 6, Top: 100})
		x += 6
	}
	return page
}

func TestExtractor_TextFromSource(t *testing.T) {
	src := &stubSource{pages: []model.Page{
		twoColumnPage(1, "alpha", "beta"),
		twoColumnPage(2, "gamma", "delta"),
	}}

	text, err := FromSource(src).Columns(2).Text()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "alpha\n\nbeta\n\ngamma\n\ndelta"
	if text != want {
		t.Errorf("expected %q, got %q", want, text)
	}
}

func TestExtractor_PageRange(t *testing.T) {
	src := &stubSource{pages: []model.Page{
		twoColumnPage(1, "one", ""),
		twoColumnPage(2, "two", ""),
		twoColumnPage(3, "three", ""),
	}}

	text, err := FromSource(src).Columns(1).PageRange(2, 0).Text()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "two\n\nthree" {
		t.Errorf("expected pages 2-3, got %q", text)
	}
}

func TestExtractor_ConfigurationDoesNotMutate(t *testing.T) {
	src := &stubSource{pages: []model.Page{
		twoColumnPage(1, "left", "right"),
	}}

	base := FromSource(src).Columns(2)
	narrowed := base.OddColumns("0:100")

	baseText, err := base.Text()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	narrowedText, err := narrowed.Text()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if baseText != "left\n\nright" {
		t.Errorf("base extractor changed by derived configuration: %q", baseText)
	}
	if narrowedText != "left" {
		t.Errorf("expected derived extractor to see only the left column, got %q", narrowedText)
	}
}

func TestExtractor_WriteFile(t *testing.T) {
	src := &stubSource{pages: []model.Page{
		twoColumnPage(1, "hello", "world"),
	}}

	path := filepath.Join(t.TempDir(), "out.txt")
	if err := FromSource(src).Columns(2).WriteFile(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if string(data) != "hello\n\nworld" {
		t.Errorf("expected file content %q, got %q", "hello\n\nworld", string(data))
	}
}

func TestExtractor_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.pdf")

	_, err := Open(path).Text()
	if err == nil {
		t.Fatal("expected error for missing input")
	}

	var notFound *reader.NotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("expected *reader.NotFoundError, got %T: %v", err, err)
	}
}

func TestExtractor_WriteFileLeavesNoPartialOutput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.txt")

	err := Open(filepath.Join(dir, "missing.pdf")).WriteFile(out)
	if err == nil {
		t.Fatal("expected error for missing input")
	}

	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Error("expected no output file after a failed run")
	}
}
