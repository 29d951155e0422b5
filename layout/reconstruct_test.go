package layout

import (
	"strings"
	"testing"
)

func TestLooksBold(t *testing.T) {
	tests := []struct {
		fontName string
		want     bool
	}{
		{"Arial-Bold", true},
		{"ARIAL-BOLD", true},
		{"Helvetica", false},
		{"TimesNewRoman-SemiBold", true},
		{"Futura-Heavy", true},
		{"AvenirNext-DemiBold", true},
		{"Roboto-Black", true},
		{"GillSans-BdCn", true},
		{"", false},
		// Known false positive of the keyword heuristic.
		{"Blackwood", true},
	}

	for _, tt := range tests {
		if got := LooksBold(tt.fontName); got != tt.want {
			t.Errorf("LooksBold(%q) = %v, want %v", tt.fontName, got, tt.want)
		}
	}
}

func TestReconstructor_EmptyLine(t *testing.T) {
	r := NewReconstructor()
	if got := r.Text(nil); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestReconstructor_BoldTransitions(t *testing.T) {
	r := NewReconstructor()

	// Adjacent glyphs (no gaps): bold, regular, bold.
	line := Line{
		makeGlyph("A", 0, 6, 100, "Arial-Bold"),
		makeGlyph("B", 6, 12, 100, "Arial"),
		makeGlyph("C", 12, 18, 100, "Arial-Bold"),
	}

	want := "<bold>A</bold>B<bold>C</bold>"
	if got := r.Text(line); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestReconstructor_ClosesTrailingBold(t *testing.T) {
	r := NewReconstructor()

	line := Line{
		makeGlyph("A", 0, 6, 100, "Arial"),
		makeGlyph("B", 6, 12, 100, "Arial-Bold"),
	}

	got := r.Text(line)
	if !strings.HasSuffix(got, BoldClose) {
		t.Errorf("expected trailing bold run to be closed, got %q", got)
	}
	if strings.Count(got, BoldOpen) != strings.Count(got, BoldClose) {
		t.Errorf("unbalanced bold markers in %q", got)
	}
}

func TestReconstructor_BoldMarkersAlwaysBalanced(t *testing.T) {
	r := NewReconstructor()

	lines := []Line{
		{makeGlyph("A", 0, 6, 100, "Arial-Bold")},
		{
			makeGlyph("A", 0, 6, 100, "Arial-Bold"),
			makeGlyph("B", 6, 12, 100, "Arial-Black"),
			makeGlyph("C", 12, 18, 100, "Arial"),
		},
		{
			makeGlyph("A", 0, 6, 100, "Arial"),
			makeGlyph("B", 6, 12, 100, "Arial-Heavy"),
			makeGlyph("C", 12, 18, 100, "Arial"),
			makeGlyph("D", 18, 24, 100, "Arial-Demi"),
		},
	}

	for i, line := range lines {
		got := r.Text(line)
		opens := strings.Count(got, BoldOpen)
		closes := strings.Count(got, BoldClose)
		if opens != closes {
			t.Errorf("line %d: %d opens vs %d closes in %q", i, opens, closes, got)
		}
		// The flag is binary, so markers never nest: each open is followed
		// by a close before the next open.
		rest := got
		for opens > 0 {
			o := strings.Index(rest, BoldOpen)
			c := strings.Index(rest, BoldClose)
			if o < 0 || c < o {
				t.Errorf("line %d: markers out of order in %q", i, got)
				break
			}
			rest = rest[c+len(BoldClose):]
			opens--
		}
	}
}

func TestReconstructor_GapThreshold(t *testing.T) {
	r := NewReconstructorWithConfig(ReconstructorConfig{GapRatio: 0.5})

	tests := []struct {
		name string
		line Line
		want string
	}{
		{
			// Previous glyph is 6 wide, threshold is 3. Gap of 4 exceeds it.
			name: "gap above threshold",
			line: Line{
				makeGlyph("A", 0, 6, 100, ""),
				makeGlyph("B", 10, 16, 100, ""),
			},
			want: "A B",
		},
		{
			// Gap of exactly 3 does not exceed the threshold.
			name: "gap at threshold",
			line: Line{
				makeGlyph("A", 0, 6, 100, ""),
				makeGlyph("B", 9, 15, 100, ""),
			},
			want: "AB",
		},
		{
			name: "no gap",
			line: Line{
				makeGlyph("A", 0, 6, 100, ""),
				makeGlyph("B", 6, 12, 100, ""),
			},
			want: "AB",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Text(tt.line); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestReconstructor_FallbackWidth(t *testing.T) {
	r := NewReconstructorWithConfig(ReconstructorConfig{GapRatio: 0.5})

	// Zero-width previous glyph: the reference width falls back to 3.0, so
	// the threshold is 1.5 points.
	line := Line{
		makeGlyph("A", 5, 5, 100, ""),
		makeGlyph("B", 7, 13, 100, ""), // gap of 2 > 1.5
	}
	if got := r.Text(line); got != "A B" {
		t.Errorf("expected fallback width to trigger a space, got %q", got)
	}

	line = Line{
		makeGlyph("A", 5, 5, 100, ""),
		makeGlyph("B", 6, 12, 100, ""), // gap of 1 <= 1.5
	}
	if got := r.Text(line); got != "AB" {
		t.Errorf("expected no space below fallback threshold, got %q", got)
	}
}

func TestReconstructor_SkipsEmptyGlyphs(t *testing.T) {
	r := NewReconstructorWithConfig(ReconstructorConfig{GapRatio: 0.5})

	// The empty glyph sits between A and B. Gap tracking must use A, the
	// last glyph that produced output, so no false space appears.
	line := Line{
		makeGlyph("A", 0, 6, 100, ""),
		makeGlyph("", 6, 8, 100, ""),
		makeGlyph("B", 6, 12, 100, ""),
	}
	if got := r.Text(line); got != "AB" {
		t.Errorf("expected empty glyph to be skipped without a false space, got %q", got)
	}

	// An empty glyph must not disturb bold state either.
	line = Line{
		makeGlyph("A", 0, 6, 100, "Arial-Bold"),
		makeGlyph("", 6, 8, 100, "Arial"),
		makeGlyph("B", 6, 12, 100, "Arial-Bold"),
	}
	want := "<bold>AB</bold>"
	if got := r.Text(line); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestReconstructor_SpacePrecedesBoldMarker(t *testing.T) {
	r := NewReconstructorWithConfig(ReconstructorConfig{GapRatio: 0.5})

	// A word gap into a bold run: the space is emitted before the opening
	// marker, keeping the marker attached to the bold word.
	line := Line{
		makeGlyph("A", 0, 6, 100, "Arial"),
		makeGlyph("B", 10, 16, 100, "Arial-Bold"),
	}

	want := "A <bold>B</bold>"
	if got := r.Text(line); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestReconstructor_NormalizeLigatures(t *testing.T) {
	plain := NewReconstructor()
	folded := NewReconstructorWithConfig(ReconstructorConfig{
		GapRatio:           0.5,
		NormalizeLigatures: true,
	})

	line := Line{
		makeGlyph("ﬁ", 0, 8, 100, ""),
		makeGlyph("n", 8, 14, 100, ""),
	}

	if got := plain.Text(line); got != "ﬁn" {
		t.Errorf("expected ligature preserved by default, got %q", got)
	}
	if got := folded.Text(line); got != "fin" {
		t.Errorf("expected ligature folded to %q, got %q", "fin", got)
	}
}
