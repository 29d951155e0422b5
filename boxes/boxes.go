package boxes

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ColumnBox is a horizontal extraction range on a page. The vertical crop is
// applied separately by the page extractor, so a box only carries its left
// and right edges.
type ColumnBox struct {
	X0, X1 float64
}

// Width returns the horizontal extent of the box.
func (b ColumnBox) Width() float64 {
	return b.X1 - b.X0
}

// String formats the box the way it appears in error messages.
func (b ColumnBox) String() string {
	return fmt.Sprintf("(%g, %g)", b.X0, b.X1)
}

// ParseSpec converts a specification like "x0:x1,x2:x3,..." into a sorted
// list of column boxes. Endpoints accept points or percentages of width.
// An empty specification yields an empty list; callers typically fall back
// to EqualColumns in that case.
//
// ParseSpec validates each box (x1 must exceed x0) and the set as a whole
// (boxes must be pairwise non-overlapping once sorted by left edge),
// returning *FormatError, *InvalidBoxError, or *OverlapError on failure.
func ParseSpec(spec string, width float64) ([]ColumnBox, error) {
	var cols []ColumnBox
	if strings.TrimSpace(spec) == "" {
		return cols, nil
	}

	for _, token := range strings.Split(spec, ",") {
		if strings.TrimSpace(token) == "" {
			continue
		}

		sep := strings.Index(token, ":")
		if sep < 0 {
			return nil, &FormatError{Token: token, Reason: "missing ':'"}
		}

		x0, err := parseCoord(token[:sep], width)
		if err != nil {
			return nil, &FormatError{Token: token, Reason: err.Error()}
		}
		x1, err := parseCoord(token[sep+1:], width)
		if err != nil {
			return nil, &FormatError{Token: token, Reason: err.Error()}
		}

		if x1 <= x0 {
			return nil, &InvalidBoxError{Token: token, X0: x0, X1: x1}
		}
		cols = append(cols, ColumnBox{X0: x0, X1: x1})
	}

	sort.Slice(cols, func(i, j int) bool {
		return cols[i].X0 < cols[j].X0
	})

	for i := 1; i < len(cols); i++ {
		if cols[i].X0 < cols[i-1].X1 {
			return nil, &OverlapError{Prev: cols[i-1], Next: cols[i]}
		}
	}

	return cols, nil
}

// parseCoord converts a single X endpoint. "120" is 120 points; "33.3%" is
// 0.333 times the reference width.
func parseCoord(token string, width float64) (float64, error) {
	t := strings.TrimSpace(token)
	if strings.HasSuffix(t, "%") {
		val, err := strconv.ParseFloat(strings.TrimSuffix(t, "%"), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid percentage %q", t)
		}
		return val / 100.0 * width, nil
	}

	val, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid coordinate %q", t)
	}
	return val, nil
}

// EqualColumns generates n contiguous equal-width columns covering exactly
// [0, width], in left-to-right order. A non-positive n yields an empty list.
func EqualColumns(width float64, n int) []ColumnBox {
	if n <= 0 {
		return nil
	}

	cols := make([]ColumnBox, 0, n)
	step := width / float64(n)
	for i := 0; i < n; i++ {
		cols = append(cols, ColumnBox{
			X0: float64(i) * step,
			X1: float64(i+1) * step,
		})
	}
	return cols
}
