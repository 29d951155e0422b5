package boxes

import "fmt"

// FormatError reports a column-spec token that could not be parsed, either
// because it is missing the ':' separator or because an endpoint is not a
// number.
type FormatError struct {
	// Token is the offending spec token.
	Token string

	// Reason describes what was wrong with the token.
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid column spec %q: %s", e.Token, e.Reason)
}

// InvalidBoxError reports a parsed box whose right edge does not lie to the
// right of its left edge.
type InvalidBoxError struct {
	// Token is the spec token the box was parsed from.
	Token string

	// X0 and X1 are the computed coordinates.
	X0, X1 float64
}

func (e *InvalidBoxError) Error() string {
	return fmt.Sprintf("column spec %q produces box with x1 <= x0: (%g, %g)", e.Token, e.X0, e.X1)
}

// OverlapError reports two boxes in the same specification that overlap
// after sorting by left edge.
type OverlapError struct {
	// Prev and Next are the two offending boxes, in left-to-right order.
	Prev, Next ColumnBox
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("column boxes overlap or are not ordered: %v vs %v", e.Prev, e.Next)
}
