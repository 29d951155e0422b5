package extract

import (
	"strings"
	"unicode"
)

// CleanLines reduces consecutive blank lines to a single blank line while
// preserving paragraph breaks, trims trailing whitespace from each line,
// and strips leading and trailing blank lines from the whole text. The
// number of non-blank lines is never changed.
func CleanLines(text string) string {
	if text == "" {
		return ""
	}

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	lastBlank := false

	for _, line := range lines {
		line = strings.TrimRightFunc(line, unicode.IsSpace)
		blank := strings.TrimSpace(line) == ""
		if blank && lastBlank {
			continue
		}
		out = append(out, line)
		lastBlank = blank
	}

	return strings.TrimSpace(strings.Join(out, "\n"))
}
