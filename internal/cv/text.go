package cv

import (
	"strings"
	"unicode"
)

// spaceClass is the whitespace set used inside patterns: ASCII whitespace,
// every Unicode separator (NBSP, thin space, line/paragraph separators) and
// the BOM that document converters leave behind.
const spaceClass = `\s\p{Z}\x{FEFF}`

// isSpace matches the same set as spaceClass.
func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\uFEFF':
		return true
	}
	return unicode.Is(unicode.Z, r)
}

func trimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}

// CleanLines splits raw document text into trimmed, non-empty lines in
// document order.
func CleanLines(text string) []string {
	if text == "" {
		return []string{}
	}

	raw := strings.Split(strings.ReplaceAll(text, "\r", ""), "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = trimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
