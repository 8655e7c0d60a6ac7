package extract

import (
	"regexp"
	"strings"
)

const emphasisChars = "*_~`"

var (
	whitespaceRe = regexp.MustCompile(`\s+`)

	// Field labels that must survive surrounding emphasis markup, longest
	// alternatives first so "collection address" wins over "collection".
	labelDecorRe = regexp.MustCompile("(?i)[*_~`]*\\b(collection address|drop off address|drop-off|drop off|collection|vehicles|from|time|to)\\b[*_~`]*\\s*:[*_~`]*")
)

// NormalizeLine prepares one raw line for classification: trims surrounding
// whitespace and emphasis markup, collapses internal whitespace runs, and
// strips emphasis immediately around recognized field labels. An empty
// result means the line should be dropped.
func NormalizeLine(raw string) string {
	s := strings.TrimSpace(raw)
	// Underscore runs are section boundaries, not emphasis; they must
	// survive markup stripping.
	if underscoreRunRe.MatchString(s) {
		return s
	}
	s = strings.Trim(s, emphasisChars)
	s = strings.TrimSpace(s)
	s = whitespaceRe.ReplaceAllString(s, " ")
	s = labelDecorRe.ReplaceAllString(s, "$1:")
	return strings.TrimSpace(s)
}

// splitLines splits an email body into lines, tolerating CRLF endings.
func splitLines(body string) []string {
	return strings.Split(strings.ReplaceAll(body, "\r\n", "\n"), "\n")
}
