package extract

import (
	"regexp"
	"strings"
)

var (
	placePrefixRe = regexp.MustCompile(`(?i)^(?:location|unit base|office)\s*-\s*`)
	w3wTagRe      = regexp.MustCompile(`(?i)\bw3w:?\s*///[a-z]+\.[a-z]+\.[a-z]+`)
)

// CleanPlace post-processes an extracted origin or destination: strips a
// leading "location -"/"unit base -"/"office -" label prefix, removes an
// embedded what3words tag, and trims leading emphasis markup.
func CleanPlace(s string) string {
	s = strings.TrimSpace(s)
	s = placePrefixRe.ReplaceAllString(s, "")
	s = w3wTagRe.ReplaceAllString(s, "")
	s = strings.TrimLeft(s, emphasisChars+" ")
	return strings.TrimSpace(s)
}
