package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	weekdayPat = `(?:mon(?:day)?|tue(?:s(?:day)?)?|wed(?:nesday)?|thu(?:r(?:s(?:day)?)?)?|fri(?:day)?|sat(?:urday)?|sun(?:day)?)`
	monthPat   = `(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)`
)

var (
	headerFieldRe   = regexp.MustCompile(`(?i)^(subject|cc|bcc):`)
	forwardedRe     = regexp.MustCompile(`(?i)forwarded message`)
	dashRunRe       = regexp.MustCompile(`^-{3,}$`)
	urlRe           = regexp.MustCompile(`https?://`)
	addressLineRe   = regexp.MustCompile(`(?i)^(from|to):.*@`)
	underscoreRunRe = regexp.MustCompile(`_{5,}`)

	weekdayDateRe = regexp.MustCompile(`(?i)\b` + weekdayPat + `\b.*?\b(\d{1,2})(?:st|nd|rd|th)?\b.*?\b` + monthPat + `\b`)
	bareDateRe    = regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)?\s+(?:of\s+)?\b` + monthPat + `\b`)

	time24Re = regexp.MustCompile(`\b(\d{1,2})[:. ]([0-5]\d)\b`)
	time12Re = regexp.MustCompile(`(?i)\b(\d{1,2})(?:[:.]([0-5]\d))?\s*(am|pm)\b`)

	fromLabelRe    = regexp.MustCompile(`(?i)^from:\s*(.+)$`)
	toLabelRe      = regexp.MustCompile(`(?i)^to:\s*(.+)$`)
	collectionRe   = regexp.MustCompile(`(?i)^collection(?:\s+address)?\b:?\s*(.*)$`)
	dropOffRe      = regexp.MustCompile(`(?i)^drop[ -]?off(?:\s+address)?\b:?\s*(.*)$`)
	leadingTimeRe  = regexp.MustCompile(`^\d{1,2}[:.]\d{2}\s*-\s*`)
	routePhraseRe  = regexp.MustCompile(`(?i)\b(?:moved\s+)?from\s+(.+?)\s+to\s+(.+?)(?:\s+(?:at|on|by|for)\b|[,.;:!?]|$)`)
)

var monthNumbers = map[string]string{
	"jan": "01", "feb": "02", "mar": "03", "apr": "04",
	"may": "05", "jun": "06", "jul": "07", "aug": "08",
	"sep": "09", "oct": "10", "nov": "11", "dec": "12",
}

// isIgnorable reports whether the line is email plumbing rather than
// content: header fields, quoted-reply markers, reply separators, lines
// carrying URLs, and From/To lines that are addresses rather than places.
func isIgnorable(line string) bool {
	return headerFieldRe.MatchString(line) ||
		forwardedRe.MatchString(line) ||
		dashRunRe.MatchString(line) ||
		urlRe.MatchString(line) ||
		addressLineRe.MatchString(line)
}

// isBoundary reports whether the line separates sections of the email:
// a literal "--" or a run of five or more underscores.
func isBoundary(line string) bool {
	return line == "--" || underscoreRunRe.MatchString(line)
}

// monthNumber maps a full or abbreviated month name to its two-digit code.
func monthNumber(name string) (string, bool) {
	if len(name) < 3 {
		return "", false
	}
	n, ok := monthNumbers[strings.ToLower(name)[:3]]
	return n, ok
}

func formatDate(dayText, monthText string) (string, bool) {
	day, err := strconv.Atoi(dayText)
	if err != nil || day < 1 || day > 31 {
		return "", false
	}
	month, ok := monthNumber(monthText)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%02d/%s/", day, month), true
}

// matchWeekdayHeader recognizes a weekday name followed by a day-of-month
// and a month name, e.g. "Wed 5th Mar 09:00". This is the strongest date
// signal and marks the start of a new day section.
func matchWeekdayHeader(line string) (string, bool) {
	m := weekdayDateRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return formatDate(m[1], m[2])
}

// matchBareDate recognizes a day-of-month plus month name without weekday
// framing, e.g. "3rd Feb" mid-paragraph.
func matchBareDate(line string) (string, bool) {
	m := bareDateRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return formatDate(m[1], m[2])
}

// findTime extracts the first time expression from the text, normalized to
// zero-padded 24-hour "HH:MM". The 24-hour form ("14:30", "9.05", "10 15")
// is tried before the 12-hour am/pm form.
func findTime(text string) (string, bool) {
	if m := time24Re.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1])
		if hour <= 23 {
			return fmt.Sprintf("%02d:%s", hour, m[2]), true
		}
	}
	if m := time12Re.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1])
		if hour >= 1 && hour <= 12 {
			minute := m[2]
			if minute == "" {
				minute = "00"
			}
			meridiem := strings.ToLower(m[3])
			if meridiem == "pm" && hour != 12 {
				hour += 12
			}
			if meridiem == "am" && hour == 12 {
				hour = 0
			}
			return fmt.Sprintf("%02d:%s", hour, minute), true
		}
	}
	return "", false
}

// matchLabeledPlace matches a "From:"/"To:" style labeled place line and
// returns the label's remainder text.
func matchLabeledPlace(re *regexp.Regexp, line string) (string, bool) {
	m := re.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// matchAddressField matches a Collection/Drop-off labeled line, returning
// an embedded time (if any) and the place text with any leading
// "HH:MM - " fragment stripped.
func matchAddressField(re *regexp.Regexp, line string) (timeText, place string, ok bool) {
	m := re.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	rest := strings.TrimSpace(m[1])
	timeText, _ = findTime(rest)
	place = strings.TrimSpace(leadingTimeRe.ReplaceAllString(rest, ""))
	return timeText, place, true
}

// matchRoutePhrase recognizes an inline natural-language route, e.g.
// "moved from Depot A to Site B at 9am". Origin and destination terminate
// at a following at/on/by/for keyword or punctuation.
func matchRoutePhrase(line string) (origin, destination string, ok bool) {
	m := routePhraseRe.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), true
}
