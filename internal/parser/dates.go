package parser

import (
	"regexp"
	"strings"
)

// dateToken matches a single date-like token: "01/2020", "Jan 2020",
// "January 2020", or a bare year.
const dateToken = `(?:\d{1,2}/\d{4}|[A-Za-z]{3,9}\.?\s+\d{4}|\d{4})`

// dateRangeRe matches a pair of date tokens separated by a dash, en/em
// dash, or "to". The closing token may also be an open-ended sentinel.
var dateRangeRe = regexp.MustCompile(
	`(?i)(` + dateToken + `)\s*(?:-|–|—|to)\s*(` + dateToken + `|present|current)`)

var yearRe = regexp.MustCompile(`\b(19|20)\d{2}\b`)

var gpaRe = regexp.MustCompile(`(?i)\bgpa[:\s]*([0-4](?:\.\d{1,2})?)`)

// DateRange holds the raw start and end tokens of a detected date range.
// Tokens are stored verbatim as they appeared in the source; "Present" and
// "Current" are kept as-is rather than resolved to a calendar value.
type DateRange struct {
	Start string
	End   string
}

// Open reports whether the range has an open-ended sentinel end token.
func (d DateRange) Open() bool {
	return isOpenEnded(d.End)
}

// FindDateRange returns the first date range in a line, if any.
func FindDateRange(line string) (DateRange, bool) {
	m := dateRangeRe.FindStringSubmatch(line)
	if m == nil {
		return DateRange{}, false
	}
	return DateRange{
		Start: strings.TrimSpace(m[1]),
		End:   strings.TrimSpace(m[2]),
	}, true
}

// stripDateRange removes the first date range from a line so the remainder
// can be inspected for title/company text.
func stripDateRange(line string) string {
	return strings.TrimSpace(dateRangeRe.ReplaceAllString(line, ""))
}

func isOpenEnded(token string) bool {
	return strings.EqualFold(token, "present") || strings.EqualFold(token, "current")
}

// findYear returns the first plausible four-digit year in a line.
func findYear(line string) string {
	return yearRe.FindString(line)
}

// findGPA returns the GPA value following a "GPA" marker, if present.
func findGPA(line string) string {
	m := gpaRe.FindStringSubmatch(line)
	if m == nil {
		return ""
	}
	return m[1]
}
