package parser

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// Caps on how many entries a single section may yield. Anything past these
// counts is almost always segmentation noise, not real history.
const (
	maxExperienceEntries = 10
	maxEducationEntries  = 5
)

var bulletPrefixes = []string{"•", "-", "*", "●", "○"}

var atSeparatorRe = regexp.MustCompile(`(?i)\s+at\s+|\s*@\s*`)

// jobTitleIndicators mark a line as a plausible position title, used as an
// entry boundary when no date range is present on the line.
var jobTitleIndicators = []string{
	"engineer", "developer", "manager", "director", "analyst",
	"consultant", "specialist", "coordinator", "administrator",
	"architect", "designer", "lead", "senior", "junior", "intern",
	"associate", "executive", "officer", "president", "vp",
}

// ParseExperience splits an experience region into discrete work entries.
// A new entry starts at a line carrying a date range or a plausible job
// title; when the region has neither signal anywhere, blank-line-delimited
// paragraphs are used instead. Entries that yield no recognizable fields
// are still emitted; downstream scoring counts entries, not completeness.
func ParseExperience(region string) []types.WorkEntry {
	if strings.TrimSpace(region) == "" {
		return nil
	}

	hasSignal := anyLineHasDateRange(strings.Split(region, "\n"))
	groups := groupEntryLines(region, hasSignal, func(line string, current []string) bool {
		if _, bulleted := stripBullet(line); bulleted {
			// Highlights stay attached to their entry even when they
			// mention a role word.
			return false
		}
		if !anyLineHasDateRange(current) {
			// The current entry has not seen its date line yet; header
			// candidates and the date line itself still belong to it.
			return false
		}
		if _, ok := FindDateRange(line); ok {
			return true
		}
		return looksLikeJobTitle(line)
	})

	entries := make([]types.WorkEntry, 0, len(groups))
	for _, lines := range groups {
		entries = append(entries, buildWorkEntry(lines))
		if len(entries) == maxExperienceEntries {
			break
		}
	}
	return entries
}

func anyLineHasDateRange(lines []string) bool {
	for _, line := range lines {
		if _, ok := FindDateRange(line); ok {
			return true
		}
	}
	return false
}

func anyLineHasDegree(lines []string, vocab *Vocabulary) bool {
	for _, line := range lines {
		if matchDegree(line, vocab) != "" {
			return true
		}
	}
	return false
}

// ParseEducation splits an education region into discrete entries. Degree
// keyword lines and date ranges both act as boundaries.
func ParseEducation(region string, vocab *Vocabulary) []types.EduEntry {
	if strings.TrimSpace(region) == "" {
		return nil
	}

	lines := strings.Split(region, "\n")
	hasSignal := anyLineHasDateRange(lines) || anyLineHasDegree(lines, vocab)
	groups := groupEntryLines(region, hasSignal, func(line string, current []string) bool {
		if matchDegree(line, vocab) != "" {
			return anyLineHasDegree(current, vocab)
		}
		if _, ok := FindDateRange(line); ok {
			return anyLineHasDateRange(current)
		}
		return false
	})

	entries := make([]types.EduEntry, 0, len(groups))
	for _, lines := range groups {
		entries = append(entries, buildEduEntry(lines, vocab))
		if len(entries) == maxEducationEntries {
			break
		}
	}
	return entries
}

// ScanEducation extracts education entries from text without a labeled
// education section. Entries open on degree-keyword lines only, and
// anything that never acquired a degree is dropped: without a region
// boundary every other paragraph of the document is noise.
func ScanEducation(text string, vocab *Vocabulary) []types.EduEntry {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	groups := groupEntryLines(text, true, func(line string, current []string) bool {
		if matchDegree(line, vocab) == "" {
			return false
		}
		return anyLineHasDegree(current, vocab)
	})

	var entries []types.EduEntry
	for _, lines := range groups {
		entry := buildEduEntry(lines, vocab)
		if entry.Degree == "" {
			continue
		}
		entries = append(entries, entry)
		if len(entries) == maxEducationEntries {
			break
		}
	}
	return entries
}

// groupEntryLines groups the region's lines into entries. When the region
// carries a structural signal (date ranges, degree keywords), isBoundary
// decides where a new entry starts, with access to the lines accumulated
// for the current entry. Without any signal, blank-line-delimited
// paragraphs are the fallback boundary.
func groupEntryLines(region string, hasSignal bool, isBoundary func(line string, current []string) bool) [][]string {
	lines := strings.Split(region, "\n")

	var groups [][]string
	var current []string

	flush := func() {
		if len(current) > 0 {
			groups = append(groups, current)
			current = nil
		}
	}

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			if !hasSignal {
				flush()
			}
			continue
		}
		if hasSignal && len(current) > 0 && isBoundary(line, current) {
			flush()
		}
		current = append(current, line)
	}
	flush()

	return groups
}

// buildWorkEntry extracts fields from one entry's lines. The date line is
// parsed for the range; lines before it (plus the date line's remainder)
// are title/company candidates; bulleted lines become highlights and the
// rest concatenates into the description.
func buildWorkEntry(lines []string) types.WorkEntry {
	var entry types.WorkEntry

	dateLine := -1
	for i, line := range lines {
		if dr, ok := FindDateRange(line); ok {
			entry.StartDate = dr.Start
			entry.EndDate = dr.End
			dateLine = i
			break
		}
	}

	var headers []string
	var body []string
	for i, line := range lines {
		switch {
		case i == dateLine:
			if rest := stripDateRange(line); rest != "" {
				headers = append(headers, strings.Trim(rest, " ,|-"))
			}
		case dateLine >= 0 && i < dateLine:
			headers = append(headers, line)
		case i == 0:
			// No date line: the leading line is the header candidate.
			headers = append(headers, line)
		default:
			body = append(body, line)
		}
	}

	if len(headers) > 0 {
		entry.Title, entry.Company = splitTitleCompany(headers[0])
		if entry.Company == "" && len(headers) > 1 {
			entry.Company = headers[1]
		}
	}

	for _, line := range body {
		if highlight, ok := stripBullet(line); ok {
			if highlight != "" {
				entry.Highlights = append(entry.Highlights, highlight)
			}
			continue
		}
		if entry.Description == "" {
			entry.Description = line
		} else {
			entry.Description += " " + line
		}
	}

	return entry
}

// splitTitleCompany splits a header line into title and company using the
// first separator present: "at"/"@", then pipe, then comma. Reversed
// "Company, Title" orderings are a known limitation of this heuristic and
// are not corrected.
func splitTitleCompany(line string) (title, company string) {
	if loc := atSeparatorRe.FindStringIndex(line); loc != nil {
		return strings.TrimSpace(line[:loc[0]]), strings.TrimSpace(line[loc[1]:])
	}
	for _, sep := range []string{"|", ","} {
		if idx := strings.Index(line, sep); idx >= 0 {
			return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+len(sep):])
		}
	}
	return strings.TrimSpace(line), ""
}

// buildEduEntry extracts degree, institution, field of study, dates and
// GPA from one education entry's lines.
func buildEduEntry(lines []string, vocab *Vocabulary) types.EduEntry {
	var entry types.EduEntry

	for _, line := range lines {
		if entry.Degree == "" {
			entry.Degree = matchDegree(line, vocab)
		}
		if entry.StartDate == "" && entry.EndDate == "" {
			if dr, ok := FindDateRange(line); ok {
				entry.StartDate = dr.Start
				entry.EndDate = dr.End
			}
		}
		if entry.FieldOfStudy == "" {
			entry.FieldOfStudy = matchFieldOfStudy(line)
		}
		if entry.GPA == "" {
			entry.GPA = findGPA(line)
		}
	}

	entry.Institution = findInstitution(lines, vocab)

	if entry.EndDate == "" {
		for _, line := range lines {
			if year := findYear(line); year != "" {
				entry.EndDate = year
				break
			}
		}
	}

	return entry
}

// matchDegree returns the first degree keyword phrase found in a line.
func matchDegree(line string, vocab *Vocabulary) string {
	for _, re := range vocab.DegreePatterns {
		if m := re.FindString(line); m != "" {
			return m
		}
	}
	return ""
}

var fieldOfStudyRe = regexp.MustCompile(`(?i)\bin\s+([A-Za-z][A-Za-z .&/]*?)(?:\s*[,|]|$)`)

// matchFieldOfStudy extracts the study field following "in" on a degree
// line ("Master of Science in Computer Science" yields "Computer Science").
func matchFieldOfStudy(line string) string {
	m := fieldOfStudyRe.FindStringSubmatch(line)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// findInstitution looks for the institution name: first a comma or pipe
// separated part of a degree line that carries no degree keyword and no
// digits, then a standalone non-degree line.
func findInstitution(lines []string, vocab *Vocabulary) string {
	for _, line := range lines {
		if matchDegree(line, vocab) == "" {
			continue
		}
		for _, part := range strings.FieldsFunc(line, func(r rune) bool { return r == ',' || r == '|' }) {
			part = strings.TrimSpace(part)
			if part == "" || matchDegree(part, vocab) != "" || strings.ContainsAny(part, "0123456789") {
				continue
			}
			if strings.HasPrefix(strings.ToLower(part), "in ") {
				continue
			}
			return part
		}
	}

	for _, line := range lines {
		if matchDegree(line, vocab) != "" {
			continue
		}
		if _, ok := FindDateRange(line); ok {
			continue
		}
		if _, ok := stripBullet(line); ok {
			continue
		}
		if line != "" && !strings.ContainsAny(line, "0123456789") {
			return line
		}
	}

	return ""
}

// stripBullet removes a leading bullet marker, reporting whether the line
// was bulleted.
func stripBullet(line string) (string, bool) {
	for _, prefix := range bulletPrefixes {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(strings.TrimLeft(line, "•-*●○ \t")), true
		}
	}
	return line, false
}

// looksLikeJobTitle reports whether a line reads like a position title.
// Indicators match whole words only; "internal" must not fire on "intern".
func looksLikeJobTitle(line string) bool {
	for _, word := range strings.Fields(strings.ToLower(line)) {
		word = strings.Trim(word, ".,;:()|")
		for _, indicator := range jobTitleIndicators {
			if word == indicator {
				return true
			}
		}
	}
	return false
}
