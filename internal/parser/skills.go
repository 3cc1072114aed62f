package parser

import (
	"sort"
	"strings"
)

// maxSweepTokenLen caps the length of a free-form token harvested from an
// explicit skills section; longer fragments are prose, not skills.
const maxSweepTokenLen = 50

var skillDelimiters = func(r rune) bool {
	switch r {
	case ',', ';', '•', '●', '○', '|', '\n':
		return true
	}
	return false
}

// MatchSkills returns the skills detected in the text, in order of first
// appearance, using the vocabulary's canonical display casing. Matching is
// case-insensitive and word-boundary-safe, and longer phrases claim their
// span first so "JavaScript" never also yields "Java" and "Spring Boot"
// never also yields "Spring". Tokens found in an explicit skills section
// but absent from the vocabulary are appended after vocabulary matches.
// The result is de-duplicated by case-insensitive identity.
func MatchSkills(text, skillsSection string, vocab *Vocabulary) []string {
	lower := strings.ToLower(text)
	claimed := make([]bool, len(lower))

	type hit struct {
		pos  int
		name string
	}
	var hits []hit

	for _, skill := range skillsLongestFirst(vocab.Skills) {
		needle := strings.ToLower(skill)
		first := -1
		for from := 0; from < len(lower); {
			i := strings.Index(lower[from:], needle)
			if i < 0 {
				break
			}
			start := from + i
			end := start + len(needle)
			from = start + 1

			if !wordBounded(lower, start, end) || spanClaimed(claimed, start, end) {
				continue
			}
			// Claim every occurrence so shorter entries cannot fire inside.
			claimSpan(claimed, start, end)
			if first < 0 {
				first = start
			}
		}
		if first >= 0 {
			hits = append(hits, hit{pos: first, name: skill})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	skills := make([]string, 0, len(hits))
	seen := make(map[string]bool, len(hits))
	for _, h := range hits {
		key := strings.ToLower(h.name)
		if seen[key] {
			continue
		}
		seen[key] = true
		skills = append(skills, h.name)
	}

	// Sweep the explicit skills section for entries the vocabulary lacks.
	for _, token := range strings.FieldsFunc(skillsSection, skillDelimiters) {
		cleaned := strings.TrimSpace(strings.TrimLeft(token, "•-*●○ \t"))
		if cleaned == "" || len(cleaned) >= maxSweepTokenLen {
			continue
		}
		key := strings.ToLower(cleaned)
		if seen[key] {
			continue
		}
		seen[key] = true
		skills = append(skills, cleaned)
	}

	return skills
}

// skillsLongestFirst returns the vocabulary ordered by phrase length,
// longest first, so multi-word and longer entries claim text spans before
// their shorter prefixes or substrings can.
func skillsLongestFirst(skills []string) []string {
	ordered := make([]string, len(skills))
	copy(ordered, skills)
	sort.SliceStable(ordered, func(i, j int) bool { return len(ordered[i]) > len(ordered[j]) })
	return ordered
}

// wordBounded reports whether s[start:end] is not embedded in a larger
// alphanumeric token. Punctuation-bearing entries like "Node.js" or "C++"
// rule out plain \b regex boundaries.
func wordBounded(s string, start, end int) bool {
	if start > 0 && isWordByte(s[start-1]) {
		return false
	}
	if end < len(s) && isWordByte(s[end]) {
		return false
	}
	return true
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

func spanClaimed(claimed []bool, start, end int) bool {
	for i := start; i < end; i++ {
		if claimed[i] {
			return true
		}
	}
	return false
}

func claimSpan(claimed []bool, start, end int) {
	for i := start; i < end; i++ {
		claimed[i] = true
	}
}
