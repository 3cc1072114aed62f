package parser

import "strings"

// maxHeadingLen is the longest line still considered a plausible section
// heading. Real headings are short; prose lines that merely mention a
// section word must not open a region.
const maxHeadingLen = 60

// SegmentSections splits raw resume text into labeled regions. The result
// maps a section key (experience, education, skills, summary,
// certifications, languages) to the text between that section's heading
// and the next recognized heading. Sections without a matching heading are
// absent from the map; empty regions are treated as absent too.
//
// When the same section heading appears more than once, the first
// occurrence wins. A heading line matching synonyms for two keys resolves
// by the vocabulary's priority order.
func SegmentSections(text string, vocab *Vocabulary) map[string]string {
	lines := strings.Split(text, "\n")

	type boundary struct {
		key  string
		line int
	}
	var boundaries []boundary
	for i, line := range lines {
		if key, ok := matchHeading(line, vocab); ok {
			boundaries = append(boundaries, boundary{key: key, line: i})
		}
	}

	sections := make(map[string]string, len(boundaries))
	for i, b := range boundaries {
		if _, seen := sections[b.key]; seen {
			continue
		}

		start := b.line + 1
		end := len(lines)
		if i+1 < len(boundaries) {
			end = boundaries[i+1].line
		}

		region := strings.TrimSpace(strings.Join(lines[start:end], "\n"))
		if region != "" {
			sections[b.key] = region
		}
	}

	return sections
}

// matchHeading reports whether a line is a section heading and which
// section key it opens. The synonym must constitute the entire line modulo
// surrounding whitespace and an optional trailing colon; a mid-sentence
// mention of a section word is not a heading.
func matchHeading(line string, vocab *Vocabulary) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len(trimmed) > maxHeadingLen {
		return "", false
	}

	trimmed = strings.TrimSuffix(trimmed, ":")
	trimmed = strings.TrimSpace(trimmed)
	lower := strings.ToLower(trimmed)

	for _, key := range vocab.SectionPriority {
		for _, synonym := range vocab.SectionHeaders[key] {
			if lower == synonym {
				return key, true
			}
		}
	}

	return "", false
}
