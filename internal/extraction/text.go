package extraction

import (
	"regexp"
	"strings"
)

var (
	intraLineSpaceRe = regexp.MustCompile(`[ \t]+`)
	blankRunRe       = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes extracted resume text while preserving the line
// structure the parsing heuristics depend on: line endings become LF,
// trailing whitespace is dropped, runs of spaces collapse to one, bullet
// markers and leading indentation survive, and blank-line runs are capped
// at two.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = blankRunRe.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	trimmed := strings.TrimLeft(line, " \t")
	indent := len(line) - len(trimmed)
	content := intraLineSpaceRe.ReplaceAllString(trimmed, " ")

	if indent > 0 {
		return strings.Repeat(" ", indent) + content
	}
	return content
}
