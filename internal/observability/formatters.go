// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResume outputs a human-readable summary of the parsed resume.
func (p *Printer) PrintResume(resume *types.StructuredResume) {
	if resume == nil {
		return
	}

	var sb strings.Builder

	if resume.Contact.Name != "" {
		sb.WriteString(fmt.Sprintf("Name:     %s\n", resume.Contact.Name))
	}
	if resume.Contact.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:    %s\n", resume.Contact.Email))
	}
	if resume.Contact.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone:    %s\n", resume.Contact.Phone))
	}
	if resume.Contact.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", resume.Contact.Location))
	}
	sb.WriteString("\n")

	if len(resume.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills (%d):\n", len(resume.Skills)))
		count := min(len(resume.Skills), maxItemsToShow)
		skills := strings.Join(resume.Skills[:count], ", ")
		if len(skills) > 50 {
			skills = skills[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("  %s\n", skills))
		if len(resume.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(resume.Skills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(resume.Experience) > 0 {
		sb.WriteString(fmt.Sprintf("Experience (%d):\n", len(resume.Experience)))
		count := min(len(resume.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			entry := resume.Experience[i]
			line := entry.Title
			if entry.Company != "" {
				line += " — " + entry.Company
			}
			if len(line) > 45 {
				line = line[:42] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s", line))
			if entry.StartDate != "" {
				sb.WriteString(fmt.Sprintf(" (%s - %s)", entry.StartDate, entry.EndDate))
			}
			sb.WriteString("\n")
		}
		if len(resume.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(resume.Experience)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(resume.Education) > 0 {
		sb.WriteString(fmt.Sprintf("Education (%d):\n", len(resume.Education)))
		for _, entry := range resume.Education {
			line := entry.Degree
			if entry.Institution != "" {
				if line != "" {
					line += ", "
				}
				line += entry.Institution
			}
			if len(line) > 50 {
				line = line[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", line))
		}
	}

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScore outputs the completeness score with per-section breakdown.
func (p *Printer) PrintScore(result *types.ScoreResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total:    %d/100  (grade %s)\n", result.TotalScore, result.Grade))
	sb.WriteString(fmt.Sprintf("Base:     %d   Bonus: %d\n\n", result.BaseScore, result.BonusScore))

	sb.WriteString("Sections:\n")
	for _, name := range types.SectionNames() {
		sb.WriteString(fmt.Sprintf("  %-15s %d\n", name, result.SectionScores[name]))
	}

	if len(result.Suggestions) > 0 {
		sb.WriteString("\nSuggestions:\n")
		for _, suggestion := range result.Suggestions {
			if len(suggestion) > 50 {
				suggestion = suggestion[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", suggestion))
		}
	}

	p.printBox("COMPLETENESS SCORE", strings.TrimSuffix(sb.String(), "\n"))
}
