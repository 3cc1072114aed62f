package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-parser/internal/types"
)

func TestPrintResume(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	resume := &types.StructuredResume{
		Contact: types.ContactInfo{
			Name:     "Jane Doe",
			Email:    "jane@example.com",
			Location: "San Francisco, CA",
		},
		Skills: []string{"Go", "Python", "Kubernetes"},
		Experience: []types.WorkEntry{
			{Title: "Software Engineer", Company: "Acme", StartDate: "Jan 2020", EndDate: "Present"},
		},
		Education: []types.EduEntry{
			{Degree: "Master of Science", Institution: "MIT"},
		},
	}

	p.PrintResume(resume)
	output := buf.String()

	assert.Contains(t, output, "PARSED RESUME")
	assert.Contains(t, output, "Jane Doe")
	assert.Contains(t, output, "jane@example.com")
	assert.Contains(t, output, "Go, Python, Kubernetes")
	assert.Contains(t, output, "Software Engineer")
	assert.Contains(t, output, "Jan 2020 - Present")
	assert.Contains(t, output, "Master of Science, MIT")
}

func TestPrintResume_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResume(nil)

	assert.Empty(t, buf.String())
}

func TestPrintResume_ManySkillsElided(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	resume := &types.StructuredResume{
		Skills: []string{"Go", "C", "R", "SQL", "CSS", "HTML", "AWS"},
	}

	p.PrintResume(resume)
	output := buf.String()

	assert.Contains(t, output, "Skills (7)")
	assert.Contains(t, output, "... and 2 more")
}

func TestPrintScore(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.ScoreResult{
		TotalScore: 85,
		BaseScore:  80,
		BonusScore: 5,
		SectionScores: map[string]int{
			types.SectionContact:        15,
			types.SectionSummary:        10,
			types.SectionSkills:         20,
			types.SectionExperience:     22,
			types.SectionEducation:      15,
			types.SectionCertifications: 0,
			types.SectionLanguages:      5,
		},
		Grade:       types.GradeA,
		Suggestions: []string{"Consider adding relevant certifications"},
	}

	p.PrintScore(result)
	output := buf.String()

	assert.Contains(t, output, "COMPLETENESS SCORE")
	assert.Contains(t, output, "85/100")
	assert.Contains(t, output, "grade A")
	assert.Contains(t, output, "experience")
	assert.Contains(t, output, "Consider adding relevant certifications")
}

func TestPrintScore_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScore(nil)

	assert.Empty(t, buf.String())
}

func TestPrintBox_LongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	resume := &types.StructuredResume{
		Contact: types.ContactInfo{
			Name: "A Very Long Name That Should Be Truncated To Fit Inside The Box",
		},
	}

	p.PrintResume(resume)
	output := buf.String()

	assert.True(t, strings.Contains(output, "┌"))
	assert.True(t, strings.Contains(output, "└"))
	assert.True(t, strings.Contains(output, "│"))
}
