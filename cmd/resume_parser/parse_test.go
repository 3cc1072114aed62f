package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-parser/internal/types"
)

const testResumeText = `Jane Doe
jane.doe@example.com | (555) 123-4567

SUMMARY
Backend engineer with eight years of distributed systems experience.

EXPERIENCE
Senior Engineer at Acme Corp
Jan 2020 - Present
- Built payment processing services in Go

EDUCATION
Bachelor of Science in Computer Science, MIT
2012 - 2016

SKILLS
Go, Python, PostgreSQL, Kubernetes
`

// resetParseFlags restores the parse command's flag globals after a test.
func resetParseFlags(t *testing.T) {
	t.Cleanup(func() {
		parseScore = false
		parseIncludeRawText = false
		parseValidate = false
		parseVerbose = false
		parseOutputFile = ""
		parseConfigFile = ""
	})
}

func TestRunParse_TextFileToOutputFile(t *testing.T) {
	resetParseFlags(t)
	t.Setenv("GEMINI_API_KEY", "")

	dir := t.TempDir()
	inputPath := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(inputPath, []byte(testResumeText), 0644))

	parseOutputFile = filepath.Join(dir, "out.json")
	parseValidate = true

	require.NoError(t, runParse(nil, []string{inputPath}))

	data, err := os.ReadFile(parseOutputFile)
	require.NoError(t, err)

	var resume types.StructuredResume
	require.NoError(t, json.Unmarshal(data, &resume))
	assert.Equal(t, "jane.doe@example.com", resume.Contact.Email)
	assert.Contains(t, resume.Skills, "Go")
	require.Len(t, resume.Experience, 1)
	assert.Equal(t, "Senior Engineer", resume.Experience[0].Title)
	assert.Empty(t, resume.RawText)
}

func TestRunParse_WithScoreEnvelope(t *testing.T) {
	resetParseFlags(t)
	t.Setenv("GEMINI_API_KEY", "")

	dir := t.TempDir()
	inputPath := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(inputPath, []byte(testResumeText), 0644))

	parseOutputFile = filepath.Join(dir, "out.json")
	parseScore = true
	parseIncludeRawText = true
	parseValidate = true

	require.NoError(t, runParse(nil, []string{inputPath}))

	data, err := os.ReadFile(parseOutputFile)
	require.NoError(t, err)

	var resp types.ParseResponse
	require.NoError(t, json.Unmarshal(data, &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Data)
	assert.NotEmpty(t, resp.Data.RawText)
	require.NotNil(t, resp.Score)
	assert.Greater(t, resp.Score.TotalScore, 0)
	assert.NotEmpty(t, resp.Score.Grade)
}

func TestRunParse_MissingInputFile(t *testing.T) {
	resetParseFlags(t)
	t.Setenv("GEMINI_API_KEY", "")

	err := runParse(nil, []string{filepath.Join(t.TempDir(), "nope.txt")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read input file")
}

func TestRunParse_UnsupportedExtension(t *testing.T) {
	resetParseFlags(t)
	t.Setenv("GEMINI_API_KEY", "")

	dir := t.TempDir()
	inputPath := filepath.Join(dir, "resume.xlsx")
	require.NoError(t, os.WriteFile(inputPath, []byte("irrelevant"), 0644))

	err := runParse(nil, []string{inputPath})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported")
}

func TestRunScore_File(t *testing.T) {
	dir := t.TempDir()

	resume := types.StructuredResume{
		Contact:        types.ContactInfo{Name: "Jane Doe", Email: "jane@example.com"},
		Skills:         []string{"Go", "Python", "SQL", "Docker"},
		Experience:     []types.WorkEntry{{Title: "Engineer", Company: "Acme", Description: "Built things"}},
		Education:      []types.EduEntry{{Degree: "B.S.", Institution: "MIT"}},
		Certifications: []string{},
		Languages:      []string{},
	}
	data, err := json.Marshal(resume)
	require.NoError(t, err)

	inputPath := filepath.Join(dir, "resume.json")
	require.NoError(t, os.WriteFile(inputPath, data, 0644))

	scoreOutputFile = filepath.Join(dir, "score.json")
	scoreValidate = true
	t.Cleanup(func() {
		scoreValidate = false
		scoreVerbose = false
		scoreOutputFile = ""
	})

	require.NoError(t, runScore(nil, []string{inputPath}))

	out, err := os.ReadFile(scoreOutputFile)
	require.NoError(t, err)

	var result types.ScoreResult
	require.NoError(t, json.Unmarshal(out, &result))
	assert.Greater(t, result.TotalScore, 0)
	assert.Len(t, result.SectionScores, 7)
}
