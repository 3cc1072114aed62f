// Package scoring grades a structured resume for completeness. Scoring is
// a pure function of the record: no I/O, no randomness, and the same
// record always produces the same result.
package scoring

import "github.com/jonathan/resume-parser/internal/types"

// Per-section maximums. The base maximums sum to 100 before bonuses.
const (
	maxContactScore    = 15
	maxSummaryScore    = 10
	maxSkillsScore     = 20
	maxExperienceScore = 30
	maxEducationScore  = 15
	maxSectionBonus    = 5

	pointsPerContactField = 3

	advancedDegreeBonus = 5
	certificationBonus  = 3

	maxTotalScore = 100

	maxSuggestions = 5
)

// Score evaluates a structured resume against the completeness rubric and
// returns per-section scores, bonuses, a letter grade and improvement
// suggestions.
func Score(resume *types.StructuredResume) *types.ScoreResult {
	sections := map[string]int{
		types.SectionContact:        scoreContact(resume.Contact),
		types.SectionSummary:        scoreSummary(resume.Summary),
		types.SectionSkills:         scoreSkills(resume.Skills),
		types.SectionExperience:     scoreExperience(resume.Experience),
		types.SectionEducation:      scoreEducation(resume.Education),
		types.SectionCertifications: scorePresence(len(resume.Certifications)),
		types.SectionLanguages:      scorePresence(len(resume.Languages)),
	}

	base := 0
	for _, s := range sections {
		base += s
	}

	bonus := 0
	if resume.HasAdvancedDegree() {
		bonus += advancedDegreeBonus
	}
	if len(resume.Certifications) > 0 {
		bonus += certificationBonus
	}

	total := base + bonus
	if total > maxTotalScore {
		total = maxTotalScore
	}

	return &types.ScoreResult{
		TotalScore:    total,
		BaseScore:     base,
		BonusScore:    bonus,
		SectionScores: sections,
		Grade:         GradeFor(total),
		Suggestions:   buildSuggestions(sections, resume),
	}
}

// GradeFor maps a total score to its letter grade.
func GradeFor(total int) string {
	switch {
	case total >= 90:
		return types.GradeAPlus
	case total >= 80:
		return types.GradeA
	case total >= 70:
		return types.GradeB
	case total >= 60:
		return types.GradeC
	case total >= 50:
		return types.GradeD
	default:
		return types.GradeF
	}
}

func scoreContact(contact types.ContactInfo) int {
	score := contact.FieldCount() * pointsPerContactField
	if score > maxContactScore {
		score = maxContactScore
	}
	return score
}

func scoreSummary(summary string) int {
	switch n := len(summary); {
	case n == 0:
		return 0
	case n >= 200:
		return maxSummaryScore
	case n >= 100:
		return 7
	case n >= 50:
		return 5
	default:
		return 3
	}
}

// scoreSkills never drops below the floor; even an empty list scores 5 so
// the rubric rewards the sections that actually differentiate resumes.
func scoreSkills(skills []string) int {
	switch n := len(skills); {
	case n >= 10:
		return maxSkillsScore
	case n >= 7:
		return 15
	case n >= 4:
		return 10
	default:
		return 5
	}
}

func scoreExperience(entries []types.WorkEntry) int {
	detailed := 0
	for _, e := range entries {
		if e.HasDetails() {
			detailed++
		}
	}

	switch {
	case len(entries) >= 3 && detailed >= 2:
		return maxExperienceScore
	case len(entries) >= 2 && detailed >= 1:
		return 22
	case len(entries) >= 1:
		return 15
	default:
		return 0
	}
}

func scoreEducation(entries []types.EduEntry) int {
	for _, e := range entries {
		if e.Degree != "" {
			return maxEducationScore
		}
	}
	if len(entries) > 0 {
		return 10
	}
	return 0
}

func scorePresence(count int) int {
	if count > 0 {
		return maxSectionBonus
	}
	return 0
}

// Suggestion thresholds. Each rule fires when its section falls short of
// the rubric tier named here, in declared order.
const (
	suggestContactBelow    = 10 // fewer than 4 contact fields
	suggestSummaryBelow    = 7  // summary under 100 characters
	suggestSkillCountBelow = 7  // below the 15-point skills tier
	suggestExperienceBelow = 22 // below the second experience tier
	suggestEducationBelow  = 10 // no education entry at all
)

// buildSuggestions emits improvement hints in a fixed order, most
// impactful first, capped so the caller never has to page through them.
func buildSuggestions(sections map[string]int, resume *types.StructuredResume) []string {
	suggestions := make([]string, 0, maxSuggestions)

	add := func(s string) {
		if len(suggestions) < maxSuggestions {
			suggestions = append(suggestions, s)
		}
	}

	if sections[types.SectionContact] < suggestContactBelow {
		add("Add more contact information (LinkedIn, phone)")
	}
	if sections[types.SectionSummary] < suggestSummaryBelow {
		add("Write a more detailed professional summary (150+ words)")
	}
	if len(resume.Skills) < suggestSkillCountBelow {
		add("List more technical skills relevant to your field")
	}
	if sections[types.SectionExperience] < suggestExperienceBelow {
		add("Add more details to work experience (achievements, metrics)")
	}
	if sections[types.SectionEducation] < suggestEducationBelow {
		add("Include education details with degree and institution")
	}
	if len(resume.Certifications) == 0 {
		add("Consider adding relevant certifications")
	}

	return suggestions
}
