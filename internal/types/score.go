package types

// Letter grades assigned by the scoring engine.
const (
	GradeAPlus = "A+"
	GradeA     = "A"
	GradeB     = "B"
	GradeC     = "C"
	GradeD     = "D"
	GradeF     = "F"
)

// Section keys used in ScoreResult.SectionScores. The set is fixed; every
// score result contains exactly these keys.
const (
	SectionContact        = "contact"
	SectionSummary        = "summary"
	SectionSkills         = "skills"
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionCertifications = "certifications"
	SectionLanguages      = "languages"
)

// SectionNames returns the fixed list of scored section keys.
func SectionNames() []string {
	return []string{
		SectionContact,
		SectionSummary,
		SectionSkills,
		SectionExperience,
		SectionEducation,
		SectionCertifications,
		SectionLanguages,
	}
}

// ScoreResult holds the completeness score for a structured resume.
// TotalScore is the weighted sum plus bonuses, capped at 100. Suggestions
// are ordered by rule priority and contain no duplicates.
type ScoreResult struct {
	TotalScore    int            `json:"total_score"`
	BaseScore     int            `json:"base_score"`
	BonusScore    int            `json:"bonus_score"`
	SectionScores map[string]int `json:"section_scores"`
	Grade         string         `json:"grade"`
	Suggestions   []string       `json:"suggestions"`
}
