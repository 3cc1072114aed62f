// Package types provides type definitions for structured data used throughout the resume parser system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// ContactInfo holds contact details extracted from the top of a resume.
// Every field is independently optional; an empty string means the field
// was not found, which is an expected state rather than an error.
type ContactInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Location string `json:"location,omitempty"`
}

// FieldCount returns how many contact fields are present.
func (c ContactInfo) FieldCount() int {
	count := 0
	for _, field := range []string{c.Name, c.Email, c.Phone, c.LinkedIn, c.Location} {
		if field != "" {
			count++
		}
	}
	return count
}

// WorkEntry represents a single position in the experience section.
// StartDate and EndDate are raw textual tokens taken verbatim from the
// source ("Jan 2020", "2019", "Present"); they are never parsed into
// calendar dates.
type WorkEntry struct {
	Title       string   `json:"title,omitempty"`
	Company     string   `json:"company,omitempty"`
	StartDate   string   `json:"start_date,omitempty"`
	EndDate     string   `json:"end_date,omitempty"`
	Description string   `json:"description,omitempty"`
	Highlights  []string `json:"highlights,omitempty"`
}

// HasDetails reports whether the entry carries a description or highlights
// beyond the title/company line.
func (w WorkEntry) HasDetails() bool {
	return w.Description != "" || len(w.Highlights) > 0
}

// EduEntry represents a single education entry. All fields are optional.
type EduEntry struct {
	Institution  string `json:"institution,omitempty"`
	Degree       string `json:"degree,omitempty"`
	FieldOfStudy string `json:"field_of_study,omitempty"`
	StartDate    string `json:"start_date,omitempty"`
	EndDate      string `json:"end_date,omitempty"`
	GPA          string `json:"gpa,omitempty"`
}

// StructuredResume is the aggregate produced by a single parse call.
// It is owned exclusively by the caller and never mutated after return.
// Skills, certifications and languages preserve insertion order of first
// detection; experience and education preserve source document order.
type StructuredResume struct {
	Contact        ContactInfo `json:"contact"`
	Summary        string      `json:"summary,omitempty"`
	Skills         []string    `json:"skills"`
	Experience     []WorkEntry `json:"experience"`
	Education      []EduEntry  `json:"education"`
	Certifications []string    `json:"certifications"`
	Languages      []string    `json:"languages"`
	RawText        string      `json:"raw_text,omitempty"`
}

// HasAdvancedDegree reports whether any education entry's degree matches a
// master's or doctorate pattern.
func (r *StructuredResume) HasAdvancedDegree() bool {
	for _, edu := range r.Education {
		degree := strings.ToLower(edu.Degree)
		for _, marker := range []string{"master", "mba", "ph.d", "phd", "doctorate"} {
			if strings.Contains(degree, marker) {
				return true
			}
		}
	}
	return false
}
