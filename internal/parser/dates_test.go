package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindDateRange_Formats(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		start string
		end   string
	}{
		{"month year dash", "Jan 2020 - Dec 2021", "Jan 2020", "Dec 2021"},
		{"full month", "January 2020 - December 2021", "January 2020", "December 2021"},
		{"numeric", "01/2020 - 03/2021", "01/2020", "03/2021"},
		{"bare years with to", "2018 to 2022", "2018", "2022"},
		{"en dash", "Mar 2019 – Aug 2020", "Mar 2019", "Aug 2020"},
		{"present", "Jan 2020 - Present", "Jan 2020", "Present"},
		{"current", "Jun 2021 - current", "Jun 2021", "current"},
		{"embedded in header", "Engineer at Acme | Feb 2020 - Present", "Feb 2020", "Present"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dr, ok := FindDateRange(tt.line)
			require.True(t, ok)
			assert.Equal(t, tt.start, dr.Start)
			assert.Equal(t, tt.end, dr.End)
		})
	}
}

func TestFindDateRange_NoMatch(t *testing.T) {
	for _, line := range []string{
		"Built a data pipeline",
		"Graduated in 2019",
		"phone 555-1234",
	} {
		_, ok := FindDateRange(line)
		assert.False(t, ok, line)
	}
}

func TestDateRange_Open(t *testing.T) {
	assert.True(t, DateRange{Start: "Jan 2020", End: "Present"}.Open())
	assert.True(t, DateRange{Start: "Jan 2020", End: "Current"}.Open())
	assert.False(t, DateRange{Start: "Jan 2020", End: "Dec 2021"}.Open())
}

func TestStripDateRange_LeavesRemainder(t *testing.T) {
	rest := stripDateRange("Engineer at Acme | Jan 2020 - Present")
	assert.Equal(t, "Engineer at Acme |", rest)
}

func TestFindYear(t *testing.T) {
	assert.Equal(t, "2019", findYear("Graduated MIT, 2019"))
	assert.Empty(t, findYear("no year here, 123"))
}

func TestFindGPA(t *testing.T) {
	assert.Equal(t, "3.85", findGPA("GPA: 3.85"))
	assert.Equal(t, "4", findGPA("gpa 4"))
	assert.Empty(t, findGPA("grade point average 3.9"))
}
