package parser

import (
	"context"
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/ner"
	"github.com/jonathan/resume-parser/internal/types"
)

var emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

// phoneRes are tried in order: North-American-style first, then a generic
// international form. The matched substring is stored verbatim.
var phoneRes = []*regexp.Regexp{
	regexp.MustCompile(`(?:\+?1[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
	regexp.MustCompile(`\+\d{1,3}[-.\s]?\d{1,4}[-.\s]?\d{1,4}[-.\s]?\d{1,9}`),
}

var linkedinRe = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[\w-]+`)

// locationRe matches a "City, ST" or "City, Country" shaped token.
var locationRe = regexp.MustCompile(`\b([A-Z][a-zA-Z.'-]+(?: [A-Z][a-zA-Z.'-]+)*),\s?([A-Z]{2}\b|[A-Z][a-z]+(?: [A-Z][a-z]+)?)\b`)

const (
	// nameWindowLines bounds how far into the document a PERSON entity may
	// start and still be taken as the candidate's own name. Names mentioned
	// deeper in the text (a manager in a job description) must not win.
	nameWindowLines = 5

	// locationWindowLines bounds the header-area scan for a location token.
	locationWindowLines = 10
)

// ExtractContact extracts contact details from the full raw text. Every
// field is independently optional; a missing field is left empty. A failing
// or absent recognizer only costs the name, never the parse.
func ExtractContact(ctx context.Context, text string, recognizer ner.Recognizer) types.ContactInfo {
	var contact types.ContactInfo

	contact.Email = emailRe.FindString(text)

	for _, re := range phoneRes {
		if phone := re.FindString(text); phone != "" {
			contact.Phone = phone
			break
		}
	}

	contact.LinkedIn = linkedinRe.FindString(text)
	contact.Name = extractName(ctx, text, recognizer)
	contact.Location = extractLocation(text)

	return contact
}

// extractName returns the first PERSON entity whose span starts within the
// first few non-empty lines. No fallback guesses a name from formatting.
func extractName(ctx context.Context, text string, recognizer ner.Recognizer) string {
	if recognizer == nil {
		return ""
	}

	entities, err := recognizer.Recognize(ctx, text)
	if err != nil {
		// Collaborator unavailable: degrade, the parse continues.
		return ""
	}

	limit := lineWindowOffset(text, nameWindowLines)
	for _, entity := range entities {
		if entity.Category != ner.CategoryPerson {
			continue
		}
		name := strings.TrimSpace(entity.Text)
		if name == "" || entity.Start >= limit {
			continue
		}
		return name
	}

	return ""
}

// extractLocation scans the header area for a "City, ST/Country" token.
func extractLocation(text string) string {
	seen := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		seen++
		if seen > locationWindowLines {
			break
		}
		if loc := locationRe.FindString(line); loc != "" {
			return strings.TrimSpace(loc)
		}
	}
	return ""
}

// lineWindowOffset returns the byte offset just past the nth non-empty
// line, bounding positional checks to the document's header area.
func lineWindowOffset(text string, n int) int {
	offset := 0
	seen := 0
	for _, line := range strings.Split(text, "\n") {
		offset += len(line) + 1
		if strings.TrimSpace(line) != "" {
			seen++
			if seen >= n {
				break
			}
		}
	}
	if offset > len(text) {
		offset = len(text)
	}
	return offset
}
