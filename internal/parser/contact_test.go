package parser

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-parser/internal/ner"
)

type stubRecognizer struct {
	entities []ner.Entity
	err      error
}

func (s *stubRecognizer) Recognize(_ context.Context, _ string) ([]ner.Entity, error) {
	return s.entities, s.err
}

const contactHeader = "Jane Doe\njane.doe@example.com | (555) 123-4567 | linkedin.com/in/janedoe\nSan Francisco, CA\n\nSUMMARY\nEngineer.\n"

func TestExtractContact_AllFields(t *testing.T) {
	recognizer := &stubRecognizer{entities: []ner.Entity{
		{Category: ner.CategoryPerson, Text: "Jane Doe", Start: 0, End: 8},
	}}

	contact := ExtractContact(context.Background(), contactHeader, recognizer)

	assert.Equal(t, "Jane Doe", contact.Name)
	assert.Equal(t, "jane.doe@example.com", contact.Email)
	assert.Equal(t, "(555) 123-4567", contact.Phone)
	assert.Equal(t, "linkedin.com/in/janedoe", contact.LinkedIn)
	assert.Equal(t, "San Francisco, CA", contact.Location)
	assert.Equal(t, 5, contact.FieldCount())
}

func TestExtractContact_RecognizerFailureDegrades(t *testing.T) {
	recognizer := &stubRecognizer{err: errors.New("model unavailable")}

	contact := ExtractContact(context.Background(), contactHeader, recognizer)

	assert.Empty(t, contact.Name)
	assert.Equal(t, "jane.doe@example.com", contact.Email)
	assert.Equal(t, "(555) 123-4567", contact.Phone)
}

func TestExtractContact_NilRecognizer(t *testing.T) {
	contact := ExtractContact(context.Background(), contactHeader, nil)

	assert.Empty(t, contact.Name)
	assert.Equal(t, "jane.doe@example.com", contact.Email)
}

func TestExtractContact_NameOutsideWindowIgnored(t *testing.T) {
	text := "Resume\nline two\nline three\nline four\nline five\nline six\nJohn Smith reported to Mary Major\n"
	start := len(text) - len("John Smith reported to Mary Major\n")
	recognizer := &stubRecognizer{entities: []ner.Entity{
		{Category: ner.CategoryPerson, Text: "John Smith", Start: start, End: start + 10},
	}}

	contact := ExtractContact(context.Background(), text, recognizer)

	assert.Empty(t, contact.Name)
}

func TestExtractContact_NonPersonEntitiesSkipped(t *testing.T) {
	text := "Acme Corporation\nJane Doe\n"
	recognizer := &stubRecognizer{entities: []ner.Entity{
		{Category: ner.CategoryOrganization, Text: "Acme Corporation", Start: 0, End: 16},
		{Category: ner.CategoryPerson, Text: "Jane Doe", Start: 17, End: 25},
	}}

	contact := ExtractContact(context.Background(), text, recognizer)

	assert.Equal(t, "Jane Doe", contact.Name)
}

func TestExtractContact_InternationalPhone(t *testing.T) {
	contact := ExtractContact(context.Background(), "Reach me on +44 20 7946 0958\n", nil)
	assert.Equal(t, "+44 20 7946 0958", contact.Phone)
}

func TestExtractContact_LocationDeepInDocumentIgnored(t *testing.T) {
	var text string
	for i := 0; i < locationWindowLines; i++ {
		text += "filler line\n"
	}
	text += "Austin, TX\n"

	contact := ExtractContact(context.Background(), text, nil)

	assert.Empty(t, contact.Location)
}
