// Package ner defines the named-entity recognition boundary consumed during
// contact extraction. The parser only reads PERSON entities; other
// categories are passed through for future use. Implementations may be
// slow (model inference) or absent entirely, and the caller degrades to an
// absent name rather than failing the parse.
package ner

import "context"

// Entity categories returned by recognizers.
const (
	CategoryPerson       = "PERSON"
	CategoryOrganization = "ORG"
	CategoryLocation     = "LOC"
)

// Entity is a single recognized span of text. Start and End are byte
// offsets into the input text.
type Entity struct {
	Category string `json:"category"`
	Text     string `json:"text"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
}

// Recognizer extracts named entities from raw text.
type Recognizer interface {
	Recognize(ctx context.Context, text string) ([]Entity, error)
}

// Noop is a Recognizer that finds nothing. It is used when no model is
// configured and in deterministic tests.
type Noop struct{}

// Recognize always returns an empty entity list.
func (Noop) Recognize(_ context.Context, _ string) ([]Entity, error) {
	return nil, nil
}
