// Package schemas embeds the JSON Schemas for the parser's output
// artifacts and validates documents against them.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed structured_resume.schema.json
var structuredResumeSchema string

//go:embed score_result.schema.json
var scoreResultSchema string

// StructuredResumeSchema returns the JSON Schema for parse output.
func StructuredResumeSchema() string {
	return structuredResumeSchema
}

// ScoreResultSchema returns the JSON Schema for score output.
func ScoreResultSchema() string {
	return scoreResultSchema
}

// FieldError is a single validation failure at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates all schema violations found in a document.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError indicates the schema itself could not be loaded or
// parsed, as opposed to the document failing validation.
type SchemaLoadError struct {
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema: %s", e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateStructuredResume validates a marshaled StructuredResume.
func ValidateStructuredResume(document []byte) error {
	return validate(structuredResumeSchema, document)
}

// ValidateScoreResult validates a marshaled ScoreResult.
func ValidateScoreResult(document []byte) error {
	return validate(scoreResultSchema, document)
}

// ValidateJSONString validates arbitrary JSON content against an
// arbitrary schema, both given as strings.
func ValidateJSONString(schemaContent, jsonContent string) error {
	return validate(schemaContent, []byte(jsonContent))
}

func validate(schemaContent string, document []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(schemaContent)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{Message: "schema validation failed during load", Cause: err}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
