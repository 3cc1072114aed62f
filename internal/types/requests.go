package types

import "github.com/go-playground/validator/v10"

// ParseTextRequest represents a request to parse resume content supplied as
// plain text rather than an uploaded document.
type ParseTextRequest struct {
	Text           string `json:"text" validate:"required,min=1"`
	IncludeRawText bool   `json:"include_raw_text,omitempty"`
	Score          bool   `json:"score,omitempty"`
}

// Validate validates the ParseTextRequest using the validator.
func (r *ParseTextRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// ParseResponse is the API envelope for parse results. ID is set when the
// result was persisted.
type ParseResponse struct {
	Success bool              `json:"success"`
	ID      string            `json:"id,omitempty"`
	Data    *StructuredResume `json:"data,omitempty"`
	Score   *ScoreResult      `json:"score,omitempty"`
	Error   string            `json:"error,omitempty"`
}

// HealthResponse is the health check payload.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
