// Package server provides the HTTP REST API for the resume parser.
package server

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-parser/internal/extraction"
	"github.com/jonathan/resume-parser/internal/parser"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		inputErr       *parser.InputError
		unsupportedErr *extraction.UnsupportedTypeError
		validationErrs validator.ValidationErrors
	)

	switch {
	case errors.As(err, &inputErr):
		return http.StatusBadRequest
	case errors.As(err, &validationErrs):
		return http.StatusBadRequest
	case errors.As(err, &unsupportedErr):
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusInternalServerError
	}
}
