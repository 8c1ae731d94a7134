// Package server provides the HTTP API for the resume layout engine.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-layout/internal/layout"
	"github.com/jonathan/resume-layout/internal/schemas"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validationErr *ErrValidation
		schemaErr     *schemas.ValidationError
		invalidDoc    *layout.InvalidDocumentError
		unmeasurable  *layout.UnmeasurableContentError
		tooLarge      *http.MaxBytesError
	)

	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &validationErr), errors.As(err, &schemaErr), errors.As(err, &invalidDoc):
		return http.StatusBadRequest
	case errors.As(err, &unmeasurable):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
