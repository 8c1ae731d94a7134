// Package layout positions a structured resume on a single page, compressing
// typography and spacing level by level until the content fits.
package layout

import (
	"fmt"

	"github.com/jonathan/resume-layout/internal/textmeasure"
)

// InvalidDocumentError is returned for documents or configurations that cannot
// be laid out meaningfully. Content that is merely too long is never an error.
type InvalidDocumentError struct {
	Field   string
	Message string
	Cause   error
}

func (e *InvalidDocumentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid document: %s: %s: %v", e.Field, e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid document: %s: %s", e.Field, e.Message)
}

func (e *InvalidDocumentError) Unwrap() error {
	return e.Cause
}

// UnmeasurableContentError is returned when text would have to be wrapped into
// a non-positive width.
type UnmeasurableContentError = textmeasure.UnmeasurableContentError
