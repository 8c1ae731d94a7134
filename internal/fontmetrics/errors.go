// Package fontmetrics provides character advance widths and line heights for text measurement.
package fontmetrics

import "fmt"

// FontError represents a failure to load metrics for a font family
type FontError struct {
	Family  string
	Message string
	Cause   error
}

func (e *FontError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("font error: %s: %s: %v", e.Family, e.Message, e.Cause)
	}
	return fmt.Sprintf("font error: %s: %s", e.Family, e.Message)
}

func (e *FontError) Unwrap() error {
	return e.Cause
}
