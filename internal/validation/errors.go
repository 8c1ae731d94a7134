// Package validation checks computed layouts and estimates how much content must go when a page overflows.
package validation

import "fmt"

// Error is returned when a layout cannot be checked at all. Problems found in
// a layout are reported as violations, not errors.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return "layout validation error: " + e.Message
	}
	return fmt.Sprintf("layout validation error: %s: %v", e.Message, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
