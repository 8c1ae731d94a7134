// Package repair proposes and applies content changes that make an overflowing document fit one page.
package repair

import "fmt"

// Error is returned when the drop loop cannot start
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("repair error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("repair error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// ApplyError identifies the repair action that could not be applied
type ApplyError struct {
	Index    int
	BulletID string
	Message  string
}

func (e *ApplyError) Error() string {
	if e.BulletID != "" {
		return fmt.Sprintf("repair action %d: bullet %s: %s", e.Index, e.BulletID, e.Message)
	}
	return fmt.Sprintf("repair action %d: %s", e.Index, e.Message)
}
