// Package compression defines the ordered compression levels the layout engine
// steps through when a document does not fit on one page.
package compression

import "fmt"

// PolicyError represents an invalid compression table
type PolicyError struct {
	Level   int
	Message string
}

func (e *PolicyError) Error() string {
	if e.Level < 0 {
		return fmt.Sprintf("invalid compression policy: %s", e.Message)
	}
	return fmt.Sprintf("invalid compression policy at level %d: %s", e.Level, e.Message)
}
