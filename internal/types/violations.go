// Package types provides type definitions for structured data used throughout the resume-layout system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Violation types reported by layout validation
const (
	ViolationPageOverflow   = "page_overflow"
	ViolationElementOverlap = "element_overlap"
	ViolationOutOfBounds    = "out_of_bounds"
	ViolationFloor          = "floor_violation"
)

// Violation represents a single layout check failure
type Violation struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Details  string `json:"details"`

	// ElementIndex points into LayoutResult.Elements when one element is at fault
	ElementIndex *int    `json:"element_index,omitempty"`
	ElementText  *string `json:"element_text,omitempty"`
	BulletID     *string `json:"bullet_id,omitempty"`
}

// Violations represents a collection of layout check failures
type Violations struct {
	Violations []Violation `json:"violations"`
}

// HasErrors reports whether any violation has error severity
func (v *Violations) HasErrors() bool {
	if v == nil {
		return false
	}
	for _, violation := range v.Violations {
		if violation.Severity == "error" {
			return true
		}
	}
	return false
}
