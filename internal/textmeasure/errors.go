// Package textmeasure wraps text into lines and measures the resulting block height.
package textmeasure

import "fmt"

// UnmeasurableContentError is returned when text must be wrapped into a
// non-positive width, where not even one character per line can be placed.
type UnmeasurableContentError struct {
	Text     string
	MaxWidth float64
}

func (e *UnmeasurableContentError) Error() string {
	return fmt.Sprintf("unmeasurable content: cannot wrap %q into width %.2fpt", e.Text, e.MaxWidth)
}
