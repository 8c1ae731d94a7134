// Package compression defines the ordered compression levels the layout engine
// steps through when a document does not fit on one page.
package compression

import "fmt"

// Level is a compression step. Level 0 leaves the configuration untouched and
// every higher level is at least as aggressive as the one before it.
type Level int

// MaxLevel is the most aggressive level of the default policy
const MaxLevel Level = 4

// Advance returns the next level, staying at MaxLevel once it is reached
func Advance(l Level) Level {
	if l >= MaxLevel {
		return MaxLevel
	}
	if l < 0 {
		return 0
	}
	return l + 1
}

// IsTerminal reports whether no further compression is available under the default policy
func (l Level) IsTerminal() bool {
	return l >= MaxLevel
}

func (l Level) String() string {
	return fmt.Sprintf("level %d", int(l))
}
