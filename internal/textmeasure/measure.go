// Package textmeasure wraps text into lines and measures the resulting block height.
package textmeasure

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-layout/internal/fontmetrics"
	"golang.org/x/text/unicode/norm"
)

const hyphen = '-'

// Font selects the face and line spacing used for measurement
type Font struct {
	Family     string
	Size       float64
	LineHeight float64 // multiplier of Size
	Bold       bool
	Italic     bool
}

// Wrapped is the result of wrapping a block of text
type Wrapped struct {
	Lines     []string
	LineCount int
	Height    float64
}

// Measurer performs greedy word wrapping against a font metrics provider.
// It holds no mutable state and may be shared between goroutines.
type Measurer struct {
	provider fontmetrics.Provider
}

// New creates a Measurer. A nil provider uses the shared default registry.
func New(provider fontmetrics.Provider) *Measurer {
	if provider == nil {
		provider = fontmetrics.Default()
	}
	return &Measurer{provider: provider}
}

// Width returns the advance width of text set on a single line
func (m *Measurer) Width(text string, f Font) float64 {
	var w float64
	for _, r := range text {
		w += m.provider.CharWidth(r, f.Family, f.Size, f.Bold, f.Italic)
	}
	return w
}

// LineHeight returns the height of a single line in f
func (m *Measurer) LineHeight(f Font) float64 {
	return m.provider.LineHeight(f.Size, f.LineHeight)
}

// Wrap breaks text into lines no wider than maxWidth.
//
// Words are placed greedily. A word wider than maxWidth on its own is split at
// the longest prefix that fits together with a hyphen; when not even one
// character and a hyphen fit, one character is placed per line. Every line
// consumes at least one character, so wrapping always terminates.
func (m *Measurer) Wrap(text string, maxWidth float64, f Font) (Wrapped, error) {
	if math.IsNaN(maxWidth) || maxWidth <= 0 {
		return Wrapped{}, &UnmeasurableContentError{Text: preview(text), MaxWidth: maxWidth}
	}

	words := strings.Fields(norm.NFC.String(text))
	if len(words) == 0 {
		return Wrapped{}, nil
	}

	space := m.provider.CharWidth(' ', f.Family, f.Size, f.Bold, f.Italic)

	var (
		lines     []string
		current   strings.Builder
		lineWidth float64
	)
	flush := func() {
		if current.Len() > 0 {
			lines = append(lines, current.String())
			current.Reset()
			lineWidth = 0
		}
	}

	for _, word := range words {
		wordWidth := m.Width(word, f)

		if current.Len() > 0 && lineWidth+space+wordWidth <= maxWidth {
			current.WriteByte(' ')
			current.WriteString(word)
			lineWidth += space + wordWidth
			continue
		}
		flush()

		if wordWidth <= maxWidth {
			current.WriteString(word)
			lineWidth = wordWidth
			continue
		}

		rest := []rune(word)
		for len(rest) > 0 {
			restWidth := m.runesWidth(rest, f)
			if restWidth <= maxWidth {
				current.WriteString(string(rest))
				lineWidth = restWidth
				break
			}
			n, piece := m.split(rest, maxWidth, f)
			lines = append(lines, piece)
			rest = rest[n:]
		}
	}
	flush()

	return Wrapped{
		Lines:     lines,
		LineCount: len(lines),
		Height:    float64(len(lines)) * m.LineHeight(f),
	}, nil
}

// split returns how many runes of an overlong word go on the current line and
// the text of that line. The result always consumes at least one rune.
func (m *Measurer) split(word []rune, maxWidth float64, f Font) (int, string) {
	hyphenWidth := m.provider.CharWidth(hyphen, f.Family, f.Size, f.Bold, f.Italic)

	best := 0
	var prefix float64
	for i := 0; i < len(word)-1; i++ {
		prefix += m.provider.CharWidth(word[i], f.Family, f.Size, f.Bold, f.Italic)
		if prefix+hyphenWidth > maxWidth {
			break
		}
		best = i + 1
	}

	if best == 0 {
		return 1, string(word[:1])
	}
	return best, string(word[:best]) + string(hyphen)
}

func (m *Measurer) runesWidth(runes []rune, f Font) float64 {
	var w float64
	for _, r := range runes {
		w += m.provider.CharWidth(r, f.Family, f.Size, f.Bold, f.Italic)
	}
	return w
}

func preview(text string) string {
	const limit = 40
	if utf8.RuneCountInString(text) <= limit {
		return text
	}
	return string([]rune(text)[:limit]) + "..."
}
