// Package fontmetrics provides character advance widths and line heights for text measurement.
//
// Widths come from read-only tables built when a Registry is constructed, so a
// Registry can be shared by any number of concurrent layouts.
package fontmetrics

import (
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Canonical family names
const (
	FamilyHelvetica = "Helvetica"
	FamilyTimes     = "Times"
	FamilyCourier   = "Courier"
	FamilyGo        = "Go"
	FamilyGoMono    = "Go Mono"
)

const (
	asciiFirst = 0x20
	asciiLast  = 0x7E
	asciiCount = asciiLast - asciiFirst + 1
)

// Provider measures characters without rendering them.
// Implementations must be deterministic and safe for concurrent use.
type Provider interface {
	// CharWidth returns the advance width of r in points
	CharWidth(r rune, family string, size float64, bold, italic bool) float64
	// LineHeight returns the height of one line in points
	LineHeight(size, multiplier float64) float64
	// Resolve returns the canonical family that will be used for name
	Resolve(name string) string
}

// widthTable holds advances in font units
type widthTable struct {
	unitsPerEm float64
	ascii      [asciiCount]float64
	extra      map[rune]float64
	missing    float64
}

func (t *widthTable) lookup(r rune) (float64, bool) {
	if r >= asciiFirst && r <= asciiLast {
		return t.ascii[r-asciiFirst], true
	}
	w, ok := t.extra[r]
	return w, ok
}

// advance returns the width of r in font units. Accented letters fall back to
// their base letter; anything else unknown gets the missing-glyph width.
func (t *widthTable) advance(r rune) float64 {
	if w, ok := t.lookup(r); ok {
		return w
	}
	if decomposed := norm.NFD.String(string(r)); decomposed != string(r) {
		base, _ := utf8.DecodeRuneInString(decomposed)
		if w, ok := t.lookup(base); ok {
			return w
		}
	}
	return t.missing
}

// family groups the four faces of a typeface: regular, bold, italic, bold italic
type family struct {
	name    string
	faces   [4]*widthTable
	aliases []string
}

func (f *family) face(bold, italic bool) *widthTable {
	idx := 0
	if bold {
		idx |= 1
	}
	if italic {
		idx |= 2
	}
	return f.faces[idx]
}

// Registry is the default Provider. Unknown families resolve to Helvetica.
type Registry struct {
	families map[string]*family
	fallback *family
}

// Option configures a Registry at construction time
type Option func(*registryOptions)

type registryOptions struct {
	skipGoFonts bool
	trueType    []trueTypeFamily
}

// WithoutGoFonts builds a registry with only the built-in AFM families
func WithoutGoFonts() Option {
	return func(o *registryOptions) {
		o.skipGoFonts = true
	}
}

// WithTrueTypeFamily registers a family measured from TrueType/OpenType data.
// Faces left nil reuse the regular face.
func WithTrueTypeFamily(name string, files FontFiles) Option {
	return func(o *registryOptions) {
		o.trueType = append(o.trueType, trueTypeFamily{name: name, files: files})
	}
}

// NewRegistry builds a registry with the AFM core families, the Go fonts and any
// TrueType families passed as options.
func NewRegistry(opts ...Option) (*Registry, error) {
	var o registryOptions
	for _, opt := range opts {
		opt(&o)
	}

	r := &Registry{families: make(map[string]*family)}
	for _, f := range builtinFamilies() {
		r.add(f)
	}
	r.fallback = r.families[normalizeName(FamilyHelvetica)]

	if !o.skipGoFonts {
		for _, src := range goFontFamilies() {
			f, err := loadTrueTypeFamily(src.name, src.files)
			if err != nil {
				return nil, err
			}
			f.aliases = src.aliases
			r.add(f)
		}
	}

	for _, src := range o.trueType {
		f, err := loadTrueTypeFamily(src.name, src.files)
		if err != nil {
			return nil, err
		}
		r.add(f)
	}

	return r, nil
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	r, err := NewRegistry()
	if err != nil {
		// The embedded Go fonts are known-good; fall back to the AFM tables regardless.
		r, _ = NewRegistry(WithoutGoFonts())
	}
	return r
})

// Default returns a shared registry with the built-in families
func Default() *Registry {
	return defaultRegistry()
}

func (r *Registry) add(f *family) {
	r.families[normalizeName(f.name)] = f
	for _, alias := range f.aliases {
		r.families[normalizeName(alias)] = f
	}
}

func (r *Registry) family(name string) *family {
	if f, ok := r.families[normalizeName(name)]; ok {
		return f
	}
	return r.fallback
}

// Resolve returns the canonical name of the family used for name
func (r *Registry) Resolve(name string) string {
	return r.family(name).name
}

// Families returns the canonical names of all registered families
func (r *Registry) Families() []string {
	seen := make(map[string]bool)
	var names []string
	for _, f := range r.families {
		if !seen[f.name] {
			seen[f.name] = true
			names = append(names, f.name)
		}
	}
	sort.Strings(names)
	return names
}

// CharWidth implements Provider
func (r *Registry) CharWidth(ch rune, name string, size float64, bold, italic bool) float64 {
	t := r.family(name).face(bold, italic)
	return t.advance(ch) / t.unitsPerEm * size
}

// LineHeight implements Provider
func (r *Registry) LineHeight(size, multiplier float64) float64 {
	return size * multiplier
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
