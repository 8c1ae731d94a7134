// Package fontmetrics provides character advance widths and line heights for text measurement.
package fontmetrics

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// FontFiles holds the raw TrueType/OpenType data of a family's faces
type FontFiles struct {
	Regular    []byte
	Bold       []byte
	Italic     []byte
	BoldItalic []byte
}

type trueTypeFamily struct {
	name    string
	files   FontFiles
	aliases []string
}

// tableRanges lists the non-ASCII code points precomputed for TrueType faces:
// Latin-1 Supplement, Latin Extended-A and General Punctuation.
var tableRanges = [][2]rune{
	{0x00A0, 0x00FF},
	{0x0100, 0x017F},
	{0x2010, 0x2027},
}

func goFontFamilies() []trueTypeFamily {
	return []trueTypeFamily{
		{
			name: FamilyGo,
			files: FontFiles{
				Regular:    goregular.TTF,
				Bold:       gobold.TTF,
				Italic:     goitalic.TTF,
				BoldItalic: gobolditalic.TTF,
			},
			aliases: []string{"go regular", "gofont"},
		},
		{
			name: FamilyGoMono,
			files: FontFiles{
				Regular:    gomono.TTF,
				Bold:       gomonobold.TTF,
				Italic:     gomonoitalic.TTF,
				BoldItalic: gomonobolditalic.TTF,
			},
			aliases: []string{"gomono"},
		},
	}
}

func loadTrueTypeFamily(name string, files FontFiles) (*family, error) {
	if len(files.Regular) == 0 {
		return nil, &FontError{Family: name, Message: "regular face is required"}
	}

	regular, err := parseTrueType(name, files.Regular)
	if err != nil {
		return nil, err
	}

	load := func(data []byte, fallback *widthTable) (*widthTable, error) {
		if len(data) == 0 {
			return fallback, nil
		}
		return parseTrueType(name, data)
	}

	bold, err := load(files.Bold, regular)
	if err != nil {
		return nil, err
	}
	italic, err := load(files.Italic, regular)
	if err != nil {
		return nil, err
	}
	boldItalic, err := load(files.BoldItalic, bold)
	if err != nil {
		return nil, err
	}

	return &family{
		name:  name,
		faces: [4]*widthTable{regular, bold, italic, boldItalic},
	}, nil
}

// parseTrueType reads advance widths in font units. Requesting advances at a
// ppem equal to the units per em makes the returned 26.6 values font units.
func parseTrueType(name string, data []byte) (*widthTable, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, &FontError{Family: name, Message: "failed to parse font data", Cause: err}
	}

	upem := f.UnitsPerEm()
	ppem := fixed.I(int(upem))
	var buf sfnt.Buffer

	advance := func(r rune) (float64, bool, error) {
		idx, err := f.GlyphIndex(&buf, r)
		if err != nil {
			return 0, false, err
		}
		if idx == 0 {
			return 0, false, nil
		}
		adv, err := f.GlyphAdvance(&buf, idx, ppem, font.HintingNone)
		if err != nil {
			return 0, false, err
		}
		return float64(adv) / 64, true, nil
	}

	t := &widthTable{
		unitsPerEm: float64(upem),
		extra:      make(map[rune]float64),
	}

	notdef, err := f.GlyphAdvance(&buf, 0, ppem, font.HintingNone)
	if err == nil && notdef > 0 {
		t.missing = float64(notdef) / 64
	} else {
		t.missing = t.unitsPerEm / 2
	}

	for r := rune(asciiFirst); r <= asciiLast; r++ {
		w, ok, err := advance(r)
		if err != nil {
			return nil, &FontError{Family: name, Message: "failed to read glyph advance", Cause: err}
		}
		if !ok {
			w = t.missing
		}
		t.ascii[r-asciiFirst] = w
	}

	for _, rng := range tableRanges {
		for r := rng[0]; r <= rng[1]; r++ {
			w, ok, err := advance(r)
			if err != nil {
				return nil, &FontError{Family: name, Message: "failed to read glyph advance", Cause: err}
			}
			if ok {
				t.extra[r] = w
			}
		}
	}
	// Bullets are not in the ranges above but appear in nearly every resume
	if w, ok, err := advance('•'); err == nil && ok {
		t.extra['•'] = w
	}

	return t, nil
}
