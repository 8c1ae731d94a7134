// Package fontmetrics provides character advance widths and line heights for text measurement.
package fontmetrics

// Advance widths of the printable ASCII range U+0020..U+007E in units of 1/1000 em,
// taken from the Adobe Core 14 AFM files. Rows hold 16 characters.
var (
	helveticaASCII = [...]int{
		278, 278, 355, 556, 556, 889, 667, 191, 333, 333, 389, 584, 278, 333, 278, 278, // space ! " # $ % & ' ( ) * + , - . /
		556, 556, 556, 556, 556, 556, 556, 556, 556, 556, 278, 278, 584, 584, 584, 556, // 0-9 : ; < = > ?
		1015, 667, 667, 722, 722, 667, 611, 778, 722, 278, 500, 667, 556, 833, 722, 778, // @ A-O
		667, 778, 722, 667, 611, 722, 667, 944, 667, 667, 611, 278, 278, 278, 469, 556, // P-Z [ \ ] ^ _
		333, 556, 556, 500, 556, 556, 278, 556, 556, 222, 222, 500, 222, 833, 556, 556, // ` a-o
		556, 556, 333, 500, 278, 556, 500, 722, 500, 500, 500, 334, 260, 334, 584, // p-z { | } ~
	}

	helveticaBoldASCII = [...]int{
		278, 333, 474, 556, 556, 889, 722, 238, 333, 333, 389, 584, 278, 333, 278, 278,
		556, 556, 556, 556, 556, 556, 556, 556, 556, 556, 333, 333, 584, 584, 584, 611,
		975, 722, 722, 722, 722, 667, 611, 778, 722, 278, 556, 722, 611, 833, 722, 778,
		667, 778, 722, 667, 611, 722, 667, 944, 667, 667, 611, 333, 278, 333, 584, 556,
		333, 556, 611, 556, 611, 556, 333, 611, 611, 278, 278, 556, 278, 889, 611, 611,
		611, 611, 389, 556, 333, 611, 556, 778, 556, 556, 500, 389, 280, 389, 584,
	}

	timesRomanASCII = [...]int{
		250, 333, 408, 500, 500, 833, 778, 180, 333, 333, 500, 564, 250, 333, 250, 278,
		500, 500, 500, 500, 500, 500, 500, 500, 500, 500, 278, 278, 564, 564, 564, 444,
		921, 722, 667, 667, 722, 611, 556, 722, 722, 333, 389, 722, 611, 889, 722, 722,
		556, 722, 667, 556, 611, 722, 722, 944, 722, 722, 611, 333, 278, 333, 469, 500,
		333, 444, 500, 444, 500, 444, 333, 500, 500, 278, 278, 500, 278, 778, 500, 500,
		500, 500, 333, 389, 278, 500, 500, 722, 500, 500, 444, 480, 200, 480, 541,
	}

	timesBoldASCII = [...]int{
		250, 333, 555, 500, 500, 1000, 833, 278, 333, 333, 500, 570, 250, 333, 250, 278,
		500, 500, 500, 500, 500, 500, 500, 500, 500, 500, 333, 333, 570, 570, 570, 500,
		930, 722, 667, 722, 722, 667, 611, 778, 778, 389, 500, 778, 667, 944, 722, 778,
		611, 778, 722, 556, 667, 722, 722, 1000, 722, 722, 667, 333, 278, 333, 581, 500,
		333, 500, 556, 444, 556, 444, 333, 500, 556, 278, 333, 556, 278, 833, 556, 500,
		556, 556, 444, 389, 333, 556, 500, 722, 500, 500, 444, 394, 220, 394, 520,
	}

	timesItalicASCII = [...]int{
		250, 333, 420, 500, 500, 833, 778, 214, 333, 333, 500, 675, 250, 333, 250, 278,
		500, 500, 500, 500, 500, 500, 500, 500, 500, 500, 333, 333, 675, 675, 675, 500,
		920, 611, 611, 667, 722, 611, 611, 722, 722, 333, 444, 667, 556, 833, 667, 722,
		611, 722, 611, 500, 556, 722, 611, 833, 611, 556, 556, 389, 278, 389, 422, 500,
		333, 500, 500, 444, 500, 444, 278, 500, 500, 278, 278, 444, 278, 722, 500, 500,
		500, 500, 389, 389, 278, 500, 444, 667, 444, 444, 389, 400, 275, 400, 541,
	}
)

// Advances for punctuation outside ASCII that resumes use routinely
var (
	helveticaExtra = map[rune]int{
		' ': 278, '©': 737, '®': 737, '°': 400, '·': 278,
		'–': 556, '—': 1000, '‘': 222, '’': 222, '“': 333,
		'”': 333, '•': 350, '…': 1000,
	}

	helveticaBoldExtra = map[rune]int{
		' ': 278, '©': 737, '®': 737, '°': 400, '·': 278,
		'–': 556, '—': 1000, '‘': 278, '’': 278, '“': 500,
		'”': 500, '•': 350, '…': 1000,
	}

	timesRomanExtra = map[rune]int{
		' ': 250, '©': 760, '®': 760, '°': 400, '·': 250,
		'–': 500, '—': 1000, '‘': 333, '’': 333, '“': 444,
		'”': 444, '•': 350, '…': 1000,
	}

	timesBoldExtra = map[rune]int{
		' ': 250, '©': 747, '®': 747, '°': 400, '·': 250,
		'–': 500, '—': 1000, '‘': 333, '’': 333, '“': 500,
		'”': 500, '•': 350, '…': 1000,
	}

	timesItalicExtra = map[rune]int{
		' ': 250, '©': 760, '®': 760, '°': 400, '·': 250,
		'–': 500, '—': 889, '‘': 333, '’': 333, '“': 556,
		'”': 556, '•': 350, '…': 889,
	}
)

const (
	afmUnitsPerEm = 1000
	courierAdvance = 600
)

// afmTable builds a width table from an ASCII advance list and extra punctuation.
// The advance of 'n' is used for glyphs the table does not cover.
func afmTable(ascii []int, extra map[rune]int) *widthTable {
	if len(ascii) != asciiCount {
		panic("fontmetrics: ASCII advance table must cover U+0020..U+007E")
	}
	t := &widthTable{
		unitsPerEm: afmUnitsPerEm,
		extra:      make(map[rune]float64, len(extra)),
	}
	for i, w := range ascii {
		t.ascii[i] = float64(w)
	}
	for r, w := range extra {
		t.extra[r] = float64(w)
	}
	t.missing = t.ascii['n'-asciiFirst]
	return t
}

func courierTable() *widthTable {
	t := &widthTable{
		unitsPerEm: afmUnitsPerEm,
		missing:    courierAdvance,
	}
	for i := range t.ascii {
		t.ascii[i] = courierAdvance
	}
	return t
}

func builtinFamilies() []*family {
	helvetica := afmTable(helveticaASCII[:], helveticaExtra)
	helveticaBold := afmTable(helveticaBoldASCII[:], helveticaBoldExtra)
	times := afmTable(timesRomanASCII[:], timesRomanExtra)
	timesBold := afmTable(timesBoldASCII[:], timesBoldExtra)
	timesItalic := afmTable(timesItalicASCII[:], timesItalicExtra)
	courier := courierTable()

	return []*family{
		{
			name: FamilyHelvetica,
			// Helvetica-Oblique shares the upright advances
			faces:   [4]*widthTable{helvetica, helveticaBold, helvetica, helveticaBold},
			aliases: []string{"arial", "sans", "sans-serif", "liberation sans"},
		},
		{
			name:    FamilyTimes,
			faces:   [4]*widthTable{times, timesBold, timesItalic, timesBold},
			aliases: []string{"times-roman", "times new roman", "serif", "georgia", "liberation serif"},
		},
		{
			name:    FamilyCourier,
			faces:   [4]*widthTable{courier, courier, courier, courier},
			aliases: []string{"courier new", "monospace", "mono"},
		},
	}
}
