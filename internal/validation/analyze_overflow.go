// Package validation checks computed layouts and estimates how much content must go when a page overflows.
package validation

import "math"

const (
	// defaultLinesPerBullet is assumed when the layout has no bullets to average over
	defaultLinesPerBullet = 2.0
	// fitTolerance absorbs floating point noise when comparing heights
	fitTolerance = 1e-9
)

// OverflowAnalysis contains the results of analyzing page overflow
type OverflowAnalysis struct {
	ExcessHeight  float64 // Points past the bottom of the content box
	ExcessLines   int     // Body lines that need to be removed
	ExcessBullets float64 // Estimated bullets that need to be removed
	CanShorten    bool    // Less than one bullet's worth of lines over
	MustDrop      bool    // Any overflow remains once compression is exhausted
}

// AnalyzeOverflow estimates how many lines and bullets must be removed for a
// layout of totalHeight to fit into pageHeight. bulletLines holds the wrapped
// line count of every bullet in the layout.
func AnalyzeOverflow(totalHeight, pageHeight, lineHeight float64, bulletLines []int) *OverflowAnalysis {
	analysis := &OverflowAnalysis{}

	if totalHeight <= pageHeight+fitTolerance || lineHeight <= 0 {
		return analysis
	}

	analysis.ExcessHeight = totalHeight - pageHeight
	analysis.ExcessLines = LinesToRemove(totalHeight, pageHeight, lineHeight)

	avgLinesPerBullet := averageLines(bulletLines)
	if avgLinesPerBullet <= 0 {
		avgLinesPerBullet = defaultLinesPerBullet
	}
	analysis.ExcessBullets = float64(analysis.ExcessLines) / avgLinesPerBullet

	analysis.MustDrop = analysis.ExcessLines > 0
	analysis.CanShorten = analysis.ExcessBullets < 1.0

	return analysis
}

// LinesToRemove returns how many lines of lineHeight must go for totalHeight to
// fit into pageHeight. It is 0 when the content already fits.
func LinesToRemove(totalHeight, pageHeight, lineHeight float64) int {
	excess := totalHeight - pageHeight
	if excess <= fitTolerance || lineHeight <= 0 {
		return 0
	}
	n := int(math.Ceil(excess/lineHeight - fitTolerance))
	if n < 1 {
		n = 1
	}
	return n
}

func averageLines(lines []int) float64 {
	if len(lines) == 0 {
		return 0
	}
	total := 0
	for _, n := range lines {
		total += n
	}
	return float64(total) / float64(len(lines))
}

// BulletsToDropCount returns the number of bullets that should be dropped
// to resolve the overflow. Returns 0 if no drops are needed.
func (a *OverflowAnalysis) BulletsToDropCount() int {
	if a == nil || !a.MustDrop {
		return 0
	}
	return int(math.Ceil(a.ExcessBullets))
}
