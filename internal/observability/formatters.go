// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-layout/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, ending in "..." when cut
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-3]) + "..."
}

// PrintLayoutMetrics outputs the fit summary of a layout run.
func (p *Printer) PrintLayoutMetrics(result *types.LayoutResult) {
	if result == nil {
		return
	}
	m := result.Metrics

	var sb strings.Builder
	status := "✓ fits one page"
	if !m.FitsOnePage {
		status = "✗ overflows"
	}
	fmt.Fprintf(&sb, "Status:       %s\n", status)
	fmt.Fprintf(&sb, "Height:       %.1fpt of %.1fpt\n", m.TotalHeight, m.PageContentHeight)
	fmt.Fprintf(&sb, "Compression:  level %d (%d passes)\n", m.CompressionLevel, m.Passes)
	fmt.Fprintf(&sb, "Font:         %s %.1fpt, line height %.2f\n", result.Configuration.FontFamily, m.FontSize, m.LineHeight)
	fmt.Fprintf(&sb, "Spacing:      %.2f\n", m.SpacingMultiplier)
	fmt.Fprintf(&sb, "Elements:     %d", len(result.Elements))

	if len(m.DroppedBullets) > 0 {
		fmt.Fprintf(&sb, "\nDropped:      %d bullet(s)", len(m.DroppedBullets))
	}
	if m.Recommendation != "" {
		sb.WriteString("\n\n")
		sb.WriteString(wrapWords(m.Recommendation, boxWidth-4))
	}

	p.printBox("LAYOUT METRICS", sb.String())
}

// PrintElements outputs the first positioned elements of a layout.
func (p *Printer) PrintElements(result *types.LayoutResult) {
	if result == nil || len(result.Elements) == 0 {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Positioned %d elements:\n\n", len(result.Elements))

	count := min(len(result.Elements), maxItemsToShow)
	for i := 0; i < count; i++ {
		el := result.Elements[i]
		fmt.Fprintf(&sb, "%-10s y=%6.1f h=%5.1f %4.1fpt\n", el.Type, el.Y, el.Height, el.FontSize)
		fmt.Fprintf(&sb, "  %s\n", truncate(el.Text, 45))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(result.Elements) > maxItemsToShow {
		fmt.Fprintf(&sb, "\n... and %d more elements", len(result.Elements)-maxItemsToShow)
	}

	p.printBox("LAYOUT ELEMENTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDroppedBullets outputs the bullets removed to make the layout fit.
func (p *Printer) PrintDroppedBullets(result *types.LayoutResult, original types.Document) {
	if result == nil || len(result.Metrics.DroppedBullets) == 0 {
		return
	}

	texts := make(map[string]string)
	original.WithBulletIDs().EachBullet(func(_ types.BulletRef, b types.Bullet) {
		texts[b.ID] = b.Text
	})

	var sb strings.Builder
	fmt.Fprintf(&sb, "Dropped %d bullets:\n\n", len(result.Metrics.DroppedBullets))

	count := min(len(result.Metrics.DroppedBullets), maxItemsToShow)
	for i := 0; i < count; i++ {
		id := result.Metrics.DroppedBullets[i]
		text, ok := texts[id]
		if !ok {
			text = id
		}
		fmt.Fprintf(&sb, "• %s\n", truncate(text, 50))
	}

	if len(result.Metrics.DroppedBullets) > maxItemsToShow {
		fmt.Fprintf(&sb, "... and %d more bullets", len(result.Metrics.DroppedBullets)-maxItemsToShow)
	}

	p.printBox("DROPPED BULLETS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintViolations outputs any layout violations found.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintViolations(violations *types.Violations) {
	if violations == nil || len(violations.Violations) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO VIOLATIONS FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d violations:\n\n", len(violations.Violations))

	for i, v := range violations.Violations {
		fmt.Fprintf(&sb, "⚠ %s (%s)\n", v.Type, v.Severity)
		fmt.Fprintf(&sb, "  %s\n", truncate(v.Details, 45))
		if i < len(violations.Violations)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("LAYOUT VIOLATIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// wrapWords breaks text into lines of at most width runes
func wrapWords(text string, width int) string {
	var lines []string
	var line string
	for _, word := range strings.Fields(text) {
		switch {
		case line == "":
			line = word
		case utf8.RuneCountInString(line)+1+utf8.RuneCountInString(word) <= width:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
