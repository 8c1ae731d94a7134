// Package repair proposes and applies content changes that make an overflowing document fit one page.
package repair

import (
	"fmt"

	"github.com/jonathan/resume-layout/internal/types"
	"github.com/jonathan/resume-layout/internal/validation"
)

// LayoutFunc lays out a document at a fixed configuration
type LayoutFunc func(doc types.Document) (*types.LayoutResult, error)

// LoopResult is the outcome of the drop loop
type LoopResult struct {
	Document   types.Document
	Result     *types.LayoutResult
	Dropped    []string
	Iterations int
}

// RunDropLoop drops the lowest priority bullets until the layout fits or no
// droppable bullets remain. Each iteration removes exactly one bullet and lays
// the document out again, so the dropped set is the shortest prefix of the
// priority order that fits, and the loop ends after at most as many iterations
// as the document has bullets.
func RunDropLoop(doc types.Document, initial *types.LayoutResult, layout LayoutFunc) (*LoopResult, error) {
	if initial == nil {
		return nil, &Error{Message: "initial layout result is required"}
	}

	out := &LoopResult{Document: doc, Result: initial}
	maxIterations := doc.BulletCount()

	for !out.Result.Metrics.FitsOnePage && out.Iterations < maxIterations {
		m := out.Result.Metrics
		analysis := validation.AnalyzeOverflow(m.TotalHeight, m.PageContentHeight, m.FontSize*m.LineHeight, bulletLines(out.Result))

		actions := ProposeBulletDrops(analysis, out.Document)
		if len(actions) == 0 {
			break
		}
		out.Iterations++

		// Bullets differ in height, so only the first proposal is trusted
		updated, dropped, err := ApplyDrops(out.Document, actions[:1])
		if err != nil {
			return nil, fmt.Errorf("failed to apply drops at iteration %d: %w", out.Iterations, err)
		}

		result, err := layout(updated)
		if err != nil {
			return nil, fmt.Errorf("failed to lay out document at iteration %d: %w", out.Iterations, err)
		}

		out.Document = updated
		out.Result = result
		out.Dropped = append(out.Dropped, dropped...)
	}

	return out, nil
}

// bulletLines collects the wrapped line count of every bullet element
func bulletLines(result *types.LayoutResult) []int {
	var lines []int
	for _, el := range result.Elements {
		if el.Type == types.ElementBullet {
			lines = append(lines, len(el.Lines))
		}
	}
	return lines
}
