// Package validation checks computed layouts and estimates how much content must go when a page overflows.
package validation

import (
	"fmt"
	"math"

	"github.com/jonathan/resume-layout/internal/compression"
	"github.com/jonathan/resume-layout/internal/types"
)

// ValidateLayout checks a computed layout against the guarantees renderers rely on:
// elements stay inside the content box and never overlap, compression stayed
// above the policy floors, and the content fits the page.
func ValidateLayout(result *types.LayoutResult, policy compression.Policy) (*types.Violations, error) {
	if result == nil {
		return nil, &Error{Message: "layout result is required"}
	}

	var all []types.Violation
	all = append(all, checkBounds(result)...)
	all = append(all, checkOverlap(result.Elements)...)
	all = append(all, checkFloors(result, policy)...)

	if !result.Metrics.FitsOnePage {
		details := fmt.Sprintf("Content is %.1fpt taller than the %.1fpt content area",
			result.Metrics.TotalHeight-result.Metrics.PageContentHeight, result.Metrics.PageContentHeight)
		if result.Metrics.Recommendation != "" {
			details += ": " + result.Metrics.Recommendation
		}
		all = append(all, types.Violation{
			Type:     types.ViolationPageOverflow,
			Severity: "error",
			Details:  details,
		})
	}

	return &types.Violations{Violations: all}, nil
}

func checkBounds(result *types.LayoutResult) []types.Violation {
	width := result.Configuration.ContentWidth()

	var violations []types.Violation
	for i, el := range result.Elements {
		if el.X < -fitTolerance || el.Y < -fitTolerance || el.X+el.Width > width+fitTolerance {
			violations = append(violations, elementViolation(i, el, types.ViolationOutOfBounds,
				fmt.Sprintf("Element %d spans x=%.2f..%.2f, content width is %.2f", i, el.X, el.X+el.Width, width)))
		}
	}
	return violations
}

func checkOverlap(elements []types.LayoutElement) []types.Violation {
	var violations []types.Violation
	for i := 1; i < len(elements); i++ {
		prev, cur := elements[i-1], elements[i]
		if prev.Bottom() > cur.Y+fitTolerance {
			violations = append(violations, elementViolation(i, cur, types.ViolationElementOverlap,
				fmt.Sprintf("Element %d starts at y=%.2f, before element %d ends at y=%.2f", i, cur.Y, i-1, prev.Bottom())))
		}
	}
	return violations
}

// checkFloors compares the final metrics with the policy floors. A floor only
// applies when the configured base value was at or above it.
func checkFloors(result *types.LayoutResult, policy compression.Policy) []types.Violation {
	cfg := result.Configuration
	m := result.Metrics

	var violations []types.Violation
	floor := func(name string, got, base, limit float64) {
		if got < math.Min(base, limit)-fitTolerance {
			violations = append(violations, types.Violation{
				Type:     types.ViolationFloor,
				Severity: "error",
				Details:  fmt.Sprintf("%s %.2f is below the floor of %.2f", name, got, math.Min(base, limit)),
			})
		}
	}

	floor("Font size", m.FontSize, cfg.FontSize, policy.FontFloor)
	floor("Line height", m.LineHeight, cfg.LineHeight, policy.LineHeightFloor)
	floor("Spacing multiplier", m.SpacingMultiplier, 1, policy.SpacingFloor)

	return violations
}

func elementViolation(index int, el types.LayoutElement, kind, details string) types.Violation {
	v := types.Violation{
		Type:         kind,
		Severity:     "error",
		Details:      details,
		ElementIndex: &index,
		ElementText:  &el.Text,
	}
	if el.BulletID != "" {
		v.BulletID = &el.BulletID
	}
	return v
}
