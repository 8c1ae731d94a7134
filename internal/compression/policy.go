// Package compression defines the ordered compression levels the layout engine
// steps through when a document does not fit on one page.
package compression

import (
	"math"

	"github.com/jonathan/resume-layout/internal/types"
)

// Step describes the adjustments made at one level
type Step struct {
	// LineHeight is the target line-height multiplier. Zero keeps the base value.
	LineHeight float64 `json:"line_height,omitempty"`
	// Spacing scales the section and paragraph margins
	Spacing float64 `json:"spacing"`
	// IndentScale scales the bullet indent
	IndentScale float64 `json:"indent_scale"`
	// FontDelta and HeadingDelta are added to the body and heading font sizes (points, <= 0)
	FontDelta    float64 `json:"font_delta,omitempty"`
	HeadingDelta float64 `json:"heading_delta,omitempty"`
}

// Policy is the ordered table of compression steps plus the floors no level may cross
type Policy struct {
	Steps           []Step  `json:"steps"`
	LineHeightFloor float64 `json:"line_height_floor"`
	SpacingFloor    float64 `json:"spacing_floor"`
	FontFloor       float64 `json:"font_floor"`
}

// Settings is the configuration produced for one level
type Settings struct {
	Level   Level
	Config  types.LayoutConfiguration
	Spacing float64
}

// DefaultPolicy returns the five level table used by the layout engine
func DefaultPolicy() Policy {
	return Policy{
		Steps: []Step{
			{Spacing: 1, IndentScale: 1},
			{LineHeight: 1.15, Spacing: 1, IndentScale: 1},
			{LineHeight: 1.1, Spacing: 0.8, IndentScale: 1},
			{LineHeight: 1.1, Spacing: 0.65, IndentScale: 0.8},
			{LineHeight: 1.1, Spacing: 0.5, IndentScale: 0.8, FontDelta: -0.5, HeadingDelta: -1},
		},
		LineHeightFloor: 1.1,
		SpacingFloor:    0.5,
		FontFloor:       8,
	}
}

// MaxLevel returns the most aggressive level of the policy
func (p Policy) MaxLevel() Level {
	if len(p.Steps) == 0 {
		return 0
	}
	return Level(len(p.Steps) - 1)
}

// Validate checks that level 0 is the identity, that every step is at least as
// aggressive as the previous one, and that the floors are usable.
func (p Policy) Validate() error {
	if len(p.Steps) == 0 {
		return &PolicyError{Level: -1, Message: "at least one step is required"}
	}
	if p.LineHeightFloor <= 0 {
		return &PolicyError{Level: -1, Message: "line height floor must be positive"}
	}
	if p.SpacingFloor <= 0 || p.SpacingFloor > 1 {
		return &PolicyError{Level: -1, Message: "spacing floor must be in (0, 1]"}
	}
	if p.FontFloor <= 0 {
		return &PolicyError{Level: -1, Message: "font floor must be positive"}
	}

	first := p.Steps[0]
	if first.LineHeight != 0 || first.Spacing != 1 || first.IndentScale != 1 || first.FontDelta != 0 || first.HeadingDelta != 0 {
		return &PolicyError{Level: 0, Message: "level 0 must not compress"}
	}

	last := len(p.Steps) - 1
	for i, s := range p.Steps {
		switch {
		case s.LineHeight < 0:
			return &PolicyError{Level: i, Message: "line height must not be negative"}
		case s.Spacing <= 0 || s.Spacing > 1:
			return &PolicyError{Level: i, Message: "spacing must be in (0, 1]"}
		case s.IndentScale <= 0 || s.IndentScale > 1:
			return &PolicyError{Level: i, Message: "indent scale must be in (0, 1]"}
		case s.FontDelta > 0 || s.HeadingDelta > 0:
			return &PolicyError{Level: i, Message: "font deltas must not be positive"}
		case i < last && (s.FontDelta != 0 || s.HeadingDelta != 0):
			return &PolicyError{Level: i, Message: "font size may only change at the final level"}
		}
		if i == 0 {
			continue
		}
		prev := p.Steps[i-1]
		switch {
		case lineTarget(s) > lineTarget(prev):
			return &PolicyError{Level: i, Message: "line height increases"}
		case s.Spacing > prev.Spacing:
			return &PolicyError{Level: i, Message: "spacing increases"}
		case s.IndentScale > prev.IndentScale:
			return &PolicyError{Level: i, Message: "indent scale increases"}
		}
	}
	return nil
}

// Configure derives the configuration for level from base.
//
// Each value is the most aggressive setting of any step up to level, clamped
// at its floor. A floor never raises a base value that already sits below it.
func (p Policy) Configure(base types.LayoutConfiguration, level Level) Settings {
	if level < 0 {
		level = 0
	}
	if level > p.MaxLevel() {
		level = p.MaxLevel()
	}

	lineTargetValue := math.Inf(1)
	spacing, indent := 1.0, 1.0
	fontDelta, headingDelta := 0.0, 0.0
	for _, s := range p.Steps[:level+1] {
		lineTargetValue = math.Min(lineTargetValue, lineTarget(s))
		spacing = math.Min(spacing, s.Spacing)
		indent = math.Min(indent, s.IndentScale)
		fontDelta = math.Min(fontDelta, s.FontDelta)
		headingDelta = math.Min(headingDelta, s.HeadingDelta)
	}

	spacing = math.Max(spacing, p.SpacingFloor)

	cfg := base
	cfg.LineHeight = floored(math.Min(base.LineHeight, lineTargetValue), base.LineHeight, p.LineHeightFloor)
	cfg.SectionMargin = base.SectionMargin * spacing
	cfg.ParagraphMargin = base.ParagraphMargin * spacing
	cfg.BulletIndent = base.BulletIndent * indent
	cfg.FontSize = floored(base.FontSize+fontDelta, base.FontSize, p.FontFloor)
	cfg.HeadingFontSize = floored(base.HeadingSize()+headingDelta, base.HeadingSize(), p.FontFloor)

	return Settings{Level: level, Config: cfg, Spacing: spacing}
}

func lineTarget(s Step) float64 {
	if s.LineHeight == 0 {
		return math.Inf(1)
	}
	return s.LineHeight
}

// floored clamps v at floor unless the base value was already lower
func floored(v, base, floor float64) float64 {
	return math.Max(v, math.Min(base, floor))
}
