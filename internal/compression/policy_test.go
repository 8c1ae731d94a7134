package compression

import (
	"errors"
	"testing"

	"github.com/jonathan/resume-layout/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvance(t *testing.T) {
	assert.Equal(t, Level(1), Advance(0))
	assert.Equal(t, Level(4), Advance(3))
	assert.Equal(t, MaxLevel, Advance(MaxLevel))
	assert.Equal(t, Level(0), Advance(-3))

	assert.False(t, Level(3).IsTerminal())
	assert.True(t, MaxLevel.IsTerminal())
	assert.Equal(t, "level 2", Level(2).String())
}

func TestDefaultPolicy_IsValid(t *testing.T) {
	p := DefaultPolicy()
	require.NoError(t, p.Validate())
	assert.Equal(t, MaxLevel, p.MaxLevel())
}

func TestConfigure_DefaultLevels(t *testing.T) {
	p := DefaultPolicy()
	base := types.DefaultLayoutConfiguration()

	tests := []struct {
		level      Level
		lineHeight float64
		spacing    float64
		indent     float64
		fontSize   float64
		heading    float64
	}{
		{level: 0, lineHeight: 1.2, spacing: 1, indent: 18, fontSize: 10, heading: 12},
		{level: 1, lineHeight: 1.15, spacing: 1, indent: 18, fontSize: 10, heading: 12},
		{level: 2, lineHeight: 1.1, spacing: 0.8, indent: 18, fontSize: 10, heading: 12},
		{level: 3, lineHeight: 1.1, spacing: 0.65, indent: 14.4, fontSize: 10, heading: 12},
		{level: 4, lineHeight: 1.1, spacing: 0.5, indent: 14.4, fontSize: 9.5, heading: 11},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			s := p.Configure(base, tt.level)
			assert.Equal(t, tt.level, s.Level)
			assert.InDelta(t, tt.lineHeight, s.Config.LineHeight, 1e-9)
			assert.InDelta(t, tt.spacing, s.Spacing, 1e-9)
			assert.InDelta(t, base.SectionMargin*tt.spacing, s.Config.SectionMargin, 1e-9)
			assert.InDelta(t, base.ParagraphMargin*tt.spacing, s.Config.ParagraphMargin, 1e-9)
			assert.InDelta(t, tt.indent, s.Config.BulletIndent, 1e-9)
			assert.InDelta(t, tt.fontSize, s.Config.FontSize, 1e-9)
			assert.InDelta(t, tt.heading, s.Config.HeadingFontSize, 1e-9)

			// Geometry is never touched
			assert.Equal(t, base.PageWidth, s.Config.PageWidth)
			assert.Equal(t, base.MarginLeft, s.Config.MarginLeft)
		})
	}
}

func TestConfigure_ClampsLevel(t *testing.T) {
	p := DefaultPolicy()
	base := types.DefaultLayoutConfiguration()

	assert.Equal(t, p.Configure(base, MaxLevel), p.Configure(base, 12))
	assert.Equal(t, p.Configure(base, 0), p.Configure(base, -1))
}

func TestConfigure_MonotonicAcrossLevels(t *testing.T) {
	p := DefaultPolicy()

	bases := []types.LayoutConfiguration{types.DefaultLayoutConfiguration()}
	large := types.DefaultLayoutConfiguration()
	large.FontSize, large.HeadingFontSize, large.LineHeight = 12, 16, 1.5
	bases = append(bases, large)
	tight := types.DefaultLayoutConfiguration()
	tight.FontSize, tight.LineHeight = 8.2, 1.0
	bases = append(bases, tight)

	for _, base := range bases {
		prev := p.Configure(base, 0)
		for l := Level(1); l <= p.MaxLevel(); l++ {
			cur := p.Configure(base, l)
			assert.LessOrEqual(t, cur.Config.LineHeight, prev.Config.LineHeight)
			assert.LessOrEqual(t, cur.Spacing, prev.Spacing)
			assert.LessOrEqual(t, cur.Config.SectionMargin, prev.Config.SectionMargin)
			assert.LessOrEqual(t, cur.Config.ParagraphMargin, prev.Config.ParagraphMargin)
			assert.LessOrEqual(t, cur.Config.BulletIndent, prev.Config.BulletIndent)
			assert.LessOrEqual(t, cur.Config.FontSize, prev.Config.FontSize)
			assert.LessOrEqual(t, cur.Config.HeadingFontSize, prev.Config.HeadingFontSize)
			prev = cur
		}
	}
}

func TestConfigure_EnforcesFloors(t *testing.T) {
	p := Policy{
		Steps: []Step{
			{Spacing: 1, IndentScale: 1},
			{LineHeight: 0.9, Spacing: 0.2, IndentScale: 1, FontDelta: -5, HeadingDelta: -10},
		},
		LineHeightFloor: 1.1,
		SpacingFloor:    0.5,
		FontFloor:       8,
	}
	base := types.DefaultLayoutConfiguration()

	s := p.Configure(base, 1)
	assert.InDelta(t, 1.1, s.Config.LineHeight, 1e-9)
	assert.InDelta(t, 0.5, s.Spacing, 1e-9)
	assert.InDelta(t, 8.0, s.Config.FontSize, 1e-9)
	assert.InDelta(t, 8.0, s.Config.HeadingFontSize, 1e-9)
}

func TestConfigure_FloorsNeverRaiseBase(t *testing.T) {
	p := DefaultPolicy()
	base := types.DefaultLayoutConfiguration()
	base.FontSize = 7
	base.HeadingFontSize = 7.5
	base.LineHeight = 1.0

	for l := Level(0); l <= p.MaxLevel(); l++ {
		s := p.Configure(base, l)
		assert.LessOrEqual(t, s.Config.FontSize, 7.0)
		assert.LessOrEqual(t, s.Config.HeadingFontSize, 7.5)
		assert.InDelta(t, 1.0, s.Config.LineHeight, 1e-9)
	}
}

func TestConfigure_HeadingDefaultsFromBodySize(t *testing.T) {
	base := types.DefaultLayoutConfiguration()
	base.HeadingFontSize = 0

	s := DefaultPolicy().Configure(base, 0)
	assert.InDelta(t, 12.0, s.Config.HeadingFontSize, 1e-9)
}

func TestValidate_RejectsBadPolicies(t *testing.T) {
	valid := DefaultPolicy

	tests := []struct {
		name    string
		mutate  func(p *Policy)
		level   int
		message string
	}{
		{
			name:    "no steps",
			mutate:  func(p *Policy) { p.Steps = nil },
			level:   -1,
			message: "at least one step",
		},
		{
			name:    "spacing floor above one",
			mutate:  func(p *Policy) { p.SpacingFloor = 1.5 },
			level:   -1,
			message: "spacing floor",
		},
		{
			name:    "zero font floor",
			mutate:  func(p *Policy) { p.FontFloor = 0 },
			level:   -1,
			message: "font floor",
		},
		{
			name:    "level 0 compresses",
			mutate:  func(p *Policy) { p.Steps[0].Spacing = 0.9 },
			level:   0,
			message: "level 0 must not compress",
		},
		{
			name:    "line height goes back up",
			mutate:  func(p *Policy) { p.Steps[2].LineHeight = 1.18 },
			level:   2,
			message: "line height increases",
		},
		{
			name:    "spacing goes back up",
			mutate:  func(p *Policy) { p.Steps[4].Spacing = 0.7 },
			level:   4,
			message: "spacing increases",
		},
		{
			name:    "early font change",
			mutate:  func(p *Policy) { p.Steps[2].FontDelta = -0.5 },
			level:   2,
			message: "final level",
		},
		{
			name:    "font grows",
			mutate:  func(p *Policy) { p.Steps[4].FontDelta = 1 },
			level:   4,
			message: "must not be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid()
			tt.mutate(&p)

			err := p.Validate()
			require.Error(t, err)

			var policyErr *PolicyError
			require.True(t, errors.As(err, &policyErr))
			assert.Equal(t, tt.level, policyErr.Level)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}
