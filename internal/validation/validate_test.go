package validation

import (
	"errors"
	"testing"

	"github.com/jonathan/resume-layout/internal/compression"
	"github.com/jonathan/resume-layout/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validResult() *types.LayoutResult {
	cfg := types.DefaultLayoutConfiguration()
	return &types.LayoutResult{
		Configuration: cfg,
		Elements: []types.LayoutElement{
			{Type: types.ElementHeading, Text: "Experience", X: 0, Y: 0, Width: cfg.ContentWidth(), Height: 14.4, FontSize: 12, Bold: true},
			{Type: types.ElementSubheading, Text: "Engineer — Acme", X: 0, Y: 20.16, Width: cfg.ContentWidth(), Height: 12, FontSize: 10, Bold: true},
			{Type: types.ElementBullet, Text: "Shipped things", BulletID: "b1", X: 18, Y: 32.16, Width: cfg.ContentWidth() - 18, Height: 12, FontSize: 10},
		},
		Metrics: types.LayoutMetrics{
			TotalHeight:       44.16,
			PageContentHeight: cfg.ContentHeight(),
			FitsOnePage:       true,
			FontSize:          10,
			LineHeight:        1.2,
			SpacingMultiplier: 1,
			Passes:            1,
		},
	}
}

func TestValidateLayout_Clean(t *testing.T) {
	violations, err := ValidateLayout(validResult(), compression.DefaultPolicy())
	require.NoError(t, err)
	assert.Empty(t, violations.Violations)
	assert.False(t, violations.HasErrors())
}

func TestValidateLayout_NilResult(t *testing.T) {
	_, err := ValidateLayout(nil, compression.DefaultPolicy())
	require.Error(t, err)

	var validationErr *Error
	assert.True(t, errors.As(err, &validationErr))
}

func TestValidateLayout_Overlap(t *testing.T) {
	result := validResult()
	result.Elements[2].Y = 30

	violations, err := ValidateLayout(result, compression.DefaultPolicy())
	require.NoError(t, err)
	require.Len(t, violations.Violations, 1)

	v := violations.Violations[0]
	assert.Equal(t, types.ViolationElementOverlap, v.Type)
	require.NotNil(t, v.ElementIndex)
	assert.Equal(t, 2, *v.ElementIndex)
	require.NotNil(t, v.BulletID)
	assert.Equal(t, "b1", *v.BulletID)
}

func TestValidateLayout_OutOfBounds(t *testing.T) {
	result := validResult()
	result.Elements[2].Width = result.Configuration.ContentWidth()

	violations, err := ValidateLayout(result, compression.DefaultPolicy())
	require.NoError(t, err)
	require.Len(t, violations.Violations, 1)
	assert.Equal(t, types.ViolationOutOfBounds, violations.Violations[0].Type)
	require.NotNil(t, violations.Violations[0].BulletID)
	assert.Equal(t, "b1", *violations.Violations[0].BulletID)
}

func TestValidateLayout_Floors(t *testing.T) {
	result := validResult()
	result.Metrics.FontSize = 7.5
	result.Metrics.LineHeight = 1.0
	result.Metrics.SpacingMultiplier = 0.25

	violations, err := ValidateLayout(result, compression.DefaultPolicy())
	require.NoError(t, err)
	require.Len(t, violations.Violations, 3)
	for _, v := range violations.Violations {
		assert.Equal(t, types.ViolationFloor, v.Type)
	}
}

func TestValidateLayout_FloorRespectsLowerBase(t *testing.T) {
	result := validResult()
	result.Configuration.FontSize = 7
	result.Metrics.FontSize = 7

	violations, err := ValidateLayout(result, compression.DefaultPolicy())
	require.NoError(t, err)
	assert.Empty(t, violations.Violations)
}

func TestValidateLayout_PageOverflow(t *testing.T) {
	result := validResult()
	result.Metrics.FitsOnePage = false
	result.Metrics.TotalHeight = result.Metrics.PageContentHeight + 30
	result.Metrics.Recommendation = "Remove 3 line(s) to fit on one page"

	violations, err := ValidateLayout(result, compression.DefaultPolicy())
	require.NoError(t, err)
	require.Len(t, violations.Violations, 1)

	v := violations.Violations[0]
	assert.Equal(t, types.ViolationPageOverflow, v.Type)
	assert.Equal(t, "error", v.Severity)
	assert.Contains(t, v.Details, "30.0pt taller")
	assert.Contains(t, v.Details, "Remove 3 line(s)")
	assert.True(t, violations.HasErrors())
}
