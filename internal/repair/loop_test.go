package repair

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jonathan/resume-layout/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stackedLayout places every bullet as one 10pt line in a 25pt tall page
func stackedLayout(doc types.Document) (*types.LayoutResult, error) {
	result := &types.LayoutResult{}
	y := 0.0
	doc.EachBullet(func(_ types.BulletRef, b types.Bullet) {
		result.Elements = append(result.Elements, types.LayoutElement{
			Type: types.ElementBullet, Text: b.Text, Lines: []string{b.Text}, BulletID: b.ID, Y: y, Height: 10,
		})
		y += 10
	})
	result.Metrics = types.LayoutMetrics{
		TotalHeight:       y,
		PageContentHeight: 25,
		FitsOnePage:       y <= 25,
		FontSize:          10,
		LineHeight:        1,
	}
	return result, nil
}

func TestRunDropLoop_DropsUntilFit(t *testing.T) {
	doc := testDocument()
	initial, err := stackedLayout(doc)
	require.NoError(t, err)
	require.False(t, initial.Metrics.FitsOnePage)

	out, err := RunDropLoop(doc, initial, stackedLayout)
	require.NoError(t, err)

	assert.True(t, out.Result.Metrics.FitsOnePage)
	assert.Equal(t, []string{"b2", "a2", "b1"}, out.Dropped)
	assert.Equal(t, 2, out.Document.BulletCount())
	assert.Equal(t, 3, out.Iterations)
}

// linesLayout stacks bullets as 10pt lines, giving each bullet the line count
// in lines (one when absent), on a page of pageLines lines
func linesLayout(lines map[string]int, pageLines int) LayoutFunc {
	return func(doc types.Document) (*types.LayoutResult, error) {
		result := &types.LayoutResult{}
		y := 0.0
		doc.EachBullet(func(_ types.BulletRef, b types.Bullet) {
			n := max(lines[b.ID], 1)
			height := float64(n) * 10
			result.Elements = append(result.Elements, types.LayoutElement{
				Type: types.ElementBullet, Text: b.Text, Lines: make([]string, n), BulletID: b.ID, Y: y, Height: height,
			})
			y += height
		})
		page := float64(pageLines) * 10
		result.Metrics = types.LayoutMetrics{
			TotalHeight:       y,
			PageContentHeight: page,
			FitsOnePage:       y <= page,
			FontSize:          10,
			LineHeight:        1,
		}
		return result, nil
	}
}

func TestRunDropLoop_LongLowPriorityBulletDroppedAlone(t *testing.T) {
	var items []types.Bullet
	for i := 0; i < 20; i++ {
		items = append(items, types.Bullet{ID: fmt.Sprintf("s%02d", i), Text: "short", Priority: 1})
	}
	items = append(items,
		types.Bullet{ID: "low1", Text: "long", Priority: 0.1},
		types.Bullet{ID: "low2", Text: "long", Priority: 0.2},
	)
	doc := types.Document{Sections: []types.Section{{Title: "Highlights", Body: types.ItemList{Items: items}}}}

	// 34 lines of content on a 32 line page
	layout := linesLayout(map[string]int{"low1": 7, "low2": 7}, 32)
	initial, err := layout(doc)
	require.NoError(t, err)
	require.False(t, initial.Metrics.FitsOnePage)

	out, err := RunDropLoop(doc, initial, layout)
	require.NoError(t, err)

	assert.True(t, out.Result.Metrics.FitsOnePage)
	assert.Equal(t, []string{"low1"}, out.Dropped)
	assert.Equal(t, 21, out.Document.BulletCount())
	assert.Equal(t, 1, out.Iterations)
}

func TestRunDropLoop_AlreadyFits(t *testing.T) {
	doc := types.Document{Sections: []types.Section{{
		Title: "Highlights",
		Body:  types.ItemList{Items: []types.Bullet{{ID: "x", Text: "one"}}},
	}}}
	initial, err := stackedLayout(doc)
	require.NoError(t, err)

	out, err := RunDropLoop(doc, initial, stackedLayout)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Iterations)
	assert.Empty(t, out.Dropped)
	assert.Same(t, initial, out.Result)
}

func TestRunDropLoop_StopsWhenNothingLeft(t *testing.T) {
	doc := testDocument()
	initial, err := stackedLayout(doc)
	require.NoError(t, err)

	neverFits := func(d types.Document) (*types.LayoutResult, error) {
		r, err := stackedLayout(d)
		r.Metrics.TotalHeight += 100
		r.Metrics.FitsOnePage = false
		return r, err
	}

	out, err := RunDropLoop(doc, initial, neverFits)
	require.NoError(t, err)
	assert.False(t, out.Result.Metrics.FitsOnePage)
	assert.Equal(t, 0, out.Document.BulletCount())
	assert.Len(t, out.Dropped, 5)
}

func TestRunDropLoop_PropagatesLayoutError(t *testing.T) {
	doc := testDocument()
	initial, err := stackedLayout(doc)
	require.NoError(t, err)

	boom := errors.New("boom")
	_, err = RunDropLoop(doc, initial, func(types.Document) (*types.LayoutResult, error) { return nil, boom })
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestRunDropLoop_NilInitial(t *testing.T) {
	_, err := RunDropLoop(testDocument(), nil, stackedLayout)
	require.Error(t, err)

	var repairErr *Error
	assert.True(t, errors.As(err, &repairErr))
}
