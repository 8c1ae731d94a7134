package repair

import (
	"errors"
	"testing"

	"github.com/jonathan/resume-layout/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDrops_RemovesBullets(t *testing.T) {
	doc := testDocument()
	actions := []types.RepairAction{
		{Type: types.ActionDropBullet, BulletID: "b2"},
		{Type: types.ActionDropBullet, BulletID: "h1"},
	}

	updated, dropped, err := ApplyDrops(doc, actions)
	require.NoError(t, err)

	assert.Equal(t, []string{"b2", "h1"}, dropped)
	assert.Equal(t, 3, updated.BulletCount())

	entries := updated.Sections[0].Body.(types.EntryList).Entries
	require.Len(t, entries[1].Bullets, 1)
	assert.Equal(t, "b1", entries[1].Bullets[0].ID)
	assert.Empty(t, updated.Sections[1].Body.(types.ItemList).Items)

	// Entries stay even when all of their bullets are gone
	assert.Len(t, entries, 2)
}

func TestApplyDrops_DoesNotMutateInput(t *testing.T) {
	doc := testDocument()

	_, _, err := ApplyDrops(doc, []types.RepairAction{{Type: types.ActionDropBullet, BulletID: "a1"}})
	require.NoError(t, err)

	assert.Equal(t, testDocument(), doc)
}

func TestApplyDrops_DuplicateActions(t *testing.T) {
	actions := []types.RepairAction{
		{Type: types.ActionDropBullet, BulletID: "a2"},
		{Type: types.ActionDropBullet, BulletID: "a2"},
	}

	updated, dropped, err := ApplyDrops(testDocument(), actions)
	require.NoError(t, err)
	assert.Equal(t, []string{"a2"}, dropped)
	assert.Equal(t, 4, updated.BulletCount())
}

func TestApplyDrops_Errors(t *testing.T) {
	tests := []struct {
		name    string
		actions []types.RepairAction
		message string
	}{
		{
			name:    "unknown bullet",
			actions: []types.RepairAction{{Type: types.ActionDropBullet, BulletID: "missing"}},
			message: "repair action 0: bullet missing: not found in document",
		},
		{
			name:    "missing bullet id",
			actions: []types.RepairAction{{Type: types.ActionDropBullet}},
			message: "bullet_id is required",
		},
		{
			name:    "unknown action type",
			actions: []types.RepairAction{{Type: "shorten_bullet", BulletID: "a1"}},
			message: "unknown repair action type: shorten_bullet",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ApplyDrops(testDocument(), tt.actions)
			require.Error(t, err)

			var applyErr *ApplyError
			require.True(t, errors.As(err, &applyErr))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestApplyDrops_SharedID(t *testing.T) {
	doc := types.Document{Sections: []types.Section{{
		Title: "Highlights",
		Body: types.ItemList{Items: []types.Bullet{
			{ID: "dup", Text: "low", Priority: 0},
			{ID: "keep", Text: "middle", Priority: 1},
			{ID: "dup", Text: "high", Priority: 5},
		}},
	}}}

	_, _, err := ApplyDrops(doc, []types.RepairAction{{Type: types.ActionDropBullet, BulletID: "dup"}})
	require.Error(t, err)

	var applyErr *ApplyError
	require.True(t, errors.As(err, &applyErr))
	assert.Equal(t, "dup", applyErr.BulletID)
	assert.Contains(t, err.Error(), "shared by 2 bullets")
}
