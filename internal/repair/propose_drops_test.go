package repair

import (
	"testing"

	"github.com/jonathan/resume-layout/internal/types"
	"github.com/jonathan/resume-layout/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocument() types.Document {
	return types.Document{
		Sections: []types.Section{
			{
				Title: "Experience",
				Body: types.EntryList{Kind: types.KindExperience, Entries: []types.Entry{
					{
						Title:        "Staff Engineer",
						Organization: "Acme",
						Bullets: []types.Bullet{
							{ID: "a1", Text: "Led the storage rewrite", Priority: 0.9},
							{ID: "a2", Text: "Mentored four engineers", Priority: 0.2},
						},
					},
					{
						Title:        "Engineer",
						Organization: "Initech",
						Bullets: []types.Bullet{
							{ID: "b1", Text: "Built the billing service", Priority: 0.5},
							{ID: "b2", Text: "Ran the on-call rotation", Priority: 0.2},
						},
					},
				}},
			},
			{
				Title: "Highlights",
				Body: types.ItemList{Items: []types.Bullet{
					{ID: "h1", Text: "Speaker at GopherCon", Priority: 0.7},
				}},
			},
		},
	}
}

func TestProposeBulletDrops_NoOverflow(t *testing.T) {
	overflow := &validation.OverflowAnalysis{}

	actions := ProposeBulletDrops(overflow, testDocument())

	assert.Empty(t, actions)
}

func TestProposeBulletDrops_NilOverflow(t *testing.T) {
	actions := ProposeBulletDrops(nil, testDocument())

	assert.Empty(t, actions)
}

func TestProposeBulletDrops_LowestPriorityFirst(t *testing.T) {
	overflow := &validation.OverflowAnalysis{
		ExcessHeight:  30,
		ExcessLines:   3,
		ExcessBullets: 2.5,
		MustDrop:      true,
	}

	actions := ProposeBulletDrops(overflow, testDocument())

	require.Len(t, actions, 3)
	// Equal priorities: the later bullet goes first
	assert.Equal(t, "b2", actions[0].BulletID)
	assert.Equal(t, "a2", actions[1].BulletID)
	assert.Equal(t, "b1", actions[2].BulletID)

	for _, a := range actions {
		assert.Equal(t, types.ActionDropBullet, a.Type)
		assert.Equal(t, "Experience", a.Section)
		assert.Contains(t, a.Reason, "30.0pt")
	}
	assert.Equal(t, 0.2, actions[0].Priority)
}

func TestProposeBulletDrops_CapsAtBulletCount(t *testing.T) {
	overflow := &validation.OverflowAnalysis{ExcessLines: 40, ExcessBullets: 20, MustDrop: true}

	actions := ProposeBulletDrops(overflow, testDocument())

	assert.Len(t, actions, 5)
	assert.Equal(t, "a1", actions[4].BulletID)
}

func TestProposeBulletDrops_SkipsBulletsWithoutID(t *testing.T) {
	doc := types.Document{Sections: []types.Section{{
		Title: "Highlights",
		Body:  types.ItemList{Items: []types.Bullet{{Text: "no id"}, {ID: "x", Text: "has id", Priority: 1}}},
	}}}
	overflow := &validation.OverflowAnalysis{ExcessLines: 4, ExcessBullets: 2, MustDrop: true}

	actions := ProposeBulletDrops(overflow, doc)

	require.Len(t, actions, 1)
	assert.Equal(t, "x", actions[0].BulletID)
}

func TestProposeBulletDrops_Deterministic(t *testing.T) {
	overflow := &validation.OverflowAnalysis{ExcessLines: 4, ExcessBullets: 2, MustDrop: true}

	first := ProposeBulletDrops(overflow, testDocument())
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ProposeBulletDrops(overflow, testDocument()))
	}
}
