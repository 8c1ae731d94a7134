// Package repair proposes and applies content changes that make an overflowing document fit one page.
package repair

import (
	"fmt"

	"github.com/jonathan/resume-layout/internal/types"
)

// ApplyDrops applies repair actions deterministically to a copy of doc.
// It returns the updated document and the IDs of the removed bullets in action order.
// The input document is never modified.
func ApplyDrops(doc types.Document, actions []types.RepairAction) (types.Document, []string, error) {
	drops := make(map[string]bool, len(actions))
	order := make([]string, 0, len(actions))
	index := make(map[string]int, len(actions))

	for i, action := range actions {
		switch action.Type {
		case types.ActionDropBullet:
			if action.BulletID == "" {
				return types.Document{}, nil, &ApplyError{Index: i, Message: "bullet_id is required for drop_bullet action"}
			}
			if !drops[action.BulletID] {
				drops[action.BulletID] = true
				index[action.BulletID] = i
				order = append(order, action.BulletID)
			}
		default:
			return types.Document{}, nil, &ApplyError{
				Index:   i,
				Message: fmt.Sprintf("unknown repair action type: %s", action.Type),
			}
		}
	}

	known := make(map[string]int, len(drops))
	doc.EachBullet(func(_ types.BulletRef, b types.Bullet) {
		if drops[b.ID] {
			known[b.ID]++
		}
	})
	for _, id := range order {
		switch n := known[id]; {
		case n == 0:
			return types.Document{}, nil, &ApplyError{Index: index[id], BulletID: id, Message: "not found in document"}
		case n > 1:
			return types.Document{}, nil, &ApplyError{
				Index:    index[id],
				BulletID: id,
				Message:  fmt.Sprintf("shared by %d bullets", n),
			}
		}
	}

	out := doc.Clone()
	for si := range out.Sections {
		switch body := out.Sections[si].Body.(type) {
		case types.EntryList:
			for ei := range body.Entries {
				body.Entries[ei].Bullets = removeBullets(body.Entries[ei].Bullets, drops)
			}
		case types.ItemList:
			out.Sections[si].Body = types.ItemList{Items: removeBullets(body.Items, drops)}
		}
	}

	return out, order, nil
}

// removeBullets filters in place; callers pass slices they own
func removeBullets(bullets []types.Bullet, drops map[string]bool) []types.Bullet {
	kept := bullets[:0]
	for _, b := range bullets {
		if !drops[b.ID] {
			kept = append(kept, b)
		}
	}
	return kept
}
