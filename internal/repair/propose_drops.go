// Package repair proposes and applies content changes that make an overflowing document fit one page.
package repair

import (
	"fmt"
	"sort"

	"github.com/jonathan/resume-layout/internal/types"
	"github.com/jonathan/resume-layout/internal/validation"
)

type candidate struct {
	ref     types.BulletRef
	bullet  types.Bullet
	section string
}

// ProposeBulletDrops proposes which bullets to drop based on overflow analysis and bullet priority.
// The lowest priority bullets go first; among equal priorities the one later in the
// document goes first. Bullets without an ID are never proposed.
// Returns an empty list if no drops are needed.
func ProposeBulletDrops(overflow *validation.OverflowAnalysis, doc types.Document) []types.RepairAction {
	numToDrop := overflow.BulletsToDropCount()
	if numToDrop <= 0 {
		return []types.RepairAction{}
	}

	var candidates []candidate
	doc.EachBullet(func(ref types.BulletRef, b types.Bullet) {
		if b.ID == "" {
			return
		}
		candidates = append(candidates, candidate{ref: ref, bullet: b, section: doc.Sections[ref.Section].Title})
	})
	if len(candidates) == 0 {
		return []types.RepairAction{}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].bullet.Priority != candidates[j].bullet.Priority {
			return candidates[i].bullet.Priority < candidates[j].bullet.Priority
		}
		return candidates[i].ref.Order > candidates[j].ref.Order
	})

	if numToDrop > len(candidates) {
		numToDrop = len(candidates)
	}

	dropActions := make([]types.RepairAction, 0, numToDrop)
	for _, c := range candidates[:numToDrop] {
		dropActions = append(dropActions, types.RepairAction{
			Type:     types.ActionDropBullet,
			BulletID: c.bullet.ID,
			Section:  c.section,
			Priority: c.bullet.Priority,
			Reason:   formatDropReason(c, overflow),
		})
	}

	return dropActions
}

// formatDropReason creates a human-readable reason for dropping a bullet
func formatDropReason(c candidate, overflow *validation.OverflowAnalysis) string {
	return fmt.Sprintf(
		"Dropping to resolve page overflow (%.1fpt, %d line(s) over). Bullet priority %.2f, position %d",
		overflow.ExcessHeight,
		overflow.ExcessLines,
		c.bullet.Priority,
		c.ref.Order+1,
	)
}
