package layout

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-layout/internal/types"
)

// ValidateDocument checks the document and configuration the same way Layout does
// before any text is measured.
func ValidateDocument(doc types.Document, cfg types.LayoutConfiguration) error {
	if err := cfg.Validate(); err != nil {
		return &InvalidDocumentError{Field: "configuration", Message: "invalid layout configuration", Cause: err}
	}

	for i, s := range doc.Sections {
		if strings.TrimSpace(s.Title) == "" && !s.HasContent() {
			return &InvalidDocumentError{
				Field:   fmt.Sprintf("sections[%d]", i),
				Message: "section has neither a title nor content",
			}
		}
		if skills, ok := s.Body.(types.SkillMap); ok {
			for j, c := range skills.Categories {
				if strings.TrimSpace(c.Name) == "" {
					return &InvalidDocumentError{
						Field:   fmt.Sprintf("sections[%d].skills[%d]", i, j),
						Message: "skill category name is required",
					}
				}
			}
		}
	}
	return checkBulletIDs(doc)
}

// checkBulletIDs rejects explicit bullet IDs used more than once, since drops
// are addressed by ID
func checkBulletIDs(doc types.Document) error {
	seen := make(map[string]string)
	var err error
	doc.EachBullet(func(ref types.BulletRef, b types.Bullet) {
		if err != nil || b.ID == "" {
			return
		}
		field := bulletField(ref)
		if first, ok := seen[b.ID]; ok {
			err = &InvalidDocumentError{
				Field:   field,
				Message: fmt.Sprintf("bullet id %q is already used by %s", b.ID, first),
			}
			return
		}
		seen[b.ID] = field
	})
	return err
}

func bulletField(ref types.BulletRef) string {
	if ref.Entry < 0 {
		return fmt.Sprintf("sections[%d].items[%d]", ref.Section, ref.Index)
	}
	return fmt.Sprintf("sections[%d].entries[%d].bullets[%d]", ref.Section, ref.Entry, ref.Index)
}
