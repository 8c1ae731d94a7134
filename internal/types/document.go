// Package types provides type definitions for structured data used throughout the resume-layout system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"

	"github.com/google/uuid"
)

// bulletNamespace seeds deterministic bullet IDs
var bulletNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("resume-layout/bullet"))

// Document is the structured resume handed to the layout engine.
// Sections, entries and bullets are laid out in the order given.
type Document struct {
	Header   Header    `json:"header"`
	Sections []Section `json:"sections"`
}

// Header holds the candidate name and contact items shown above the first section
type Header struct {
	Name    string   `json:"name,omitempty"`
	Contact []string `json:"contact,omitempty"`
}

// Entry represents a single experience, project or education item
type Entry struct {
	Title        string   `json:"title"`
	Organization string   `json:"organization,omitempty"`
	Location     string   `json:"location,omitempty"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
	Current      bool     `json:"current,omitempty"`
	Bullets      []Bullet `json:"bullets,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
}

// Bullet represents a single bullet point. Priority is only consulted when
// low-priority bullets may be dropped; higher values are kept longer.
type Bullet struct {
	ID       string  `json:"id,omitempty"`
	Text     string  `json:"text"`
	Priority float64 `json:"priority,omitempty"`
}

// SkillCategory is one row of a skills section
type SkillCategory struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

// IsEmpty reports whether the entry carries no visible content
func (e Entry) IsEmpty() bool {
	return e.Title == "" && e.Organization == "" && e.Location == "" &&
		e.StartDate == "" && e.EndDate == "" && !e.Current &&
		len(e.Bullets) == 0 && len(e.Technologies) == 0
}

// DateRange formats the entry dates as "start – end", using "Present" for current roles
func (e Entry) DateRange() string {
	end := e.EndDate
	if e.Current {
		end = "Present"
	}
	switch {
	case e.StartDate != "" && end != "":
		return e.StartDate + " – " + end
	case e.StartDate != "":
		return e.StartDate
	default:
		return end
	}
}

// BulletRef locates a bullet inside a document. Entry is -1 for bullets of a free-form list.
type BulletRef struct {
	Section int
	Entry   int
	Index   int
	// Order is the position of the bullet among all bullets of the document
	Order int
}

// EachBullet visits every bullet in document order
func (d Document) EachBullet(fn func(ref BulletRef, b Bullet)) {
	order := 0
	for si, s := range d.Sections {
		switch body := s.Body.(type) {
		case EntryList:
			for ei, e := range body.Entries {
				for bi, b := range e.Bullets {
					fn(BulletRef{Section: si, Entry: ei, Index: bi, Order: order}, b)
					order++
				}
			}
		case ItemList:
			for bi, b := range body.Items {
				fn(BulletRef{Section: si, Entry: -1, Index: bi, Order: order}, b)
				order++
			}
		}
	}
}

// BulletCount returns the number of bullets in the document
func (d Document) BulletCount() int {
	n := 0
	d.EachBullet(func(BulletRef, Bullet) { n++ })
	return n
}

// Clone returns a deep copy of the document
func (d Document) Clone() Document {
	out := Document{
		Header: Header{
			Name:    d.Header.Name,
			Contact: append([]string(nil), d.Header.Contact...),
		},
	}
	if d.Sections == nil {
		return out
	}
	out.Sections = make([]Section, len(d.Sections))
	for i, s := range d.Sections {
		out.Sections[i] = Section{Title: s.Title, Body: cloneBody(s.Body)}
	}
	return out
}

func cloneBody(b Body) Body {
	switch body := b.(type) {
	case EntryList:
		entries := make([]Entry, len(body.Entries))
		for i, e := range body.Entries {
			e.Bullets = append([]Bullet(nil), e.Bullets...)
			e.Technologies = append([]string(nil), e.Technologies...)
			entries[i] = e
		}
		return EntryList{Kind: body.Kind, Entries: entries}
	case SkillMap:
		cats := make([]SkillCategory, len(body.Categories))
		for i, c := range body.Categories {
			cats[i] = SkillCategory{Name: c.Name, Skills: append([]string(nil), c.Skills...)}
		}
		return SkillMap{Categories: cats}
	case ItemList:
		return ItemList{Items: append([]Bullet(nil), body.Items...)}
	default:
		return b
	}
}

// WithBulletIDs returns a copy of the document where every bullet without an ID
// receives one derived from its position. The same document always yields the same IDs.
func (d Document) WithBulletIDs() Document {
	out := d.Clone()
	for si := range out.Sections {
		switch body := out.Sections[si].Body.(type) {
		case EntryList:
			for ei := range body.Entries {
				for bi := range body.Entries[ei].Bullets {
					b := &body.Entries[ei].Bullets[bi]
					if b.ID == "" {
						b.ID = bulletID(fmt.Sprintf("%d.%d.%d", si, ei, bi))
					}
				}
			}
		case ItemList:
			for bi := range body.Items {
				b := &body.Items[bi]
				if b.ID == "" {
					b.ID = bulletID(fmt.Sprintf("%d.items.%d", si, bi))
				}
			}
		}
	}
	return out
}

func bulletID(position string) string {
	return uuid.NewSHA1(bulletNamespace, []byte(position)).String()
}
