// Package types provides type definitions for structured data used throughout the resume-layout system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// SectionKind names the shape of a section body
type SectionKind string

const (
	KindExperience SectionKind = "experience"
	KindProjects   SectionKind = "projects"
	KindEducation  SectionKind = "education"
	KindEntries    SectionKind = "entries"
	KindSkills     SectionKind = "skills"
	KindList       SectionKind = "list"
	KindText       SectionKind = "text"
)

// Body is the content of a section. It is one of EntryList, SkillMap, ItemList or PlainText.
type Body interface {
	isBody()
}

// EntryList is a section body made of experience, project or education entries
type EntryList struct {
	Kind    SectionKind
	Entries []Entry
}

// SkillMap is an ordered mapping of skill category to skills
type SkillMap struct {
	Categories []SkillCategory
}

// ItemList is a free-form bullet list
type ItemList struct {
	Items []Bullet
}

// PlainText is a paragraph of prose
type PlainText struct {
	Text string
}

func (EntryList) isBody() {}
func (SkillMap) isBody()  {}
func (ItemList) isBody()  {}
func (PlainText) isBody() {}

// Section is a titled part of the document. Body may be nil for a title-only section.
type Section struct {
	Title string
	Body  Body
}

// Kind returns the kind of the section body, or "" when the section has no body
func (s Section) Kind() SectionKind {
	switch body := s.Body.(type) {
	case EntryList:
		if body.Kind == "" {
			return KindEntries
		}
		return body.Kind
	case SkillMap:
		return KindSkills
	case ItemList:
		return KindList
	case PlainText:
		return KindText
	default:
		return ""
	}
}

// HasContent reports whether the section body holds anything to lay out
func (s Section) HasContent() bool {
	switch body := s.Body.(type) {
	case EntryList:
		for _, e := range body.Entries {
			if !e.IsEmpty() {
				return true
			}
		}
		return false
	case SkillMap:
		return len(body.Categories) > 0
	case ItemList:
		for _, item := range body.Items {
			if strings.TrimSpace(item.Text) != "" {
				return true
			}
		}
		return false
	case PlainText:
		return strings.TrimSpace(body.Text) != ""
	default:
		return false
	}
}

type sectionJSON struct {
	Title   string          `json:"title"`
	Kind    SectionKind     `json:"kind,omitempty"`
	Entries []Entry         `json:"entries,omitempty"`
	Skills  json.RawMessage `json:"skills,omitempty"`
	Items   []Bullet        `json:"items,omitempty"`
	Text    *string         `json:"text,omitempty"`
}

// UnmarshalJSON decodes a section, inferring the kind from the payload when it is omitted
func (s *Section) UnmarshalJSON(data []byte) error {
	var raw sectionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if bytes.Equal(bytes.TrimSpace(raw.Skills), []byte("null")) {
		raw.Skills = nil
	}

	kind := raw.Kind
	if kind == "" {
		switch {
		case raw.Entries != nil:
			kind = KindEntries
		case len(raw.Skills) > 0:
			kind = KindSkills
		case raw.Items != nil:
			kind = KindList
		case raw.Text != nil:
			kind = KindText
		}
	}

	s.Title = raw.Title
	s.Body = nil

	switch kind {
	case "":
		return nil
	case KindExperience, KindProjects, KindEducation, KindEntries:
		if len(raw.Skills) > 0 || raw.Items != nil || raw.Text != nil {
			return fmt.Errorf("section %q: kind %q only accepts entries", raw.Title, kind)
		}
		s.Body = EntryList{Kind: kind, Entries: raw.Entries}
	case KindSkills:
		if raw.Entries != nil || raw.Items != nil || raw.Text != nil {
			return fmt.Errorf("section %q: kind %q only accepts skills", raw.Title, kind)
		}
		var skills SkillMap
		if len(raw.Skills) > 0 {
			if err := json.Unmarshal(raw.Skills, &skills); err != nil {
				return fmt.Errorf("section %q: %w", raw.Title, err)
			}
		}
		s.Body = skills
	case KindList:
		if raw.Entries != nil || len(raw.Skills) > 0 || raw.Text != nil {
			return fmt.Errorf("section %q: kind %q only accepts items", raw.Title, kind)
		}
		s.Body = ItemList{Items: raw.Items}
	case KindText:
		if raw.Entries != nil || len(raw.Skills) > 0 || raw.Items != nil {
			return fmt.Errorf("section %q: kind %q only accepts text", raw.Title, kind)
		}
		text := ""
		if raw.Text != nil {
			text = *raw.Text
		}
		s.Body = PlainText{Text: text}
	default:
		return fmt.Errorf("section %q: unknown kind %q", raw.Title, kind)
	}
	return nil
}

// MarshalJSON encodes the section with an explicit kind
func (s Section) MarshalJSON() ([]byte, error) {
	raw := sectionJSON{Title: s.Title, Kind: s.Kind()}
	switch body := s.Body.(type) {
	case EntryList:
		raw.Entries = body.Entries
	case SkillMap:
		skills, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		raw.Skills = skills
	case ItemList:
		raw.Items = body.Items
	case PlainText:
		text := body.Text
		raw.Text = &text
	}
	return json.Marshal(raw)
}

// UnmarshalJSON accepts either an object mapping category to skills (key order is kept)
// or an array of {"name", "skills"} rows. A category value may be a single string.
func (m *SkillMap) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		m.Categories = nil
		return nil
	}
	if len(data) > 0 && data[0] == '[' {
		var rows []SkillCategory
		if err := json.Unmarshal(data, &rows); err != nil {
			return fmt.Errorf("failed to parse skills: %w", err)
		}
		m.Categories = rows
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to parse skills: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("failed to parse skills: expected object or array")
	}

	m.Categories = nil
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("failed to parse skills: %w", err)
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("failed to parse skills: expected category name")
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("failed to parse skills for %q: %w", name, err)
		}
		skills, err := decodeSkillList(value)
		if err != nil {
			return fmt.Errorf("failed to parse skills for %q: %w", name, err)
		}
		m.Categories = append(m.Categories, SkillCategory{Name: name, Skills: skills})
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("failed to parse skills: %w", err)
	}
	return nil
}

func decodeSkillList(value json.RawMessage) ([]string, error) {
	trimmed := bytes.TrimSpace(value)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var single string
		if err := json.Unmarshal(trimmed, &single); err != nil {
			return nil, err
		}
		return []string{single}, nil
	}
	var list []string
	if err := json.Unmarshal(trimmed, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// MarshalJSON encodes the mapping as a JSON object in category order
func (m SkillMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range m.Categories {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c.Name)
		if err != nil {
			return nil, err
		}
		skills := c.Skills
		if skills == nil {
			skills = []string{}
		}
		value, err := json.Marshal(skills)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

type bulletJSON struct {
	ID       string  `json:"id,omitempty"`
	Text     string  `json:"text"`
	Priority float64 `json:"priority,omitempty"`
}

// UnmarshalJSON accepts a bare string or an {"id", "text", "priority"} object
func (b *Bullet) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var text string
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return err
		}
		*b = Bullet{Text: text}
		return nil
	}
	var raw bulletJSON
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return err
	}
	*b = Bullet(raw)
	return nil
}

// MarshalJSON encodes bullets without metadata as plain strings
func (b Bullet) MarshalJSON() ([]byte, error) {
	if b.ID == "" && b.Priority == 0 {
		return json.Marshal(b.Text)
	}
	return json.Marshal(bulletJSON(b))
}

type entryJSON struct {
	Title        string   `json:"title"`
	Organization string   `json:"organization,omitempty"`
	Location     string   `json:"location,omitempty"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
	Current      bool     `json:"current,omitempty"`
	Bullets      []Bullet `json:"bullets,omitempty"`
	Technologies []string `json:"technologies,omitempty"`

	// Aliases produced by upstream parsers
	Company     string `json:"company,omitempty"`
	Institution string `json:"institution,omitempty"`
	School      string `json:"school,omitempty"`
	Name        string `json:"name,omitempty"`
	Role        string `json:"role,omitempty"`
	Degree      string `json:"degree,omitempty"`
}

// UnmarshalJSON decodes an entry, filling title and organization from common aliases
func (e *Entry) UnmarshalJSON(data []byte) error {
	var raw entryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*e = Entry{
		Title:        firstNonEmpty(raw.Title, raw.Role, raw.Degree, raw.Name),
		Organization: firstNonEmpty(raw.Organization, raw.Company, raw.Institution, raw.School),
		Location:     raw.Location,
		StartDate:    raw.StartDate,
		EndDate:      raw.EndDate,
		Current:      raw.Current,
		Bullets:      raw.Bullets,
		Technologies: raw.Technologies,
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
