package layout

import (
	"strings"

	"github.com/jonathan/resume-layout/internal/textmeasure"
	"github.com/jonathan/resume-layout/internal/types"
)

const (
	contactSeparator = " • "
	titleSeparator   = " — "
	metaSeparator    = " | "
	// nameSizeBoost is added to the heading size for the candidate name
	nameSizeBoost = 2.0
	// contactScale shrinks the contact line relative to body text
	contactScale = 0.9
)

// builder appends elements top-down. Every element starts at the bottom of the
// previous one plus the gaps requested since, so elements cannot overlap.
type builder struct {
	measurer *textmeasure.Measurer
	cfg      types.LayoutConfiguration
	elements []types.LayoutElement
	bottom   float64
	pending  float64
}

func newBuilder(m *textmeasure.Measurer, cfg types.LayoutConfiguration) *builder {
	return &builder{measurer: m, cfg: cfg}
}

// space requests a gap before the next element. Gaps before the first element are ignored.
func (b *builder) space(gap float64) {
	if len(b.elements) > 0 {
		b.pending += gap
	}
}

func (b *builder) body() textmeasure.Font {
	return textmeasure.Font{Family: b.cfg.FontFamily, Size: b.cfg.FontSize, LineHeight: b.cfg.LineHeight}
}

func (b *builder) emit(kind types.ElementType, text string, x float64, f textmeasure.Font, bulletID string) error {
	width := b.cfg.ContentWidth() - x
	wrapped, err := b.measurer.Wrap(text, width, f)
	if err != nil {
		return err
	}
	if wrapped.LineCount == 0 {
		return nil
	}

	y := b.bottom + b.pending
	b.elements = append(b.elements, types.LayoutElement{
		Type:     kind,
		Text:     text,
		Lines:    wrapped.Lines,
		X:        x,
		Y:        y,
		Width:    width,
		Height:   wrapped.Height,
		FontSize: f.Size,
		Bold:     f.Bold,
		Italic:   f.Italic,
		BulletID: bulletID,
	})
	b.bottom = y + wrapped.Height
	b.pending = 0
	return nil
}

func (b *builder) document(doc types.Document) error {
	if err := b.header(doc.Header); err != nil {
		return err
	}
	for _, s := range doc.Sections {
		if err := b.section(s); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) header(h types.Header) error {
	if name := strings.TrimSpace(h.Name); name != "" {
		f := b.body()
		f.Size = b.cfg.HeadingSize() + nameSizeBoost
		f.Bold = true
		if err := b.emit(types.ElementHeading, name, 0, f, ""); err != nil {
			return err
		}
	}

	var contact []string
	for _, c := range h.Contact {
		if c = strings.TrimSpace(c); c != "" {
			contact = append(contact, c)
		}
	}
	if len(contact) == 0 {
		return nil
	}
	f := b.body()
	f.Size = b.cfg.FontSize * contactScale
	return b.emit(types.ElementText, strings.Join(contact, contactSeparator), 0, f, "")
}

func (b *builder) section(s types.Section) error {
	b.space(b.cfg.SectionMargin)

	title := strings.TrimSpace(s.Title)
	if title != "" {
		f := b.body()
		f.Size = b.cfg.HeadingSize()
		f.Bold = true
		if err := b.emit(types.ElementHeading, title, 0, f, ""); err != nil {
			return err
		}
	}
	if !s.HasContent() {
		return nil
	}
	if title != "" {
		b.space(b.cfg.ParagraphMargin)
	}

	switch body := s.Body.(type) {
	case types.EntryList:
		first := true
		for _, e := range body.Entries {
			if e.IsEmpty() {
				continue
			}
			if !first {
				b.space(b.cfg.ParagraphMargin)
			}
			first = false
			if err := b.entry(e); err != nil {
				return err
			}
		}
	case types.SkillMap:
		for _, c := range body.Categories {
			if err := b.emit(types.ElementText, skillRow(c), 0, b.body(), ""); err != nil {
				return err
			}
		}
	case types.ItemList:
		for _, item := range body.Items {
			if err := b.bullet(item); err != nil {
				return err
			}
		}
	case types.PlainText:
		return b.emit(types.ElementText, body.Text, 0, b.body(), "")
	}
	return nil
}

func (b *builder) entry(e types.Entry) error {
	bold := b.body()
	bold.Bold = true
	if err := b.emit(types.ElementSubheading, subheading(e), 0, bold, ""); err != nil {
		return err
	}

	italic := b.body()
	italic.Italic = true
	if err := b.emit(types.ElementText, metaLine(e), 0, italic, ""); err != nil {
		return err
	}

	for _, bullet := range e.Bullets {
		if err := b.bullet(bullet); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) bullet(item types.Bullet) error {
	return b.emit(types.ElementBullet, item.Text, b.cfg.BulletIndent, b.body(), item.ID)
}

// subheading joins the title to the organization and location
func subheading(e types.Entry) string {
	place := joinNonEmpty(", ", e.Organization, e.Location)
	return joinNonEmpty(titleSeparator, e.Title, place)
}

// metaLine renders the date range and technologies of an entry
func metaLine(e types.Entry) string {
	return joinNonEmpty(metaSeparator, e.DateRange(), strings.Join(e.Technologies, ", "))
}

func skillRow(c types.SkillCategory) string {
	if len(c.Skills) == 0 {
		return c.Name
	}
	return c.Name + ": " + strings.Join(c.Skills, ", ")
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
