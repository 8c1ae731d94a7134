// Package types provides type definitions for structured data used throughout the resume-layout system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// PointsPerInch converts inches to PDF points
const PointsPerInch = 72.0

var validate = validator.New()

// Inches converts a length in inches to points
func Inches(in float64) float64 {
	return in * PointsPerInch
}

// LayoutConfiguration is the geometry and typography used for one layout attempt.
// All lengths are in points.
type LayoutConfiguration struct {
	FontFamily      string  `json:"font_family"`
	FontSize        float64 `json:"font_size" validate:"gt=0"`
	HeadingFontSize float64 `json:"heading_font_size" validate:"gte=0"` // 0 means FontSize + 2
	LineHeight      float64 `json:"line_height" validate:"gt=0"`        // multiplier of the font size
	SectionMargin   float64 `json:"section_margin" validate:"gte=0"`
	ParagraphMargin float64 `json:"paragraph_margin" validate:"gte=0"`
	BulletIndent    float64 `json:"bullet_indent" validate:"gte=0"`

	PageWidth    float64 `json:"page_width" validate:"gt=0"`
	PageHeight   float64 `json:"page_height" validate:"gt=0"`
	MarginTop    float64 `json:"margin_top" validate:"gte=0"`
	MarginBottom float64 `json:"margin_bottom" validate:"gte=0"`
	MarginLeft   float64 `json:"margin_left" validate:"gte=0"`
	MarginRight  float64 `json:"margin_right" validate:"gte=0"`

	// DropLowPriorityBullets allows the engine to remove the lowest priority
	// bullets when the most compressed level still overflows.
	DropLowPriorityBullets bool `json:"drop_low_priority_bullets,omitempty"`
}

// DefaultLayoutConfiguration returns a letter page with half inch margins and 10pt Helvetica.
func DefaultLayoutConfiguration() LayoutConfiguration {
	return LayoutConfiguration{
		FontFamily:      "Helvetica",
		FontSize:        10,
		HeadingFontSize: 12,
		LineHeight:      1.2,
		SectionMargin:   Inches(0.15),
		ParagraphMargin: Inches(0.08),
		BulletIndent:    Inches(0.25),
		PageWidth:       Inches(8.5),
		PageHeight:      Inches(11),
		MarginTop:       Inches(0.5),
		MarginBottom:    Inches(0.5),
		MarginLeft:      Inches(0.5),
		MarginRight:     Inches(0.5),
	}
}

// ContentWidth is the page width inside the left and right margins
func (c LayoutConfiguration) ContentWidth() float64 {
	return c.PageWidth - c.MarginLeft - c.MarginRight
}

// ContentHeight is the page height inside the top and bottom margins
func (c LayoutConfiguration) ContentHeight() float64 {
	return c.PageHeight - c.MarginTop - c.MarginBottom
}

// HeadingSize returns the section heading font size
func (c LayoutConfiguration) HeadingSize() float64 {
	if c.HeadingFontSize > 0 {
		return c.HeadingFontSize
	}
	return c.FontSize + 2
}

// LineHeightPoints is the height of one body text line
func (c LayoutConfiguration) LineHeightPoints() float64 {
	return c.FontSize * c.LineHeight
}

// Validate checks field ranges and that the margins leave a usable content box.
func (c LayoutConfiguration) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.ContentWidth() <= 0 {
		return fmt.Errorf("content width must be positive, got %.2fpt", c.ContentWidth())
	}
	if c.ContentHeight() <= 0 {
		return fmt.Errorf("content height must be positive, got %.2fpt", c.ContentHeight())
	}
	if c.BulletIndent >= c.ContentWidth() {
		return fmt.Errorf("bullet indent %.2fpt leaves no room in %.2fpt content width", c.BulletIndent, c.ContentWidth())
	}
	return nil
}

// ElementType identifies how a positioned element should be drawn
type ElementType string

const (
	ElementHeading    ElementType = "heading"
	ElementSubheading ElementType = "subheading"
	ElementText       ElementType = "text"
	ElementBullet     ElementType = "bullet"
)

// LayoutElement is a positioned block. Coordinates are relative to the top-left
// corner of the content box, y grows downwards.
type LayoutElement struct {
	Type     ElementType `json:"type"`
	Text     string      `json:"text"`
	Lines    []string    `json:"lines,omitempty"`
	X        float64     `json:"x"`
	Y        float64     `json:"y"`
	Width    float64     `json:"width"`
	Height   float64     `json:"height"`
	FontSize float64     `json:"font_size"`
	Bold     bool        `json:"bold,omitempty"`
	Italic   bool        `json:"italic,omitempty"`
	BulletID string      `json:"bullet_id,omitempty"`
}

// Bottom returns the y coordinate of the lower edge
func (e LayoutElement) Bottom() float64 {
	return e.Y + e.Height
}

// LayoutMetrics summarizes a layout run
type LayoutMetrics struct {
	TotalHeight       float64  `json:"total_height"`
	PageContentHeight float64  `json:"page_content_height"`
	FitsOnePage       bool     `json:"fits_one_page"`
	CompressionLevel  int      `json:"compression_level"`
	FontSize          float64  `json:"font_size"`
	LineHeight        float64  `json:"line_height"`
	SpacingMultiplier float64  `json:"spacing_multiplier"`
	Passes            int      `json:"passes"`
	LinesToRemove     int      `json:"lines_to_remove,omitempty"`
	Recommendation    string   `json:"recommendation,omitempty"`
	DroppedBullets    []string `json:"dropped_bullets,omitempty"`
}

// LayoutResult is the ordered element sequence plus the configuration it was computed with
type LayoutResult struct {
	Elements      []LayoutElement     `json:"elements"`
	Metrics       LayoutMetrics       `json:"metrics"`
	Configuration LayoutConfiguration `json:"configuration"`
}
