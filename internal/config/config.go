// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-layout/internal/compression"
	"github.com/jonathan/resume-layout/internal/types"
)

// Environment variables read by ApplyEnv
const (
	EnvFontFamily = "RESUME_LAYOUT_FONT_FAMILY"
	EnvFontSize   = "RESUME_LAYOUT_FONT_SIZE"
)

var validate = validator.New()

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; zero values fall back to the layout defaults.
type Config struct {
	// Typography, sizes in points
	FontFamily      string  `json:"font_family,omitempty"`
	FontSize        float64 `json:"font_size,omitempty" validate:"gte=0"`
	HeadingFontSize float64 `json:"heading_font_size,omitempty" validate:"gte=0"`
	LineHeight      float64 `json:"line_height,omitempty" validate:"gte=0"`

	// Page geometry in inches
	PageWidthIn  float64 `json:"page_width_in,omitempty" validate:"gte=0"`
	PageHeightIn float64 `json:"page_height_in,omitempty" validate:"gte=0"`
	MarginsIn    float64 `json:"margins_in,omitempty" validate:"gte=0"`

	// Compression floors
	LineHeightFloor float64 `json:"line_height_floor,omitempty" validate:"gte=0"`
	SpacingFloor    float64 `json:"spacing_floor,omitempty" validate:"gte=0,lte=1"`
	FontFloor       float64 `json:"font_floor,omitempty" validate:"gte=0"`

	// Behavior
	DropLowPriorityBullets bool `json:"drop_low_priority_bullets,omitempty"` // Drop lowest priority bullets when nothing else fits
	Concurrency            int  `json:"concurrency,omitempty" validate:"gte=0"` // Parallel layouts for layout-batch
	Verbose                bool `json:"verbose,omitempty"`                      // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Geometry that only fails in combination (margins wider than the page) is
// reported by the layout configuration instead.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// ApplyEnv overrides font settings from the environment.
// Unset or empty variables leave the configuration unchanged.
func (c *Config) ApplyEnv() error {
	if family := strings.TrimSpace(os.Getenv(EnvFontFamily)); family != "" {
		c.FontFamily = family
	}
	if size := strings.TrimSpace(os.Getenv(EnvFontSize)); size != "" {
		v, err := strconv.ParseFloat(size, 64)
		if err != nil {
			return fmt.Errorf("config error: %s must be a number: %w", EnvFontSize, err)
		}
		c.FontSize = v
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.FontFamily == "" {
		result.FontFamily = defaults.FontFamily
	}

	floats := []struct {
		dst *float64
		src float64
	}{
		{&result.FontSize, defaults.FontSize},
		{&result.HeadingFontSize, defaults.HeadingFontSize},
		{&result.LineHeight, defaults.LineHeight},
		{&result.PageWidthIn, defaults.PageWidthIn},
		{&result.PageHeightIn, defaults.PageHeightIn},
		{&result.MarginsIn, defaults.MarginsIn},
		{&result.LineHeightFloor, defaults.LineHeightFloor},
		{&result.SpacingFloor, defaults.SpacingFloor},
		{&result.FontFloor, defaults.FontFloor},
	}
	for _, f := range floats {
		if *f.dst == 0 {
			*f.dst = f.src
		}
	}

	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ToLayoutConfiguration converts the configuration into layout settings,
// starting from the layout defaults.
func (c *Config) ToLayoutConfiguration() types.LayoutConfiguration {
	lc := types.DefaultLayoutConfiguration()

	if c.FontFamily != "" {
		lc.FontFamily = c.FontFamily
	}
	if c.FontSize > 0 {
		lc.FontSize = c.FontSize
		if c.HeadingFontSize == 0 {
			lc.HeadingFontSize = 0
		}
	}
	if c.HeadingFontSize > 0 {
		lc.HeadingFontSize = c.HeadingFontSize
	}
	if c.LineHeight > 0 {
		lc.LineHeight = c.LineHeight
	}
	if c.PageWidthIn > 0 {
		lc.PageWidth = types.Inches(c.PageWidthIn)
	}
	if c.PageHeightIn > 0 {
		lc.PageHeight = types.Inches(c.PageHeightIn)
	}
	if c.MarginsIn > 0 {
		m := types.Inches(c.MarginsIn)
		lc.MarginTop, lc.MarginBottom, lc.MarginLeft, lc.MarginRight = m, m, m, m
	}
	lc.DropLowPriorityBullets = c.DropLowPriorityBullets

	return lc
}

// Policy returns the default compression policy with any configured floors applied
func (c *Config) Policy() compression.Policy {
	p := compression.DefaultPolicy()
	if c.LineHeightFloor > 0 {
		p.LineHeightFloor = c.LineHeightFloor
	}
	if c.SpacingFloor > 0 {
		p.SpacingFloor = c.SpacingFloor
	}
	if c.FontFloor > 0 {
		p.FontFloor = c.FontFloor
	}
	return p
}
