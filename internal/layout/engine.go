// Package layout positions a structured resume on a single page, compressing
// typography and spacing level by level until the content fits.
package layout

import (
	"fmt"

	"github.com/jonathan/resume-layout/internal/compression"
	"github.com/jonathan/resume-layout/internal/fontmetrics"
	"github.com/jonathan/resume-layout/internal/repair"
	"github.com/jonathan/resume-layout/internal/textmeasure"
	"github.com/jonathan/resume-layout/internal/types"
	"github.com/jonathan/resume-layout/internal/validation"
)

// fitTolerance absorbs floating point noise in the page fit comparison
const fitTolerance = 1e-9

// Engine lays out documents. It holds only read-only state and may be used
// from multiple goroutines at once.
type Engine struct {
	measurer *textmeasure.Measurer
	policy   compression.Policy
}

// Option configures an Engine
type Option func(*Engine)

// WithProvider measures text with p instead of the default font registry
func WithProvider(p fontmetrics.Provider) Option {
	return func(e *Engine) {
		e.measurer = textmeasure.New(p)
	}
}

// WithPolicy replaces the default compression table
func WithPolicy(p compression.Policy) Option {
	return func(e *Engine) {
		e.policy = p
	}
}

// New creates an Engine with the default font registry and compression policy
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		measurer: textmeasure.New(nil),
		policy:   compression.DefaultPolicy(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.policy.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create layout engine: %w", err)
	}
	return e, nil
}

// Policy returns the compression policy used by the engine
func (e *Engine) Policy() compression.Policy {
	return e.policy
}

// Layout computes the positioned elements of doc under cfg.
//
// Compression levels are tried in order and the first one whose content fits
// the page is kept. When even the last level overflows, the result is
// returned with FitsOnePage unset and a recommendation; when
// cfg.DropLowPriorityBullets is set, the lowest priority bullets are removed
// first until the content fits or no bullets remain.
//
// Errors are returned only for invalid input, never for content that does not fit.
func (e *Engine) Layout(doc types.Document, cfg types.LayoutConfiguration) (*types.LayoutResult, error) {
	if err := ValidateDocument(doc, cfg); err != nil {
		return nil, err
	}
	doc = doc.WithBulletIDs()
	log := Logger()

	var (
		result *types.LayoutResult
		passes int
	)
	for level := compression.Level(0); ; level++ {
		attempt, err := e.attempt(doc, cfg, e.policy.Configure(cfg, level))
		if err != nil {
			return nil, err
		}
		passes++
		result = attempt

		log.Debug("layout attempt",
			"compression_level", int(level),
			"total_height", attempt.Metrics.TotalHeight,
			"page_height", attempt.Metrics.PageContentHeight,
			"fits", attempt.Metrics.FitsOnePage)

		if attempt.Metrics.FitsOnePage || level >= e.policy.MaxLevel() {
			break
		}
	}

	var dropped []string
	if !result.Metrics.FitsOnePage && cfg.DropLowPriorityBullets && doc.BulletCount() > 0 {
		final := e.policy.Configure(cfg, e.policy.MaxLevel())
		loop, err := repair.RunDropLoop(doc, result, func(d types.Document) (*types.LayoutResult, error) {
			passes++
			return e.attempt(d, cfg, final)
		})
		if err != nil {
			return nil, err
		}
		result = loop.Result
		dropped = loop.Dropped
		log.Debug("dropped low priority bullets", "count", len(dropped), "fits", result.Metrics.FitsOnePage)
	}

	result.Metrics.Passes = passes
	result.Metrics.DroppedBullets = dropped
	if !result.Metrics.FitsOnePage {
		recommend(&result.Metrics)
	}

	log.Info("layout complete",
		"compression_level", result.Metrics.CompressionLevel,
		"fits", result.Metrics.FitsOnePage,
		"total_height", result.Metrics.TotalHeight,
		"passes", passes)

	return result, nil
}

// attempt lays out doc once with the settings of a single compression level
func (e *Engine) attempt(doc types.Document, base types.LayoutConfiguration, s compression.Settings) (*types.LayoutResult, error) {
	b := newBuilder(e.measurer, s.Config)
	if err := b.document(doc); err != nil {
		return nil, err
	}

	page := base.ContentHeight()
	elements := b.elements
	if elements == nil {
		elements = []types.LayoutElement{}
	}

	return &types.LayoutResult{
		Elements:      elements,
		Configuration: base,
		Metrics: types.LayoutMetrics{
			TotalHeight:       b.bottom,
			PageContentHeight: page,
			FitsOnePage:       b.bottom <= page+fitTolerance,
			CompressionLevel:  int(s.Level),
			FontSize:          s.Config.FontSize,
			LineHeight:        s.Config.LineHeight,
			SpacingMultiplier: s.Spacing,
		},
	}, nil
}

// recommend fills in how many body lines must go for the content to fit
func recommend(m *types.LayoutMetrics) {
	n := validation.LinesToRemove(m.TotalHeight, m.PageContentHeight, m.FontSize*m.LineHeight)
	m.LinesToRemove = n
	m.Recommendation = fmt.Sprintf(
		"Content is %.1fpt too long at maximum compression. Remove %d line(s) to fit on one page.",
		m.TotalHeight-m.PageContentHeight, n)
}
