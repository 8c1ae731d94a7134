package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-layout/internal/config"
	"github.com/jonathan/resume-layout/internal/fontmetrics"
	"github.com/jonathan/resume-layout/internal/layout"
	"github.com/jonathan/resume-layout/internal/schemas"
	"github.com/jonathan/resume-layout/internal/types"
	"github.com/jonathan/resume-layout/internal/validation"
)

// LayoutRequest represents the request body for /layout
type LayoutRequest struct {
	Document json.RawMessage `json:"document"`
	Options  *config.Config  `json:"options,omitempty"`
}

// BatchRequest represents the request body for /layout/batch
type BatchRequest struct {
	Documents []json.RawMessage `json:"documents"`
	Options   *config.Config    `json:"options,omitempty"`
}

// BatchResponse represents the response for /layout/batch
type BatchResponse struct {
	Results []*types.LayoutResult `json:"results"`
	Fitting int                   `json:"fitting"`
}

// ValidateRequest represents the request body for /validate
type ValidateRequest struct {
	Result  *types.LayoutResult `json:"result"`
	Options *config.Config      `json:"options,omitempty"`
}

// ValidateResponse represents the response for /validate
type ValidateResponse struct {
	Valid      bool              `json:"valid"`
	Violations []types.Violation `json:"violations"`
}

// FontsResponse represents the response for /fonts
type FontsResponse struct {
	Families []string `json:"families"`
	Default  string   `json:"default"`
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleFonts lists the font families that can be measured
func (s *Server) handleFonts(w http.ResponseWriter, _ *http.Request) {
	settings := s.settings(nil)
	s.jsonResponse(w, http.StatusOK, FontsResponse{
		Families: fontmetrics.Default().Families(),
		Default:  settings.ToLayoutConfiguration().FontFamily,
	})
}

// handleLayout lays out a single document
func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	var req LayoutRequest
	if err := s.decode(w, r, &req); err != nil {
		s.failure(w, err)
		return
	}

	doc, err := s.parseDocument("document", req.Document)
	if err != nil {
		s.failure(w, err)
		return
	}

	cfg, engine, err := s.prepare(req.Options)
	if err != nil {
		s.failure(w, err)
		return
	}

	result, err := engine.Layout(doc, cfg)
	if err != nil {
		s.failure(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleLayoutBatch lays out several documents with shared options
func (s *Server) handleLayoutBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := s.decode(w, r, &req); err != nil {
		s.failure(w, err)
		return
	}

	if len(req.Documents) == 0 {
		s.failure(w, &ErrValidation{Field: "documents", Message: "at least one document is required"})
		return
	}
	if len(req.Documents) > maxBatchDocuments {
		s.failure(w, &ErrValidation{
			Field:   "documents",
			Message: fmt.Sprintf("at most %d documents per request, got %d", maxBatchDocuments, len(req.Documents)),
		})
		return
	}

	docs := make([]types.Document, len(req.Documents))
	for i, raw := range req.Documents {
		doc, err := s.parseDocument(fmt.Sprintf("documents[%d]", i), raw)
		if err != nil {
			s.failure(w, err)
			return
		}
		docs[i] = doc
	}

	cfg, engine, err := s.prepare(req.Options)
	if err != nil {
		s.failure(w, err)
		return
	}

	results, err := engine.LayoutAll(r.Context(), docs, cfg, s.settings(req.Options).Concurrency)
	if err != nil {
		s.failure(w, err)
		return
	}

	resp := BatchResponse{Results: results}
	for _, result := range results {
		if result.Metrics.FitsOnePage {
			resp.Fitting++
		}
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleValidate checks a previously computed layout
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if err := s.decode(w, r, &req); err != nil {
		s.failure(w, err)
		return
	}
	if req.Result == nil {
		s.failure(w, &ErrValidation{Field: "result", Message: "is required"})
		return
	}

	settings := s.settings(req.Options)
	if err := settings.Validate(); err != nil {
		s.failure(w, &ErrValidation{Field: "options", Message: err.Error()})
		return
	}

	violations, err := validation.ValidateLayout(req.Result, settings.Policy())
	if err != nil {
		s.failure(w, &ErrValidation{Field: "result", Message: err.Error()})
		return
	}

	s.jsonResponse(w, http.StatusOK, ValidateResponse{
		Valid:      len(violations.Violations) == 0,
		Violations: violations.Violations,
	})
}

// decode reads a size-limited JSON body into v, rejecting unknown fields
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return err
		}
		return &ErrValidation{Field: "body", Message: "invalid request body: " + err.Error()}
	}
	return nil
}

// parseDocument checks raw against the document schema and decodes it
func (s *Server) parseDocument(field string, raw json.RawMessage) (types.Document, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return types.Document{}, &ErrValidation{Field: field, Message: "is required"}
	}

	if s.documentSchema != "" {
		if err := schemas.ValidateBytes(s.documentSchema, raw); err != nil {
			var schemaErr *schemas.ValidationError
			if errors.As(err, &schemaErr) {
				return types.Document{}, fmt.Errorf("%s: %w", field, err)
			}
			return types.Document{}, fmt.Errorf("failed to validate %s: %w", field, err)
		}
	}

	var doc types.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return types.Document{}, &ErrValidation{Field: field, Message: err.Error()}
	}
	return doc, nil
}

// settings merges request options over the server defaults
func (s *Server) settings(opts *config.Config) config.Config {
	if opts == nil {
		return s.defaults
	}
	merged := opts.MergeWithDefaults(s.defaults)
	if opts.FontSize > 0 && opts.HeadingFontSize == 0 {
		// Keep the heading relative to the requested body size
		merged.HeadingFontSize = 0
	}
	merged.DropLowPriorityBullets = opts.DropLowPriorityBullets || s.defaults.DropLowPriorityBullets
	return merged
}

// prepare resolves the layout configuration for a request and the engine
// that honors its compression floors
func (s *Server) prepare(opts *config.Config) (types.LayoutConfiguration, *layout.Engine, error) {
	settings := s.settings(opts)
	if err := settings.Validate(); err != nil {
		return types.LayoutConfiguration{}, nil, &ErrValidation{Field: "options", Message: err.Error()}
	}

	engine := s.engine
	if settings.LineHeightFloor != s.defaults.LineHeightFloor ||
		settings.SpacingFloor != s.defaults.SpacingFloor ||
		settings.FontFloor != s.defaults.FontFloor {
		e, err := layout.New(layout.WithPolicy(settings.Policy()))
		if err != nil {
			return types.LayoutConfiguration{}, nil, &ErrValidation{Field: "options", Message: err.Error()}
		}
		engine = e
	}

	return settings.ToLayoutConfiguration(), engine, nil
}
