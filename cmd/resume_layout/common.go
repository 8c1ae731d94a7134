package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-layout/internal/config"
	"github.com/jonathan/resume-layout/internal/fontmetrics"
	"github.com/jonathan/resume-layout/internal/layout"
	"github.com/jonathan/resume-layout/internal/schemas"
	"github.com/jonathan/resume-layout/internal/types"
	"github.com/spf13/cobra"
)

// layoutFlags are the settings shared by every command that runs the engine
type layoutFlags struct {
	configPath string
	fontFamily string
	fontSize   float64
	fontFile   string
	drop       bool
	verbose    bool
}

func addLayoutFlags(cmd *cobra.Command, f *layoutFlags) {
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "Path to JSON config file (optional)")
	cmd.Flags().StringVar(&f.fontFamily, "font-family", "", "Font family (overrides config)")
	cmd.Flags().Float64Var(&f.fontSize, "font-size", 0, "Body font size in points (overrides config)")
	cmd.Flags().StringVar(&f.fontFile, "font-file", "", "TrueType/OpenType file measured for --font-family")
	cmd.Flags().BoolVar(&f.drop, "drop", false, "Drop lowest priority bullets when maximum compression still overflows")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Print layout details and debug logs")
}

// loadConfig merges the config file, the environment and explicit flags, in that order
func loadConfig(cmd *cobra.Command, f *layoutFlags) (*config.Config, error) {
	cfg := &config.Config{}
	if f.configPath != "" {
		loaded, err := config.LoadConfig(f.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("font-family") {
		cfg.FontFamily = f.fontFamily
	}
	if flags.Changed("font-size") {
		cfg.FontSize = f.fontSize
	}
	if flags.Changed("drop") {
		cfg.DropLowPriorityBullets = f.drop
	}
	if flags.Changed("verbose") {
		cfg.Verbose = f.verbose
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newEngine builds a layout engine for cfg, registering --font-file when given
func newEngine(cmd *cobra.Command, cfg *config.Config, f *layoutFlags) (*layout.Engine, error) {
	if cfg.Verbose {
		layout.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	opts := []layout.Option{layout.WithPolicy(cfg.Policy())}

	if f.fontFile != "" {
		if cfg.FontFamily == "" {
			return nil, fmt.Errorf("--font-file requires a font family")
		}
		data, err := os.ReadFile(f.fontFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read font file: %w", err)
		}
		registry, err := fontmetrics.NewRegistry(fontmetrics.WithTrueTypeFamily(cfg.FontFamily, fontmetrics.FontFiles{Regular: data}))
		if err != nil {
			return nil, fmt.Errorf("failed to load font file: %w", err)
		}
		opts = append(opts, layout.WithProvider(registry))
	}

	return layout.New(opts...)
}

// readDocument checks a document file against the document schema and decodes it
func readDocument(path string) (types.Document, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return types.Document{}, fmt.Errorf("document file not found: %s", path)
	}

	if schemaPath := schemas.ResolveSchemaPath(schemas.DocumentSchema); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			var validationErr *schemas.ValidationError
			if errors.As(err, &validationErr) {
				return types.Document{}, fmt.Errorf("document %s does not match schema: %w", path, err)
			}
			return types.Document{}, fmt.Errorf("failed to validate document %s: %w", path, err)
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return types.Document{}, fmt.Errorf("failed to read document file: %w", err)
	}

	var doc types.Document
	if err := json.Unmarshal(content, &doc); err != nil {
		return types.Document{}, fmt.Errorf("failed to unmarshal document JSON: %w", err)
	}
	return doc, nil
}

// writeJSON writes v as indented JSON, creating the parent directory
func writeJSON(path string, v any) error {
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// checkOutput validates a written file against a schema. Failures are warnings only.
func checkOutput(stderr io.Writer, schema, path string) {
	schemaPath := schemas.ResolveSchemaPath(schema)
	if schemaPath == "" {
		return
	}
	if err := schemas.ValidateJSON(schemaPath, path); err != nil {
		var validationErr *schemas.ValidationError
		var schemaLoadErr *schemas.SchemaLoadError
		switch {
		case errors.As(err, &validationErr):
			_, _ = fmt.Fprintf(stderr, "Warning: %s does not validate against schema: %v\n", path, err)
		case errors.As(err, &schemaLoadErr):
			_, _ = fmt.Fprintf(stderr, "Warning: Could not validate output against schema (schema loading failed): %v\n", err)
		default:
			_, _ = fmt.Fprintf(stderr, "Warning: Could not validate output against schema: %v\n", err)
		}
	}
}
