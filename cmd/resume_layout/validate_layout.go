package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/resume-layout/internal/config"
	"github.com/jonathan/resume-layout/internal/observability"
	"github.com/jonathan/resume-layout/internal/schemas"
	"github.com/jonathan/resume-layout/internal/types"
	"github.com/jonathan/resume-layout/internal/validation"
	"github.com/spf13/cobra"
)

var validateLayoutCmd = &cobra.Command{
	Use:   "validate-layout",
	Short: "Check a layout result against the one-page constraints",
	Long:  "Validates a LayoutResult JSON file for page overflow, element overlap, out-of-bounds elements and compression floors.",
	RunE:  runValidateLayout,
}

var (
	validateLayoutInput   string
	validateLayoutConfig  string
	validateLayoutOutput  string
	validateLayoutVerbose bool
)

func init() {
	validateLayoutCmd.Flags().StringVarP(&validateLayoutInput, "in", "i", "", "Path to LayoutResult JSON file (required)")
	validateLayoutCmd.Flags().StringVarP(&validateLayoutConfig, "config", "c", "", "Path to JSON config file with compression floors (optional)")
	validateLayoutCmd.Flags().StringVarP(&validateLayoutOutput, "out", "o", "", "Path to output Violations JSON file (optional)")
	validateLayoutCmd.Flags().BoolVarP(&validateLayoutVerbose, "verbose", "v", false, "Print violation details")

	if err := validateLayoutCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(validateLayoutCmd)
}

func runValidateLayout(cmd *cobra.Command, _ []string) error {
	if _, err := os.Stat(validateLayoutInput); os.IsNotExist(err) {
		return fmt.Errorf("layout file not found: %s", validateLayoutInput)
	}

	cfg := &config.Config{}
	if validateLayoutConfig != "" {
		loaded, err := config.LoadConfig(validateLayoutConfig)
		if err != nil {
			return err
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = loaded
	}

	if schemaPath := schemas.ResolveSchemaPath(schemas.LayoutResultSchema); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, validateLayoutInput); err != nil {
			var validationErr *schemas.ValidationError
			if errors.As(err, &validationErr) {
				return fmt.Errorf("layout %s does not match schema: %w", validateLayoutInput, err)
			}
			return fmt.Errorf("failed to validate layout %s: %w", validateLayoutInput, err)
		}
	}

	content, err := os.ReadFile(validateLayoutInput)
	if err != nil {
		return fmt.Errorf("failed to read layout file: %w", err)
	}

	var result types.LayoutResult
	if err := json.Unmarshal(content, &result); err != nil {
		return fmt.Errorf("failed to unmarshal layout JSON: %w", err)
	}

	violations, err := validation.ValidateLayout(&result, cfg.Policy())
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if validateLayoutOutput != "" {
		if err := writeJSON(validateLayoutOutput, violations); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if validateLayoutVerbose {
		observability.NewPrinter(out).PrintViolations(violations)
	}

	if len(violations.Violations) == 0 {
		_, _ = fmt.Fprintf(out, "Validation passed: No violations found\n")
		return nil
	}

	_, _ = fmt.Fprintf(out, "Validation found %d violation(s)\n", len(violations.Violations))
	if validateLayoutOutput != "" {
		_, _ = fmt.Fprintf(out, "Output: %s\n", validateLayoutOutput)
	}

	// Return error to indicate violations were found (exit code 1)
	return fmt.Errorf("validation found %d violation(s)", len(violations.Violations))
}
