package main

import (
	"fmt"

	"github.com/jonathan/resume-layout/internal/observability"
	"github.com/jonathan/resume-layout/internal/schemas"
	"github.com/jonathan/resume-layout/internal/validation"
	"github.com/spf13/cobra"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Lay out a resume document on one page",
	Long: "Reads a Document JSON file, positions every element on a single page and writes the " +
		"LayoutResult JSON. Compression levels are tried in order until the content fits.",
	RunE: runLayout,
}

var (
	layoutInput  string
	layoutOutput string
	layoutStrict bool
	layoutOpts   layoutFlags
)

func init() {
	layoutCmd.Flags().StringVarP(&layoutInput, "in", "i", "", "Path to Document JSON file (required)")
	layoutCmd.Flags().StringVarP(&layoutOutput, "out", "o", "", "Path to output LayoutResult JSON file (required)")
	layoutCmd.Flags().BoolVar(&layoutStrict, "strict", false, "Exit with an error when the content does not fit one page")
	addLayoutFlags(layoutCmd, &layoutOpts)

	if err := layoutCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
	if err := layoutCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(layoutCmd)
}

func runLayout(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd, &layoutOpts)
	if err != nil {
		return err
	}

	doc, err := readDocument(layoutInput)
	if err != nil {
		return err
	}

	engine, err := newEngine(cmd, cfg, &layoutOpts)
	if err != nil {
		return err
	}

	result, err := engine.Layout(doc, cfg.ToLayoutConfiguration())
	if err != nil {
		return fmt.Errorf("layout failed: %w", err)
	}

	if err := writeJSON(layoutOutput, result); err != nil {
		return err
	}
	checkOutput(cmd.ErrOrStderr(), schemas.LayoutResultSchema, layoutOutput)

	out := cmd.OutOrStdout()
	if cfg.Verbose {
		violations, err := validation.ValidateLayout(result, engine.Policy())
		if err != nil {
			return fmt.Errorf("failed to validate layout: %w", err)
		}
		printer := observability.NewPrinter(out)
		printer.PrintLayoutMetrics(result)
		printer.PrintElements(result)
		printer.PrintDroppedBullets(result, doc)
		printer.PrintViolations(violations)
	}

	m := result.Metrics
	_, _ = fmt.Fprintf(out, "Laid out %d elements at compression level %d (%.1fpt of %.1fpt)\n",
		len(result.Elements), m.CompressionLevel, m.TotalHeight, m.PageContentHeight)
	if len(m.DroppedBullets) > 0 {
		_, _ = fmt.Fprintf(out, "Dropped %d low-priority bullet(s)\n", len(m.DroppedBullets))
	}
	_, _ = fmt.Fprintf(out, "Output: %s\n", layoutOutput)

	if m.FitsOnePage {
		return nil
	}

	_, _ = fmt.Fprintf(out, "%s\n", m.Recommendation)
	if layoutStrict {
		return fmt.Errorf("content does not fit on one page: remove %d line(s)", m.LinesToRemove)
	}
	return nil
}
