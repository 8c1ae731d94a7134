package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-layout/internal/schemas"
	"github.com/jonathan/resume-layout/internal/types"
	"github.com/spf13/cobra"
)

var layoutBatchCmd = &cobra.Command{
	Use:   "layout-batch [documents...]",
	Short: "Lay out several resume documents concurrently",
	Long: "Lays out every Document JSON file given as an argument with the same configuration. " +
		"Each result is written to <out-dir>/<name>.layout.json.",
	Args: cobra.MinimumNArgs(1),
	RunE: runLayoutBatch,
}

var (
	layoutBatchOutDir      string
	layoutBatchConcurrency int
	layoutBatchOpts        layoutFlags
)

func init() {
	layoutBatchCmd.Flags().StringVarP(&layoutBatchOutDir, "out-dir", "o", "", "Directory for LayoutResult JSON files (required)")
	layoutBatchCmd.Flags().IntVar(&layoutBatchConcurrency, "concurrency", 0, "Maximum layouts in flight (0 uses the config value; unset means no limit)")
	addLayoutFlags(layoutBatchCmd, &layoutBatchOpts)

	if err := layoutBatchCmd.MarkFlagRequired("out-dir"); err != nil {
		panic(fmt.Sprintf("failed to mark out-dir flag as required: %v", err))
	}

	rootCmd.AddCommand(layoutBatchCmd)
}

func runLayoutBatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, &layoutBatchOpts)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("concurrency") {
		cfg.Concurrency = layoutBatchConcurrency
	}

	docs := make([]types.Document, len(args))
	for i, path := range args {
		doc, err := readDocument(path)
		if err != nil {
			return err
		}
		docs[i] = doc
	}

	engine, err := newEngine(cmd, cfg, &layoutBatchOpts)
	if err != nil {
		return err
	}

	results, err := engine.LayoutAll(cmd.Context(), docs, cfg.ToLayoutConfiguration(), cfg.Concurrency)
	if err != nil {
		return fmt.Errorf("batch layout failed: %w", err)
	}

	out := cmd.OutOrStdout()
	fitted := 0
	for i, result := range results {
		path := filepath.Join(layoutBatchOutDir, outputName(args[i]))
		if err := writeJSON(path, result); err != nil {
			return err
		}
		checkOutput(cmd.ErrOrStderr(), schemas.LayoutResultSchema, path)

		status := "fits"
		if result.Metrics.FitsOnePage {
			fitted++
		} else {
			status = fmt.Sprintf("overflows by %d line(s)", result.Metrics.LinesToRemove)
		}
		_, _ = fmt.Fprintf(out, "%s: level %d, %s\n", args[i], result.Metrics.CompressionLevel, status)
	}

	_, _ = fmt.Fprintf(out, "%d of %d document(s) fit on one page\n", fitted, len(results))
	return nil
}

// outputName maps "dir/jane.json" to "jane.layout.json"
func outputName(input string) string {
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".layout.json"
}
