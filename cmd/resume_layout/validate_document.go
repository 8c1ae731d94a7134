package main

import (
	"fmt"

	"github.com/jonathan/resume-layout/internal/layout"
	"github.com/spf13/cobra"
)

var validateDocumentCmd = &cobra.Command{
	Use:   "validate-document",
	Short: "Check a resume document before layout",
	Long:  "Validates a Document JSON file against the document schema and the section rules the layout engine enforces.",
	RunE:  runValidateDocument,
}

var (
	validateDocumentInput string
	validateDocumentOpts  layoutFlags
)

func init() {
	validateDocumentCmd.Flags().StringVarP(&validateDocumentInput, "in", "i", "", "Path to Document JSON file (required)")

	addLayoutFlags(validateDocumentCmd, &validateDocumentOpts)

	if err := validateDocumentCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(validateDocumentCmd)
}

func runValidateDocument(cmd *cobra.Command, _ []string) error {
	doc, err := readDocument(validateDocumentInput)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd, &validateDocumentOpts)
	if err != nil {
		return err
	}
	if err := layout.ValidateDocument(doc, cfg.ToLayoutConfiguration()); err != nil {
		return fmt.Errorf("document is invalid: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Document is valid: %d section(s), %d bullet(s)\n",
		len(doc.Sections), doc.BulletCount())
	return nil
}
