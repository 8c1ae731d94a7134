// Package main implements the resume_layout CLI for one-page resume layout.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_layout",
	Short: "Deterministic one-page resume layout",
	Long: "resume_layout positions structured resume content on a single page, stepping through " +
		"compression levels and optionally dropping low-priority bullets until the content fits.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
