package main

import (
	"fmt"

	"github.com/jonathan/resume-layout/internal/config"
	"github.com/jonathan/resume-layout/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort     int
	serveConfig   string
	serveMaxBytes int64
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the layout HTTP server",
	Long: "Start an HTTP server that exposes /layout, /layout/batch and /validate. " +
		"Settings from --config and the environment become the defaults for every request. " +
		"Rate limits are read from the RATE_LIMIT_* environment variables.",
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVarP(&serveConfig, "config", "c", "", "Path to JSON config file with default layout settings (optional)")
	serveCmd.Flags().Int64Var(&serveMaxBytes, "max-body-bytes", 2<<20, "Largest accepted request body in bytes")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	if servePort < 1 || servePort > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", servePort)
	}

	defaults := &config.Config{}
	if serveConfig != "" {
		loaded, err := config.LoadConfig(serveConfig)
		if err != nil {
			return err
		}
		defaults = loaded
	}
	if err := defaults.ApplyEnv(); err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Port:         servePort,
		Defaults:     *defaults,
		MaxBodyBytes: serveMaxBytes,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
