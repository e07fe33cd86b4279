package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aref-vc/youtube-content-analyzer/shared/config"
	"github.com/aref-vc/youtube-content-analyzer/shared/logging"
)

// Set with -ldflags "-X main.version=..."
var version = "dev"

var (
	cfg        *config.Config
	configFile string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "channel-insights",
	Short: "YouTube channel content analyzer",
	Long:  "Scores titles and descriptions, detects content patterns and builds viral recipes for YouTube channels, on a schedule or over HTTP.",
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if configFile != "" {
			if err := os.Setenv("CONFIG_FILE", configFile); err != nil {
				return err
			}
		}

		loaded, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if logLevel != "" {
			loaded.Logging.Level = logLevel
		}
		logging.Init(loaded.Logging.Level, loaded.Logging.Console)

		cfg = loaded
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to config file (overrides CONFIG_FILE)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
