package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Version: version,
	Use:     "pompub",
	Short:   "Resolve and explain artifact publishing configuration",
	Long: `pompub resolves the configuration for publishing signed artifacts
to a Maven-Central-style repository from explicit config, properties files,
environment variables, project auto-detection and smart defaults, and can
explain which source supplied every value.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().String("project-dir", ".", "project root directory")
	rootCmd.PersistentFlags().String("properties", "", "properties file path (default: <project-dir>/pompub.properties)")
	rootCmd.PersistentFlags().String("config", "", "explicit config file path (default: <project-dir>/.pompub.yaml)")
	rootCmd.PersistentFlags().Bool("no-auto-detect", false, "disable project auto-detection")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error (default: info)")
	rootCmd.PersistentFlags().String("log-format", "", "log format: text, json (default: text)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
