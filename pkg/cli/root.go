// Package cli implements the nanoid command-line interface.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/getnanoid/nanoid/pkg/config"
	"github.com/getnanoid/nanoid/pkg/logging"
)

var (
	// Persistent flags available to all subcommands
	configFile string
	logLevel   string

	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "nanoid",
	Short: "nanoid generates compact URL-safe identifiers and upload paths",
	Long: `nanoid generates NanoIDs: short, random, URL-safe string identifiers drawn
from a configurable character alphabet.

Defaults can be provided via a settings file (--config, JSON or YAML) or the
NANOID_ALPHABET, NANOID_ALPHABET_PREDEFINED and NANOID_SIZE environment
variables. Flags always win over both.`,
	SilenceUsage:  true,
	SilenceErrors: true, // We handle errors in Execute()
}

// Execute runs the root command. Called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Settings file (JSON or YAML)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

// loadSettings resolves the effective settings: file (when given), overlaid
// with environment variables.
func loadSettings() (config.Settings, error) {
	settings := config.Default()
	if configFile != "" {
		var err error
		settings, err = config.LoadFromFile(configFile)
		if err != nil {
			return config.Settings{}, err
		}
	}
	settings.LoadEnv()
	return settings, nil
}

// newLogger builds the CLI logger from the --log-level flag.
func newLogger() *slog.Logger {
	return logging.New(logging.Config{Level: logging.ParseLevel(logLevel), Format: logging.FormatText})
}
