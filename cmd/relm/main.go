// Package main provides the command-line interface for the release manager
// application.
package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/lerenn/release-manager/pkg/config"
	"github.com/lerenn/release-manager/pkg/logger"
	"github.com/lerenn/release-manager/pkg/tracker"
	"github.com/spf13/cobra"
)

var (
	quiet        bool
	verbose      bool
	configPath   string
	outputFormat string
)

// defaultConfigPath returns the default config file location.
func defaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".relm", "config.yaml")
}

// loadConfig loads the configuration strictly, failing if not found.
func loadConfig() *config.Config {
	path := configPath
	if path == "" {
		path = defaultConfigPath()
	}

	cfg, err := config.NewManager(path).GetConfig()
	if err != nil {
		if configPath != "" {
			log.Fatalf("Configuration not found at %s. Run: relm init -c %s", path, path)
		}
		log.Fatalf("Configuration not found at %s. Run: relm init", path)
	}
	return cfg
}

// newLogger returns the logger matching the global verbosity flags.
func newLogger() logger.Logger {
	if verbose && !quiet {
		return logger.NewDefaultLogger()
	}
	return logger.NewNoopLogger()
}

// newGateway builds the configured tracker gateway, wrapped with retries.
func newGateway(cfg *config.Config) (tracker.Gateway, error) {
	manager, err := tracker.NewManager(cfg, newLogger())
	if err != nil {
		return nil, err
	}

	gateway, err := manager.GetGateway(cfg.Tracker)
	if err != nil {
		return nil, err
	}
	return tracker.NewRetrying(gateway), nil
}

func main() {
	var rootCmd = &cobra.Command{
		Use:   "relm",
		Short: "Release Manager - fix version reconciliation and release manifests",
		Long: `A CLI tool that reconciles fix versions between epics and their stories ` +
			`and renders release manifests grouping issues by target version.`,
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Specify a custom config file path")

	// Create commands
	actionsCmd := createActionsCmd()
	applyCmd := createApplyCmd()
	manifestCmd := createManifestCmd()
	epicsCmd := createEpicsCmd()
	commentCmd := createCommentCmd()
	initCmd := createInitCmd()

	// Add output format flag to data-producing commands
	for _, cmd := range []*cobra.Command{actionsCmd, manifestCmd} {
		cmd.Flags().StringVarP(&outputFormat, "output", "o", "table", "Output format: table, json or yaml")
	}

	// Add subcommands
	rootCmd.AddCommand(actionsCmd, applyCmd, manifestCmd, epicsCmd, commentCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
