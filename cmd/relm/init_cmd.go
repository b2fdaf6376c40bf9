package main

import (
	"fmt"
	"os"

	"github.com/lerenn/release-manager/pkg/config"
	"github.com/spf13/cobra"
)

func createInitCmd() *cobra.Command {
	var force bool

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the release manager configuration",
		Long: `Write a default configuration file. Edit it afterwards to set the tracker,
server URL, username and project keys. The API token is read from the
environment variable named in the file, never stored in it.

Examples:
  relm init
  relm init -c ./relm.yaml`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			path := configPath
			if path == "" {
				path = defaultConfigPath()
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("configuration already exists at %s (use --force to overwrite)", path)
			}

			manager := config.NewManager(path)
			if err := manager.SaveConfig(manager.DefaultConfig()); err != nil {
				return fmt.Errorf("failed to write configuration: %w", err)
			}

			fmt.Printf("Configuration written to %s.\n", path)
			return nil
		},
	}

	initCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing configuration file")

	return initCmd
}
