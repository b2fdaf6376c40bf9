package main

import (
	"fmt"

	"github.com/lerenn/release-manager/pkg/manifest"
	"github.com/spf13/cobra"
)

func createManifestCmd() *cobra.Command {
	manifestCmd := &cobra.Command{
		Use:   "manifest [projects...]",
		Short: "Render the release manifest for one or more projects",
		Long: `Group epics and stories by unreleased fix version across the given
projects, ordered by release date. Projects default to the configured list.

Examples:
  relm manifest
  relm manifest PROJ OTHER -o yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()

			projects := args
			if len(projects) == 0 {
				projects = cfg.Projects
			}
			if len(projects) == 0 {
				return fmt.Errorf("no projects given and none configured")
			}

			gateway, err := newGateway(cfg)
			if err != nil {
				return err
			}

			renderer := manifest.NewRenderer(manifest.NewRendererParams{
				Gateway: gateway,
				Logger:  newLogger(),
			})

			entries, err := renderer.Render(cmd.Context(), projects)
			if err != nil {
				return fmt.Errorf("failed to render manifest: %w", err)
			}

			if outputFormat != formatTable {
				return printStructured(entries)
			}

			if len(entries) == 0 {
				fmt.Println("No unreleased versions found.")
				return nil
			}
			displayManifest(entries)
			return nil
		},
	}

	return manifestCmd
}
