package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func createEpicsCmd() *cobra.Command {
	epicsCmd := &cobra.Command{
		Use:   "epics <project> <label>",
		Short: "List epics in a project with a specific label",
		Long: `List all epics in a project carrying the given label.

Examples:
  relm epics PROJ q3-release`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			gateway, err := newGateway(cfg)
			if err != nil {
				return err
			}

			projectKey, label := args[0], args[1]
			epics, err := gateway.ListEpicsByLabel(cmd.Context(), projectKey, label)
			if err != nil {
				return fmt.Errorf("failed to list epics: %w", err)
			}

			if len(epics) == 0 {
				fmt.Printf("No epics found in project %s with label %q.\n", projectKey, label)
				return nil
			}

			fmt.Printf("Epics in project %s with label %q:\n", projectKey, label)
			for _, epic := range epics {
				fmt.Printf("  %s: %s\n", epic.Key, epic.Summary)
			}
			return nil
		},
	}

	return epicsCmd
}
