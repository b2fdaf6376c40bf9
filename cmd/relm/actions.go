package main

import (
	"fmt"

	"github.com/lerenn/release-manager/pkg/reconcile"
	"github.com/spf13/cobra"
)

func createActionsCmd() *cobra.Command {
	actionsCmd := &cobra.Command{
		Use:   "actions <epic-key>",
		Short: "List recommended fix-version actions for an epic",
		Long: `Compute the corrective actions needed to make every story under an epic
consistent with the epic's fix version, without applying them.

Examples:
  relm actions PROJ-123
  relm actions PROJ-123 -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			gateway, err := newGateway(cfg)
			if err != nil {
				return err
			}

			engine := reconcile.NewEngine(reconcile.NewEngineParams{
				Gateway: gateway,
				Logger:  newLogger(),
			})

			actions, err := engine.ComputeActions(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to compute actions: %w", err)
			}

			if outputFormat != formatTable {
				return printStructured(actions)
			}

			if len(actions) == 0 {
				fmt.Printf("Epic %s is consistent, nothing to do.\n", args[0])
				return nil
			}
			displayActions(actions)
			return nil
		},
	}

	return actionsCmd
}
