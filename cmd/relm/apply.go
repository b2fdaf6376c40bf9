package main

import (
	"fmt"

	"github.com/lerenn/release-manager/pkg/model"
	"github.com/lerenn/release-manager/pkg/reconcile"
	"github.com/spf13/cobra"
)

func createApplyCmd() *cobra.Command {
	applyCmd := &cobra.Command{
		Use:   "apply <epic-key>",
		Short: "Apply recommended fix-version actions for an epic",
		Long: `Compute and apply the corrective actions for an epic's stories. Conflict
and blocked flags are listed for manual review but never applied. Applied
actions are not rolled back if a later action fails.

Examples:
  relm apply PROJ-123`,
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

			// Split out informational flags; only assign and reassign
			// actions go to the tracker.
			var applicable, informational []model.Action
			for _, action := range actions {
				if action.Informational() {
					informational = append(informational, action)
				} else {
					applicable = append(applicable, action)
				}
			}

			if len(informational) > 0 {
				fmt.Printf("%d action(s) need manual attention:\n", len(informational))
				displayActions(informational)
			}

			if len(applicable) == 0 {
				if len(informational) == 0 {
					fmt.Printf("Epic %s is consistent, nothing to apply.\n", args[0])
				}
				return nil
			}

			results, applyErr := engine.ApplyActions(cmd.Context(), applicable)
			displayResults(results)
			if applyErr != nil {
				return fmt.Errorf("failed to apply actions for epic %s: %w", args[0], applyErr)
			}
			return nil
		},
	}

	return applyCmd
}
