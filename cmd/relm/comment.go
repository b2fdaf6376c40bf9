package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func createCommentCmd() *cobra.Command {
	commentCmd := &cobra.Command{
		Use:   "comment <issue-key> <body...>",
		Short: "Post a comment on an issue",
		Long: `Post a comment on an issue. Pass-through to the tracker; no reconciliation
logic is involved.

Examples:
  relm comment PROJ-123 "Moved to v2.0 as part of release planning"`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			gateway, err := newGateway(cfg)
			if err != nil {
				return err
			}

			issueKey := args[0]
			body := strings.Join(args[1:], " ")
			if err := gateway.AddComment(cmd.Context(), issueKey, body); err != nil {
				return fmt.Errorf("failed to comment on %s: %w", issueKey, err)
			}

			fmt.Printf("Commented on %s.\n", issueKey)
			return nil
		},
	}

	return commentCmd
}
