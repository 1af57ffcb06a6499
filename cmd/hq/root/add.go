package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Satvik374/success-habit-tracker/internal/engine"
	"github.com/Satvik374/success-habit-tracker/internal/ui"
)

func newAddCmd() *cobra.Command {
	var priority string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a quest (one-off task)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			task, err := svc.AddTask(args[0], engine.ParsePriority(priority))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Added %q (%s, +%d xp) as #%s\n",
				ui.IconPlus, task.Title, ui.PriorityText(string(task.Priority)), task.XPReward, task.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&priority, "priority", "p", "medium", "Priority (low|medium|high)")

	return cmd
}
