package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Satvik374/success-habit-tracker/internal/ui"
)

func newDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a quest's completion",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
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

			svc.ToggleTask(args[0])

			g := svc.State()
			for _, t := range g.Tasks {
				if t.ID != args[0] {
					continue
				}
				if t.Completed {
					fmt.Fprintf(cmd.OutOrStdout(), "%s Completed %q (+%d xp). Level %d, %d xp.\n",
						ui.IconDone, t.Title, t.XPReward, g.Level, g.XP)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%s Reopened %q (-%d xp). Level %d, %d xp.\n",
						ui.IconLoop, t.Title, t.XPReward, g.Level, g.XP)
				}
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No quest with id "+args[0]+"."))
			return nil
		},
	}

	return cmd
}
