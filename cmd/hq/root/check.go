package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/Satvik374/success-habit-tracker/internal/clock"
	"github.com/Satvik374/success-habit-tracker/internal/engine"
	"github.com/Satvik374/success-habit-tracker/internal/ui"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <habit-id> [day]",
		Short: "Toggle a habit for today (or a weekday 0-6, Monday first)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 || len(args) > 2 {
				return errors.New("habit id is required, day is optional")
			}
			if len(args) == 2 {
				d, err := strconv.Atoi(args[1])
				if err != nil || d < 0 || d >= engine.DaysPerWeek {
					return errors.New("day must be 0-6 (Monday first)")
				}
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

			day := clock.DayIndex(time.Now())
			if len(args) == 2 {
				day, _ = strconv.Atoi(args[1])
			}

			svc.ToggleHabit(args[0], day)

			g := svc.State()
			for _, h := range g.Habits {
				if h.ID != args[0] {
					continue
				}
				if h.CompletedDays[day] {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s checked for day %d (+%d xp). Today: %d%% done.\n",
						ui.IconDone, h.Icon, h.Name, day, engine.HabitXP, svc.CompletionRate())
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s unchecked for day %d (-%d xp).\n",
						ui.IconLoop, h.Icon, h.Name, day, engine.HabitXP)
				}
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No habit with id "+args[0]+"."))
			return nil
		},
	}

	return cmd
}
