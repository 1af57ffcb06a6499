package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Satvik374/success-habit-tracker/internal/engine"
	"github.com/Satvik374/success-habit-tracker/internal/ui"
)

func newChallengesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "challenges",
		Short: "Show daily and weekly challenge progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTarget, "Challenges"))

			for _, period := range []engine.Period{engine.PeriodDaily, engine.PeriodWeekly} {
				fmt.Fprintln(out, ui.H2.Render(string(period)))
				for _, c := range svc.Challenges() {
					if c.Period != period {
						continue
					}
					mark := ui.CheckMark(c.Completed)
					fmt.Fprintf(out, "- %s %s  %s %s\n",
						mark, c.Title,
						ui.Key.Render(fmt.Sprintf("%d/%d", c.Current, c.Target)),
						ui.Muted.Render(fmt.Sprintf("· %s · +%d xp", c.Description, c.XPReward)))
				}
			}

			return nil
		},
	}

	return cmd
}
