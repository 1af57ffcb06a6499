package root

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Satvik374/success-habit-tracker/internal/clock"
	"github.com/Satvik374/success-habit-tracker/internal/engine"
	"github.com/Satvik374/success-habit-tracker/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show progression, habits and quests",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			g := svc.State()
			out := cmd.OutOrStdout()
			todayIdx := clock.DayIndex(time.Now())

			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "HabitQuest Status"))
			fmt.Fprintln(out, ui.LabelValue("Level", g.Level))
			fmt.Fprintln(out, ui.LabelValue("XP", fmt.Sprintf("%d/%d (%d lifetime)", g.XP, engine.XPPerLevel, g.TotalXPEarned)))
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%d day(s) %s", g.Streak, ui.IconFlame)))
			fmt.Fprintln(out, ui.LabelValue("Perfect days", g.PerfectDays))
			fmt.Fprintln(out, ui.LabelValue("Today", fmt.Sprintf("%d%% complete", svc.CompletionRate())))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconLoop+" Habits (Mon–Sun)"))
			if len(g.Habits) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(no habits yet — try `hq habit add`)"))
			}
			for _, h := range g.Habits {
				var week strings.Builder
				for d := 0; d < engine.DaysPerWeek; d++ {
					week.WriteString(ui.DayCell(h.CompletedDays[d], d == todayIdx))
					week.WriteString(" ")
				}
				fmt.Fprintf(out, "- #%s %s %s  %s\n", h.ID, h.Icon, h.Name, week.String())
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconScroll+" Quests"))
			if len(g.Tasks) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(no quests yet — try `hq add`)"))
			}
			for _, t := range g.Tasks {
				fmt.Fprintf(out, "- #%s %s %s  %s %s\n",
					t.ID, ui.CheckMark(t.Completed), t.Title,
					ui.PriorityText(string(t.Priority)),
					ui.Muted.Render(fmt.Sprintf("+%d xp", t.XPReward)))
			}

			return nil
		},
	}

	return cmd
}
