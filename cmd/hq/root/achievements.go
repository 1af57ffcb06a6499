package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Satvik374/success-habit-tracker/internal/ui"
)

func newAchievementsCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "achievements",
		Short: "Show unlocked achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			statuses := svc.Achievements()

			unlocked := 0
			for _, s := range statuses {
				if s.Unlocked {
					unlocked++
				}
			}

			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, fmt.Sprintf("Achievements (%d/%d)", unlocked, len(statuses))))
			for _, s := range statuses {
				if s.Unlocked {
					fmt.Fprintf(out, "- %s %s  %s\n", s.Icon, ui.Gold.Render(s.Name), ui.Muted.Render(s.Description))
					continue
				}
				if all {
					fmt.Fprintf(out, "- %s %s  %s\n", "🔒", ui.Muted.Render(s.Name), ui.Dim.Render(s.Requirement))
				}
			}
			if unlocked == 0 && !all {
				fmt.Fprintln(out, ui.Muted.Render("(nothing unlocked yet — use --all to see what's out there)"))
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include locked achievements")

	return cmd
}
