package root

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/Satvik374/success-habit-tracker/internal/engine"
	"github.com/Satvik374/success-habit-tracker/internal/sync"
	"github.com/Satvik374/success-habit-tracker/internal/ui"
)

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Follow the sync feed and mirror remote changes locally",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if !cfg.Sync.Enabled {
				return errors.New("sync is disabled; enable it in ~/.habitquest.yaml")
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			svc, cleanup, err := openLocalService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			client := sync.NewClient(cfg.Sync.Server, cfg.Sync.User)
			sub, err := client.Subscribe(ctx, func(g *engine.GameState) {
				svc.Replace(g)
				fmt.Fprintf(out, "%s Remote update: level %d, %d xp, %d quest(s), %d habit(s)\n",
					ui.IconLoop, g.Level, g.XP, len(g.Tasks), len(g.Habits))
			})
			if err != nil {
				return err
			}
			defer sub.Close()

			fmt.Fprintln(out, ui.Heading(ui.IconInfo, "Watching "+cfg.Sync.Server+" as "+cfg.Sync.User+" (ctrl+c to stop)"))
			<-ctx.Done()
			return nil
		},
	}

	return cmd
}
