package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Satvik374/success-habit-tracker/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "hq",
	Short:         "HabitQuest — gamified habit and quest tracker",
	Long:          "HabitQuest is a local-first CLI/TUI habit tracker with RPG progression mechanics: XP, levels, streaks, achievements and challenges.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newAddCmd(),
		newHabitCmd(),
		newDoneCmd(),
		newCheckCmd(),
		newStatusCmd(),
		newAchievementsCmd(),
		newChallengesCmd(),
		newBoardCmd(),
		newServeCmd(),
		newWatchCmd(),
		newToolCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
