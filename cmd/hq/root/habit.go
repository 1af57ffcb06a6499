package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Satvik374/success-habit-tracker/internal/ui"
)

func newHabitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habit",
		Short: "Manage daily habits",
	}

	cmd.AddCommand(
		newHabitAddCmd(),
		newHabitEditCmd(),
		newHabitRmCmd(),
	)

	return cmd
}

func newHabitAddCmd() *cobra.Command {
	var icon string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a daily habit",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("name is required")
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

			habit, err := svc.AddHabit(args[0], icon)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Added habit %s %s as #%s\n",
				ui.IconPlus, habit.Icon, habit.Name, habit.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&icon, "icon", "i", "⭐", "Icon shown next to the habit")

	return cmd
}

func newHabitEditCmd() *cobra.Command {
	var name string
	var icon string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Rename a habit or change its icon",
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

			svc.EditHabit(args[0], name, icon)

			fmt.Fprintf(cmd.OutOrStdout(), "%s Habit #%s updated\n", ui.IconDone, args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "New name (empty keeps current)")
	cmd.Flags().StringVarP(&icon, "icon", "i", "", "New icon (empty keeps current)")

	return cmd
}

func newHabitRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a habit",
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

			svc.DeleteHabit(args[0])

			fmt.Fprintf(cmd.OutOrStdout(), "%s Habit #%s removed\n", ui.IconDone, args[0])
			return nil
		},
	}

	return cmd
}
