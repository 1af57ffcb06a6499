package root

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Satvik374/success-habit-tracker/internal/assistant"
	"github.com/Satvik374/success-habit-tracker/internal/ui"
)

func newToolCmd() *cobra.Command {
	var file string
	var accept bool

	cmd := &cobra.Command{
		Use:   "tool [json]",
		Short: "Apply an assistant tool call",
		Long:  "Apply a structured tool call (add_task, add_habit, edit_habit, delete_habit, suggest_items) given as an argument, a file, or stdin.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readToolInput(args, file, cmd.InOrStdin())
			if err != nil {
				return err
			}

			var call assistant.ToolCall
			if err := json.Unmarshal(raw, &call); err != nil {
				return fmt.Errorf("parse tool call: %w", err)
			}
			if call.Name == "" {
				return errors.New("tool call has no name")
			}

			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := assistant.NewDispatcher(svc).Apply(call)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if res.Message != "" {
				fmt.Fprintf(out, "%s %s\n", ui.IconDone, res.Message)
			}
			for _, s := range res.Suggestions {
				if accept {
					if err := s.Accept(svc); err != nil {
						return err
					}
					fmt.Fprintf(out, "%s Accepted %s suggestion: %s\n", ui.IconPlus, s.Type, s.Title)
					continue
				}
				fmt.Fprintf(out, "%s [%s] %s  %s\n", ui.IconStar, s.Type, s.Title, ui.Muted.Render(s.Reason))
			}
			if !accept && len(res.Suggestions) > 0 {
				fmt.Fprintln(out, ui.Dim.Render("(re-run with --accept to add these)"))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read the tool call from a JSON file")
	cmd.Flags().BoolVar(&accept, "accept", false, "Accept suggested items immediately")

	return cmd
}

func readToolInput(args []string, file string, stdin io.Reader) ([]byte, error) {
	if len(args) == 1 {
		return []byte(args[0]), nil
	}
	if file != "" {
		return os.ReadFile(file)
	}
	return io.ReadAll(stdin)
}
