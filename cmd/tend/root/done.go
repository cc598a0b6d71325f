package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"tend/internal/ui"
)

func newDoneCmd() *cobra.Command {
	var task bool

	cmd := &cobra.Command{
		Use:   "done <id|name>",
		Short: "Mark a ritual/habit (or --task) done for today",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id or name is required")
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

			if task {
				t, err := svc.FindTaskByIDOrName(ctx, args[0])
				if err != nil {
					return err
				}
				if t == nil {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No such task; nothing to do."))
					return nil
				}
				res, err := svc.CompleteTask(ctx, t.ID)
				if err != nil {
					return err
				}
				if res.Completed {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Task done: ")+res.Name)
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render("Task reopened: ")+res.Name)
				}
				return nil
			}

			it, err := svc.FindByIDOrName(ctx, args[0])
			if err != nil {
				return err
			}
			if it == nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No such item; nothing to do."))
				return nil
			}
			// The notifier prints completion, milestone, promotion and
			// trigger lines; nothing else to render here.
			_, err = svc.CompleteItem(ctx, it.ID)
			return err
		},
	}

	cmd.Flags().BoolVarP(&task, "task", "t", false, "Complete a one-off task instead of a ritual/habit")

	return cmd
}
