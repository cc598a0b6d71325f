package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"tend/internal/ui"
)

func newRmCmd() *cobra.Command {
	var task bool

	cmd := &cobra.Command{
		Use:   "rm <id|name>",
		Short: "Delete a ritual/habit (or --task)",
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
					fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No such task; nothing to delete."))
					return nil
				}
				if err := svc.DeleteTask(ctx, t.ID); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Deleted task ")+t.Name)
				return nil
			}

			it, err := svc.FindByIDOrName(ctx, args[0])
			if err != nil {
				return err
			}
			if it == nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No such item; nothing to delete."))
				return nil
			}
			if err := svc.DeleteItem(ctx, it.ID); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Deleted ")+it.Name+
				ui.Muted.Render(" (dependent triggers cleared)"))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&task, "task", "t", false, "Delete a one-off task instead")

	return cmd
}
