package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"tend/internal/clock"
	"tend/internal/ui"
)

func newTaskCmd() *cobra.Command {
	var on string

	cmd := &cobra.Command{
		Use:   "task <name>",
		Short: "Add a one-off task",
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

			var date clock.Date
			if on != "" {
				date, err = clock.ParseDate(on)
				if err != nil {
					return err
				}
			}

			t, err := svc.CreateTask(ctx, args[0], date)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Added task ")+t.Name+
				ui.Muted.Render(" for "+t.Date.String()))
			return nil
		},
	}

	cmd.Flags().StringVar(&on, "on", "", "Task date (YYYY-MM-DD, default today)")

	return cmd
}
