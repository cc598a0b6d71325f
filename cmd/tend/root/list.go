package root

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"tend/internal/clock"
	"tend/internal/engine"
	"tend/internal/ui"
)

func newListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List today's schedule (or --all)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			snap, err := svc.Snapshot(ctx)
			if err != nil {
				return err
			}
			today := svc.Today()
			out := cmd.OutOrStdout()

			due, other := engine.DueToday(snap.Items(), today)

			fmt.Fprintln(out, ui.Heading(ui.IconCal, "Today — "+today.String()))
			if len(due) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("Nothing scheduled today."))
			}
			for i := range due {
				printItemLine(out, &due[i], today)
			}

			var openTasks []engine.Task
			for _, t := range snap.Tasks {
				if all || (!t.Completed && !today.Before(t.Date)) {
					openTasks = append(openTasks, t)
				}
			}
			if len(openTasks) > 0 {
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.H2.Render("Tasks"))
				for _, t := range openTasks {
					mark := "☐"
					if t.Completed {
						mark = string(ui.IconDone)
					}
					fmt.Fprintf(out, "  %s %s %s\n", mark, t.Name, ui.Muted.Render(t.Date.String()))
				}
			}

			if all && len(other) > 0 {
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.H2.Render("Not scheduled today"))
				for i := range other {
					printItemLine(out, &other[i], today)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include items not scheduled today and finished tasks")

	return cmd
}

func printItemLine(out io.Writer, it *engine.Item, today clock.Date) {
	done := " "
	if it.LastCompleted == today {
		done = ui.IconDone
	}
	fmt.Fprintf(out, "  %s %s %s  %s %s\n",
		done,
		ui.KindIcon(string(it.Kind)),
		it.Name,
		ui.StreakBadge(it.Streak, it.FrozenStreaks),
		ui.Muted.Render(it.Frequency.String()+", "+it.Trigger.Describe()))
}
