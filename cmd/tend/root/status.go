package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tend/internal/clock"
	"tend/internal/engine"
	"tend/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show streaks, habits and progress",
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

			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "tend status"))
			dateLine := today.String()
			if svc.DevMode() {
				dateLine += " " + ui.Warn.Render("(simulated)")
			}
			fmt.Fprintln(out, ui.LabelValue("Today", dateLine))
			fmt.Fprintln(out, "")

			if len(snap.Rituals) > 0 {
				fmt.Fprintln(out, ui.H2.Render(ui.IconLoop+" Rituals"))
				for i := range snap.Rituals {
					r := &snap.Rituals[i]
					toGo := engine.PromoteStreakThreshold - r.Streak
					extra := ""
					if toGo > 0 && r.Streak > 0 {
						extra = ui.Muted.Render(fmt.Sprintf(" — %d days to habit", toGo))
					}
					fmt.Fprintf(out, "  %s  %s%s\n", r.Name, ui.StreakBadge(r.Streak, r.FrozenStreaks), extra)
				}
				fmt.Fprintln(out, "")
			}

			if len(snap.Habits) > 0 {
				fmt.Fprintln(out, ui.H2.Render(ui.IconCrown+" Habits"))
				for i := range snap.Habits {
					h := &snap.Habits[i]
					age := clock.DaysBetween(h.BecameHabitAt, today)
					fmt.Fprintf(out, "  %s  %s %s\n", h.Name, ui.StreakBadge(h.Streak, h.FrozenStreaks),
						ui.Muted.Render(fmt.Sprintf("(habit for %d days)", age)))
				}
				fmt.Fprintln(out, "")
			}

			openCount := 0
			for _, t := range snap.Tasks {
				if !t.Completed {
					openCount++
				}
			}
			unlocked := 0
			for _, a := range snap.Achievements {
				if a.Unlocked {
					unlocked++
				}
			}
			fmt.Fprintln(out, ui.LabelValue("Open tasks", openCount))
			fmt.Fprintln(out, ui.LabelValue("Achievements", fmt.Sprintf("%d/%d", unlocked, len(snap.Achievements))))
			return nil
		},
	}

	return cmd
}
