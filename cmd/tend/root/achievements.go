package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tend/internal/ui"
)

func newAchievementsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "achievements",
		Short: "Show achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			// Re-evaluate so time-based badges are fresh when viewed.
			if _, err := svc.EvaluateAchievements(ctx); err != nil {
				return err
			}
			snap, err := svc.Snapshot(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, "Achievements"))
			for _, a := range snap.Achievements {
				switch {
				case a.Unlocked:
					fmt.Fprintf(out, "  %s %s %s %s\n", a.Icon, ui.Good.Render(a.Name), a.Description,
						ui.Muted.Render("(unlocked "+a.UnlockedAt.String()+")"))
				case a.MaxProgress > 0:
					fmt.Fprintf(out, "  %s %s %s\n", a.Icon, ui.Muted.Render(a.Name+" — "+a.Description),
						ui.Muted.Render(fmt.Sprintf("[%d/%d]", a.Progress, a.MaxProgress)))
				default:
					fmt.Fprintf(out, "  %s %s\n", a.Icon, ui.Muted.Render(a.Name+" — "+a.Description))
				}
			}
			return nil
		},
	}

	return cmd
}
