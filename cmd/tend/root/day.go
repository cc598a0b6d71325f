package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"tend/internal/clock"
	"tend/internal/ui"
)

// day steers the simulated clock: a manual test mode where "today"
// moves one discrete day at a time by explicit action.
func newDayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day <on|off|next|prev>",
		Short: "Dev mode: control the simulated date",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("expected one of: on, off, next, prev")
			}
			switch args[0] {
			case "on", "off", "next", "prev":
				return nil
			default:
				return fmt.Errorf("unknown subcommand %q (expected on|off|next|prev)", args[0])
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			var today clock.Date
			switch args[0] {
			case "on":
				today, err = svc.SetDevMode(ctx, true)
			case "off":
				today, err = svc.SetDevMode(ctx, false)
			case "next":
				today, err = svc.AdvanceDay(ctx)
			case "prev":
				today, err = svc.RetreatDay(ctx)
			}
			if err != nil {
				return err
			}

			label := "Today is now"
			if args[0] == "off" {
				label = "Back to the real clock; today is"
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconClock+" "+label+" ")+today.String())
			return nil
		},
	}

	return cmd
}
