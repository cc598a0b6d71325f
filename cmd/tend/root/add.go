package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"tend/internal/engine"
	"tend/internal/ui"
)

func newAddCmd() *cobra.Command {
	var days string
	var at string
	var after string
	var reward string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a ritual",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if at != "" && after != "" {
				return errors.New("--at and --after are mutually exclusive")
			}

			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			freq, err := engine.ParseWeekdays(days)
			if err != nil {
				return err
			}

			var trig *engine.Trigger
			switch {
			case at != "":
				trig, err = engine.TimeTrigger(at)
				if err != nil {
					return err
				}
			case after != "":
				source, err := svc.FindByIDOrName(ctx, after)
				if err != nil {
					return err
				}
				if source == nil {
					return fmt.Errorf("no item named %q to trigger after", after)
				}
				trig = engine.HabitTrigger(source.ID, source.Name)
			}

			it, err := svc.CreateRitual(ctx, engine.CreateRitualInput{
				Name:      args[0],
				Trigger:   trig,
				Frequency: freq,
				Reward:    reward,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Added ritual ")+it.Name+
				ui.Muted.Render(fmt.Sprintf(" (%s, %s)", it.Frequency, it.Trigger.Describe())))
			return nil
		},
	}

	cmd.Flags().StringVarP(&days, "days", "d", "daily", "Schedule (daily|weekdays|weekends|mon,wed,fri|1,3,5)")
	cmd.Flags().StringVar(&at, "at", "", "Time trigger (HH:MM)")
	cmd.Flags().StringVar(&after, "after", "", "Habit trigger: due after this item completes")
	cmd.Flags().StringVarP(&reward, "reward", "r", "", "Reward text shown on completion")

	return cmd
}
