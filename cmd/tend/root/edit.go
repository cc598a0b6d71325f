package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"tend/internal/engine"
	"tend/internal/ui"
)

func newEditCmd() *cobra.Command {
	var name string
	var days string
	var at string
	var after string
	var reward string
	var clearTrigger bool
	var task bool

	cmd := &cobra.Command{
		Use:   "edit <id|name>",
		Short: "Edit a ritual or habit (or rename a --task)",
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
				if !cmd.Flags().Changed("name") {
					return errors.New("--task supports renaming only; pass --name")
				}
				t, err := svc.FindTaskByIDOrName(ctx, args[0])
				if err != nil {
					return err
				}
				if t == nil {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No such task; nothing to edit."))
					return nil
				}
				renamed, err := svc.RenameTask(ctx, t.ID, name)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Renamed task to ")+renamed.Name)
				return nil
			}

			it, err := svc.FindByIDOrName(ctx, args[0])
			if err != nil {
				return err
			}
			if it == nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No such item; nothing to edit."))
				return nil
			}

			in := engine.UpdateItemInput{ID: it.ID, ClearTrigger: clearTrigger}
			if cmd.Flags().Changed("name") {
				in.Name = &name
			}
			if cmd.Flags().Changed("reward") {
				in.Reward = &reward
			}
			if cmd.Flags().Changed("days") {
				freq, err := engine.ParseWeekdays(days)
				if err != nil {
					return err
				}
				in.Frequency = &freq
			}
			switch {
			case cmd.Flags().Changed("at"):
				trig, err := engine.TimeTrigger(at)
				if err != nil {
					return err
				}
				in.Trigger = trig
			case cmd.Flags().Changed("after"):
				source, err := svc.FindByIDOrName(ctx, after)
				if err != nil {
					return err
				}
				if source == nil {
					return fmt.Errorf("no item named %q to trigger after", after)
				}
				in.Trigger = engine.HabitTrigger(source.ID, source.Name)
			}

			updated, err := svc.UpdateItem(ctx, in)
			if err != nil {
				return err
			}
			if updated == nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No such item; nothing to edit."))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Updated ")+updated.Name+
				ui.Muted.Render(fmt.Sprintf(" (%s, %s)", updated.Frequency, updated.Trigger.Describe())))
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "New name")
	cmd.Flags().StringVarP(&days, "days", "d", "", "New schedule")
	cmd.Flags().StringVar(&at, "at", "", "New time trigger (HH:MM)")
	cmd.Flags().StringVar(&after, "after", "", "New habit trigger source")
	cmd.Flags().StringVarP(&reward, "reward", "r", "", "New reward text")
	cmd.Flags().BoolVar(&clearTrigger, "no-trigger", false, "Remove the trigger")
	cmd.Flags().BoolVarP(&task, "task", "t", false, "Rename a one-off task instead")

	return cmd
}
