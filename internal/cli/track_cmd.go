package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/zeit/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "start TASK",
		Short: "Start recording time on a task (by name, id or id prefix)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := app.Tracking.Start(context.Background(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Started %s at %s\n",
				formatter.Bold(task.Name), app.now().Format("15:04"))
			return nil
		},
	}
}

func newStopCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "stop [TASK]",
		Short: "Stop recording time on a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			out := cmd.OutOrStdout()

			if all || len(args) == 0 {
				stopped, err := app.Tracking.StopAll(ctx)
				if err != nil {
					return err
				}
				if len(stopped) == 0 {
					fmt.Fprintln(out, formatter.Dim("Nothing was running."))
					return nil
				}
				for _, t := range stopped {
					fmt.Fprintf(out, "Stopped %s (%s total)\n",
						formatter.Bold(t.Name), formatter.FormatMinutes(t.OverallDuration()))
				}
				return nil
			}

			task, err := app.Tracking.Stop(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Stopped %s (%s total)\n",
				formatter.Bold(task.Name), formatter.FormatMinutes(task.OverallDuration()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Stop every running task")
	return cmd
}

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show running tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			active, err := app.Tracking.Active(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatActive(active, app.now()))
			return nil
		},
	}
}
