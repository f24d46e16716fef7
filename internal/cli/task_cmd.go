package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/zeit/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskRenameCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var start bool

	cmd := &cobra.Command{
		Use:   "add [NAME]",
		Short: "Add a task (prompts for the name when omitted)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			name := strings.Join(args, " ")

			if name == "" {
				if !app.interactive() {
					return fmt.Errorf("task name is required")
				}
				if err := newTaskForm(&name, &start).Run(); err != nil {
					return err
				}
			}

			task, err := app.Tasks.Create(ctx, name)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Added task %s (%s)\n", formatter.Bold(task.Name), formatter.TruncID(task.ID))

			if start {
				if _, err := app.Tracking.Start(ctx, task.ID); err != nil {
					return err
				}
				fmt.Fprintf(out, "Started %s\n", formatter.Bold(task.Name))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&start, "start", false, "Start tracking the new task immediately")
	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.Tasks.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTaskList(tasks, app.now()))
			return nil
		},
	}
}

func newTaskRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename TASK NEW-NAME",
		Short: "Rename a task",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args[1:], " ")
			if err := app.Tasks.Rename(context.Background(), args[0], name); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed %s to %s\n", args[0], formatter.Bold(name))
			return nil
		},
	}
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm TASK",
		Aliases: []string{"remove"},
		Short:   "Remove a task and its time records",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tasks.Remove(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed task %s\n", args[0])
			return nil
		},
	}
}
