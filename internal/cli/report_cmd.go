package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/zeit/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	from := &dateFlag{now: app.now}
	to := &dateFlag{now: app.now, endOfDay: true}
	var chart bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize tracked time, optionally within a date range",
		Long: `Summarize tracked time per task.

Tasks with any record starting before --from, or ending after the end of
--to, are left out; tasks with no tracked time are always left out.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fromT, toT := from.Time(), to.Time()
			if fromT != nil && toT != nil && !fromT.Before(*toT) {
				return fmt.Errorf("--from must be on or before --to")
			}

			report, err := app.Tracking.Report(context.Background(), fromT, toT)
			if err != nil {
				return err
			}

			width := 0
			if chart {
				width = app.ChartWidth
				if width <= 0 {
					width = 40
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReport(
				report.From, report.To, report.Tasks, report.Entries, report.Labels, report.TotalMinutes, width))
			return nil
		},
	}

	cmd.Flags().Var(from, "from", "Only tasks with no record before this day (YYYY-MM-DD, today, yesterday)")
	cmd.Flags().Var(to, "to", "Only tasks with no record after the end of this day")
	cmd.Flags().BoolVar(&chart, "chart", true, "Draw a bar chart below the table")
	return cmd
}
