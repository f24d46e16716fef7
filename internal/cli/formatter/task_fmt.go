package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/zeit/internal/domain"
	"github.com/alexanderramin/zeit/internal/tracker"
)

// FormatTaskList renders every task with its state and tracked time.
func FormatTaskList(tasks []*domain.Task, now time.Time) string {
	if len(tasks) == 0 {
		return Dim("No tasks yet. Add one with: zeit task add NAME") + "\n"
	}

	headers := []string{"ID", "NAME", "STATE", "RECORDS", "TRACKED", "LAST"}
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		last := Dim("--")
		if n := len(t.Records); n > 0 {
			last = HumanTimestamp(t.Records[n-1].StartedAt, now)
		}
		rows = append(rows, []string{
			Dim(TruncID(t.ID)),
			Bold(t.Name),
			ActivePill(t.IsActive()),
			fmt.Sprintf("%d", len(t.Records)),
			FormatMinutes(t.OverallDuration()),
			last,
		})
	}
	return RenderBox("Tasks", RenderTable(headers, rows))
}

// FormatActive renders the running tasks with their live elapsed time.
func FormatActive(active []*domain.Task, now time.Time) string {
	if len(active) == 0 {
		return Dim("Nothing is running.") + "\n"
	}

	var b strings.Builder
	for _, t := range active {
		since := ""
		if rec := t.OpenRecord(); rec != nil {
			since = Dim(fmt.Sprintf("started %s", rec.StartedAt.In(now.Location()).Format("15:04")))
		}
		fmt.Fprintf(&b, "%s  %s  %s  %s\n",
			ActivePill(true),
			Bold(t.Name),
			StyleGreen.Render(FormatElapsed(t.Elapsed(now))),
			since,
		)
	}
	return b.String()
}

// FormatReport renders a filtered task table and, when chartWidth > 0, the
// bar chart built from the same entries and labels.
func FormatReport(from, to *time.Time, tasks []*domain.Task, entries []tracker.ChartEntry, labels []string, total float64, chartWidth int) string {
	var b strings.Builder
	b.WriteString(Dim(DateRange(from, to)) + "\n\n")

	if len(entries) == 0 {
		b.WriteString(Dim("No recorded time in range.") + "\n")
		return RenderBox("Report", b.String())
	}

	headers := []string{"ID", "NAME", "RECORDS", "TRACKED", "SHARE"}
	rows := make([][]string, 0, len(entries))
	for i, e := range entries {
		share := 0.0
		if total > 0 {
			share = e.Duration / total * 100
		}
		name := TruncID(e.TaskID)
		if i < len(labels) {
			name = labels[i]
		}
		records := 0
		if i < len(tasks) {
			records = len(tasks[i].Records)
		}
		rows = append(rows, []string{
			Dim(TruncID(e.TaskID)),
			Bold(name),
			fmt.Sprintf("%d", records),
			FormatMinutes(e.Duration),
			fmt.Sprintf("%3.0f%%", share),
		})
	}
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n" + Bold("Total: ") + FormatMinutes(total) + "\n")

	if chartWidth > 0 {
		b.WriteString("\n" + RenderBarChart(entries, labels, chartWidth))
	}
	return RenderBox("Report", b.String())
}
