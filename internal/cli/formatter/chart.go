package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/zeit/internal/tracker"
	"github.com/charmbracelet/lipgloss"
)

const (
	barBlock     = "█"
	minChartBars = 10
)

// RenderBarChart draws one horizontal bar per entry, scaled to the largest
// duration. labels must be parallel to entries; missing labels fall back to
// the truncated task id.
func RenderBarChart(entries []tracker.ChartEntry, labels []string, width int) string {
	if len(entries) == 0 {
		return Dim("No recorded time in range.") + "\n"
	}
	if width < minChartBars {
		width = minChartBars
	}

	names := make([]string, len(entries))
	labelWidth := 0
	var max float64
	for i, e := range entries {
		names[i] = TruncID(e.TaskID)
		if i < len(labels) && labels[i] != "" {
			names[i] = labels[i]
		}
		if w := lipgloss.Width(names[i]); w > labelWidth {
			labelWidth = w
		}
		if e.Duration > max {
			max = e.Duration
		}
	}

	var b strings.Builder
	for i, e := range entries {
		n := 0
		if max > 0 {
			n = int(e.Duration / max * float64(width))
		}
		if n == 0 && e.Duration > 0 {
			n = 1
		}
		style := chartPalette[i%len(chartPalette)]
		pad := strings.Repeat(" ", labelWidth-lipgloss.Width(names[i]))
		fmt.Fprintf(&b, "%s%s  %s%s %s\n",
			names[i], pad,
			style.Render(strings.Repeat(barBlock, n)),
			strings.Repeat(" ", width-n),
			Dim(FormatMinutes(e.Duration)),
		)
	}
	return b.String()
}
