package formatter

import (
	"strings"
	"testing"

	"github.com/alexanderramin/zeit/internal/tracker"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderBarChart_ScalesToLargest(t *testing.T) {
	entries := []tracker.ChartEntry{
		{Duration: 60, TaskID: "aaaaaaaa-1"},
		{Duration: 30, TaskID: "bbbbbbbb-2"},
	}
	out := RenderBarChart(entries, []string{"Write", "Read"}, 20)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, 20, strings.Count(lines[0], barBlock))
	assert.Equal(t, 10, strings.Count(lines[1], barBlock))
	assert.True(t, strings.HasPrefix(lines[0], "Write"))
	assert.True(t, strings.HasPrefix(lines[1], "Read "), "labels are padded to a common width")
	assert.Contains(t, lines[0], "1h 00m")
	assert.Contains(t, lines[1], "30m")
	// Duration columns start at the same offset.
	assert.Equal(t, lipgloss.Width(lines[0])-len("1h 00m"), lipgloss.Width(lines[1])-len("30m"))
}

func TestRenderBarChart_TinyValuesStillVisible(t *testing.T) {
	entries := []tracker.ChartEntry{
		{Duration: 1000, TaskID: "a"},
		{Duration: 1, TaskID: "b"},
	}
	out := RenderBarChart(entries, []string{"big", "small"}, 10)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, 1, strings.Count(lines[1], barBlock))
}

func TestRenderBarChart_MissingLabelsUseID(t *testing.T) {
	out := RenderBarChart([]tracker.ChartEntry{{Duration: 5, TaskID: "0123456789"}}, nil, 10)
	assert.Contains(t, out, "01234567")
}

func TestRenderBarChart_Empty(t *testing.T) {
	assert.Contains(t, RenderBarChart(nil, nil, 10), "No recorded time")
}
