package tracker

import "github.com/alexanderramin/zeit/internal/domain"

// ChartEntry is one plotted value: a task's overall duration keyed by its id.
type ChartEntry struct {
	Duration float64
	TaskID   string
}

// ChartEntries converts tasks into chart entries, one per task, in order.
func ChartEntries(tasks []*domain.Task) []ChartEntry {
	entries := make([]ChartEntry, 0, len(tasks))
	for _, t := range tasks {
		entries = append(entries, ChartEntry{Duration: t.OverallDuration(), TaskID: t.ID})
	}
	return entries
}

// Labels returns the display names of tasks, parallel to ChartEntries.
func Labels(tasks []*domain.Task) []string {
	labels := make([]string, 0, len(tasks))
	for _, t := range tasks {
		labels = append(labels, t.Name)
	}
	return labels
}
