package tracker

import (
	"time"

	"github.com/alexanderramin/zeit/internal/domain"
)

// WithoutRecordsBefore returns the tasks that have no record starting
// strictly before date. Tasks without records are kept.
func WithoutRecordsBefore(date *time.Time, tasks []*domain.Task) ([]*domain.Task, error) {
	if date == nil {
		return nil, domain.MissingArgument("date")
	}
	if tasks == nil {
		return nil, domain.MissingArgument("tasks")
	}
	d := *date
	return keep(tasks, func(t *domain.Task) bool { return !t.HasRecordsBefore(d) }), nil
}

// WithoutRecordsAfter returns the tasks that have no record ending
// strictly after date. Tasks without records are kept.
func WithoutRecordsAfter(date *time.Time, tasks []*domain.Task) ([]*domain.Task, error) {
	if date == nil {
		return nil, domain.MissingArgument("date")
	}
	if tasks == nil {
		return nil, domain.MissingArgument("tasks")
	}
	d := *date
	return keep(tasks, func(t *domain.Task) bool { return !t.HasRecordsAfter(d) }), nil
}

// WithoutZeroDuration drops tasks whose overall duration is zero.
func WithoutZeroDuration(tasks []*domain.Task) ([]*domain.Task, error) {
	if tasks == nil {
		return nil, domain.MissingArgument("tasks")
	}
	return keep(tasks, hasDuration), nil
}

func hasDuration(t *domain.Task) bool {
	return t.OverallDuration() > 0
}

// keep returns a new, never-nil slice with the non-nil tasks satisfying pred,
// in their original order.
func keep(tasks []*domain.Task, pred func(*domain.Task) bool) []*domain.Task {
	out := make([]*domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if t != nil && pred(t) {
			out = append(out, t)
		}
	}
	return out
}
