package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/zeit/internal/domain"
	"github.com/alexanderramin/zeit/internal/tracker"
)

// LoadTasks reads every task in insertion order with its records attached
// in start order.
func LoadTasks(ctx context.Context, tasks TaskRepo, records RecordRepo) ([]*domain.Task, error) {
	list, err := tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	all, err := records.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*domain.Task, len(list))
	for _, t := range list {
		byID[t.ID] = t
	}
	for _, rec := range all {
		t, ok := byID[rec.TaskID]
		if !ok {
			return nil, fmt.Errorf("time record %s references unknown task %s", rec.ID, rec.TaskID)
		}
		t.Records = append(t.Records, rec)
	}
	return list, nil
}

// NewTaskListFactory loads the stored tasks and returns a factory handing
// them to a tracker.Registry.
func NewTaskListFactory(ctx context.Context, tasks TaskRepo, records RecordRepo) (tracker.TaskListFactory, error) {
	list, err := LoadTasks(ctx, tasks, records)
	if err != nil {
		return nil, fmt.Errorf("loading task list: %w", err)
	}
	return func() []*domain.Task { return list }, nil
}
