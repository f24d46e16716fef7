// Package tracker holds the task registry: the ordered task collection the
// rest of the application starts, stops, measures and filters.
package tracker

import (
	"time"

	"github.com/alexanderramin/zeit/internal/domain"
	"github.com/google/uuid"
)

// TaskListFactory produces the registry's initial ordered task list.
type TaskListFactory func() []*domain.Task

// Clock returns the current instant.
type Clock func() time.Time

// Registry owns an ordered list of tasks. The list is fixed when the
// registry is constructed; operations only read it or delegate start/stop
// to individual tasks. A Registry is not safe for concurrent use.
type Registry struct {
	tasks []*domain.Task
	now   Clock
	newID func() string
}

// Option configures a Registry.
type Option func(*Registry)

// WithClock overrides the time source used for start/stop.
func WithClock(c Clock) Option {
	return func(r *Registry) {
		r.now = c
	}
}

// WithIDGenerator overrides how new time record ids are minted.
func WithIDGenerator(fn func() string) Option {
	return func(r *Registry) {
		r.newID = fn
	}
}

// NewRegistry builds a registry whose task list comes from factory.
// A nil factory yields an empty registry.
func NewRegistry(factory TaskListFactory, opts ...Option) *Registry {
	r := &Registry{
		now:   func() time.Time { return time.Now().UTC() },
		newID: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(r)
	}
	if factory != nil {
		r.tasks = factory()
	}
	return r
}

// Tasks returns the registry's task list. The slice is not a copy.
func (r *Registry) Tasks() []*domain.Task {
	return r.tasks
}

// Find returns the task with the given id, or nil.
func (r *Registry) Find(id string) *domain.Task {
	for _, t := range r.tasks {
		if t != nil && t.ID == id {
			return t
		}
	}
	return nil
}

// FindByName returns the first task whose name matches exactly, or nil.
func (r *Registry) FindByName(name string) *domain.Task {
	for _, t := range r.tasks {
		if t != nil && t.Name == name {
			return t
		}
	}
	return nil
}

// Active returns the tasks that currently have an open record, in list order.
func (r *Registry) Active() []*domain.Task {
	return keep(r.tasks, (*domain.Task).IsActive)
}

// StartTask opens a new time record on task at the current instant.
func (r *Registry) StartTask(task *domain.Task) (domain.TimeRecord, error) {
	if task == nil {
		return domain.TimeRecord{}, domain.MissingArgument("task")
	}
	return task.Start(r.newID(), r.now())
}

// StopTask closes the open record on task at the current instant.
func (r *Registry) StopTask(task *domain.Task) (domain.TimeRecord, error) {
	if task == nil {
		return domain.TimeRecord{}, domain.MissingArgument("task")
	}
	return task.Stop(r.now())
}

// IsTaskActive reports whether task has an open record.
func (r *Registry) IsTaskActive(task *domain.Task) (bool, error) {
	if task == nil {
		return false, domain.MissingArgument("task")
	}
	return task.IsActive(), nil
}

// OverallDuration returns the summed length of task's closed records in minutes.
func (r *Registry) OverallDuration(task *domain.Task) (float64, error) {
	if task == nil {
		return 0, domain.MissingArgument("task")
	}
	return task.OverallDuration(), nil
}

// FilteredTasks returns the tasks whose records all fall inside [from, to],
// dropping tasks with no recorded time. Either bound may be nil.
func (r *Registry) FilteredTasks(from, to *time.Time) []*domain.Task {
	filtered := keep(r.tasks, func(*domain.Task) bool { return true })

	if from == nil && to == nil {
		return keep(filtered, hasDuration)
	}
	if from != nil {
		filtered = keep(filtered, func(t *domain.Task) bool { return !t.HasRecordsBefore(*from) })
	}
	if to != nil {
		filtered = keep(filtered, func(t *domain.Task) bool { return !t.HasRecordsAfter(*to) })
	}
	return keep(filtered, hasDuration)
}
