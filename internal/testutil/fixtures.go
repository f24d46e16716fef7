package testutil

import (
	"time"

	"github.com/alexanderramin/zeit/internal/domain"
	"github.com/google/uuid"
)

// Task options
type TaskOption func(*domain.Task)

// WithRecord appends a closed record starting at start and lasting d.
func WithRecord(start time.Time, d time.Duration) TaskOption {
	return func(t *domain.Task) {
		end := start.Add(d)
		t.Records = append(t.Records, domain.TimeRecord{
			ID:        uuid.New().String(),
			TaskID:    t.ID,
			StartedAt: start,
			EndedAt:   &end,
		})
	}
}

// WithOpenRecord appends a running record starting at start.
func WithOpenRecord(start time.Time) TaskOption {
	return func(t *domain.Task) {
		t.Records = append(t.Records, domain.TimeRecord{
			ID:        uuid.New().String(),
			TaskID:    t.ID,
			StartedAt: start,
		})
	}
}

func WithCreatedAt(ts time.Time) TaskOption {
	return func(t *domain.Task) {
		t.CreatedAt = ts
	}
}

func NewTestTask(name string, opts ...TaskOption) *domain.Task {
	t := &domain.Task{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// StaticTasks wraps a fixed task list as a task-list factory.
func StaticTasks(tasks ...*domain.Task) func() []*domain.Task {
	return func() []*domain.Task {
		return tasks
	}
}
