package service

import (
	"context"
	"time"

	"github.com/alexanderramin/zeit/internal/domain"
	"github.com/alexanderramin/zeit/internal/tracker"
)

// TaskService manages the stored task list.
type TaskService interface {
	Create(ctx context.Context, name string) (*domain.Task, error)
	Rename(ctx context.Context, ref, name string) error
	Remove(ctx context.Context, ref string) error
	List(ctx context.Context) ([]*domain.Task, error)
}

// TrackingService starts and stops time recording and builds reports.
// Every call rebuilds a tracker.Registry from storage.
type TrackingService interface {
	Registry(ctx context.Context) (*tracker.Registry, error)
	Start(ctx context.Context, ref string) (*domain.Task, error)
	Stop(ctx context.Context, ref string) (*domain.Task, error)
	StopAll(ctx context.Context) ([]*domain.Task, error)
	Active(ctx context.Context) ([]*domain.Task, error)
	Report(ctx context.Context, from, to *time.Time) (*Report, error)
}

// Report is the filtered task set together with its chart series.
type Report struct {
	From, To     *time.Time
	Tasks        []*domain.Task
	Entries      []tracker.ChartEntry
	Labels       []string
	TotalMinutes float64
}
