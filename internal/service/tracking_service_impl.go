package service

import (
	"context"
	"slices"
	"time"

	"github.com/alexanderramin/zeit/internal/db"
	"github.com/alexanderramin/zeit/internal/domain"
	"github.com/alexanderramin/zeit/internal/repository"
	"github.com/alexanderramin/zeit/internal/tracker"
)

type trackingService struct {
	tasks    repository.TaskRepo
	records  repository.RecordRepo
	uow      db.UnitOfWork
	clock    tracker.Clock
	observer UseCaseObserver
}

// TrackingOption configures a TrackingService.
type TrackingOption func(*trackingService)

// WithClock pins the instant used for start/stop.
func WithClock(c tracker.Clock) TrackingOption {
	return func(s *trackingService) {
		s.clock = c
	}
}

// WithObserver sets the use-case observer.
func WithObserver(o UseCaseObserver) TrackingOption {
	return func(s *trackingService) {
		s.observer = useCaseObserverOrNoop([]UseCaseObserver{o})
	}
}

func NewTrackingService(tasks repository.TaskRepo, records repository.RecordRepo, uow db.UnitOfWork, opts ...TrackingOption) TrackingService {
	s := &trackingService{
		tasks:    tasks,
		records:  records,
		uow:      uow,
		observer: NoopUseCaseObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *trackingService) Registry(ctx context.Context) (*tracker.Registry, error) {
	factory, err := repository.NewTaskListFactory(ctx, s.tasks, s.records)
	if err != nil {
		return nil, err
	}
	var opts []tracker.Option
	if s.clock != nil {
		opts = append(opts, tracker.WithClock(s.clock))
	}
	return tracker.NewRegistry(factory, opts...), nil
}

func (s *trackingService) Start(ctx context.Context, ref string) (task *domain.Task, err error) {
	fields := map[string]any{"ref": ref}
	defer observe(ctx, s.observer, "start-task", time.Now(), fields, &err)

	reg, err := s.Registry(ctx)
	if err != nil {
		return nil, err
	}
	if task, err = resolveTask(reg, ref); err != nil {
		return nil, err
	}
	fields["task_id"] = task.ID

	snapshot := slices.Clone(task.Records)
	rec, err := reg.StartTask(task)
	if err != nil {
		return nil, err
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteRecordRepo(tx).Create(ctx, &rec)
	})
	if err != nil {
		task.Records = snapshot
		return nil, err
	}
	return task, nil
}

func (s *trackingService) Stop(ctx context.Context, ref string) (task *domain.Task, err error) {
	fields := map[string]any{"ref": ref}
	defer observe(ctx, s.observer, "stop-task", time.Now(), fields, &err)

	reg, err := s.Registry(ctx)
	if err != nil {
		return nil, err
	}
	if task, err = resolveTask(reg, ref); err != nil {
		return nil, err
	}
	fields["task_id"] = task.ID

	snapshot := slices.Clone(task.Records)
	rec, err := reg.StopTask(task)
	if err != nil {
		return nil, err
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteRecordRepo(tx).Close(ctx, &rec)
	})
	if err != nil {
		task.Records = snapshot
		return nil, err
	}
	fields["minutes"] = rec.Minutes()
	return task, nil
}

// StopAll closes every open record in one transaction. Either all active
// tasks are stopped or none are.
func (s *trackingService) StopAll(ctx context.Context) (stopped []*domain.Task, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "stop-all", time.Now(), fields, &err)

	reg, err := s.Registry(ctx)
	if err != nil {
		return nil, err
	}
	active := reg.Active()
	snapshots := make([][]domain.TimeRecord, len(active))
	closed := make([]domain.TimeRecord, 0, len(active))
	for i, task := range active {
		snapshots[i] = slices.Clone(task.Records)
		rec, stopErr := reg.StopTask(task)
		if stopErr != nil {
			return nil, stopErr
		}
		closed = append(closed, rec)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		records := repository.NewSQLiteRecordRepo(tx)
		for i := range closed {
			if err := records.Close(ctx, &closed[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		for i, task := range active {
			task.Records = snapshots[i]
		}
		return nil, err
	}
	fields["count"] = len(active)
	return active, nil
}

func (s *trackingService) Active(ctx context.Context) ([]*domain.Task, error) {
	reg, err := s.Registry(ctx)
	if err != nil {
		return nil, err
	}
	return reg.Active(), nil
}

func (s *trackingService) Report(ctx context.Context, from, to *time.Time) (report *Report, err error) {
	fields := map[string]any{"from": from, "to": to}
	defer observe(ctx, s.observer, "report", time.Now(), fields, &err)

	reg, err := s.Registry(ctx)
	if err != nil {
		return nil, err
	}
	filtered := reg.FilteredTasks(from, to)

	report = &Report{
		From:    from,
		To:      to,
		Tasks:   filtered,
		Entries: tracker.ChartEntries(filtered),
		Labels:  tracker.Labels(filtered),
	}
	for _, e := range report.Entries {
		report.TotalMinutes += e.Duration
	}
	fields["tasks"] = len(filtered)
	return report, nil
}
