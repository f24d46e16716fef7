package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/zeit/internal/db"
	"github.com/alexanderramin/zeit/internal/domain"
	"github.com/alexanderramin/zeit/internal/repository"
	"github.com/alexanderramin/zeit/internal/tracker"
	"github.com/google/uuid"
)

type taskService struct {
	tasks    repository.TaskRepo
	records  repository.RecordRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewTaskService(tasks repository.TaskRepo, records repository.RecordRepo, uow db.UnitOfWork, observers ...UseCaseObserver) TaskService {
	return &taskService{
		tasks:    tasks,
		records:  records,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *taskService) Create(ctx context.Context, name string) (task *domain.Task, err error) {
	fields := map[string]any{"name": name}
	defer observe(ctx, s.observer, "create-task", time.Now(), fields, &err)

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.MissingArgument("name")
	}
	task = &domain.Task{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	if err = s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	fields["task_id"] = task.ID
	return task, nil
}

func (s *taskService) Rename(ctx context.Context, ref, name string) (err error) {
	defer observe(ctx, s.observer, "rename-task", time.Now(), map[string]any{"ref": ref, "name": name}, &err)

	name = strings.TrimSpace(name)
	if name == "" {
		return domain.MissingArgument("name")
	}
	task, err := s.resolve(ctx, ref)
	if err != nil {
		return err
	}
	return s.tasks.Rename(ctx, task.ID, name)
}

// Remove deletes a task; its records go with it. The core never deletes
// tasks, so this is only reachable from the task management commands.
func (s *taskService) Remove(ctx context.Context, ref string) (err error) {
	defer observe(ctx, s.observer, "remove-task", time.Now(), map[string]any{"ref": ref}, &err)

	task, err := s.resolve(ctx, ref)
	if err != nil {
		return err
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteTaskRepo(tx).Delete(ctx, task.ID)
	})
}

func (s *taskService) List(ctx context.Context) ([]*domain.Task, error) {
	return repository.LoadTasks(ctx, s.tasks, s.records)
}

func (s *taskService) resolve(ctx context.Context, ref string) (*domain.Task, error) {
	factory, err := repository.NewTaskListFactory(ctx, s.tasks, s.records)
	if err != nil {
		return nil, err
	}
	task, err := resolveTask(tracker.NewRegistry(factory), ref)
	if err != nil {
		return nil, fmt.Errorf("resolving task: %w", err)
	}
	return task, nil
}
