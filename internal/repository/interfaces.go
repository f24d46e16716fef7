package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/zeit/internal/domain"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrDuplicateKey = errors.New("already exists")
)

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	GetByName(ctx context.Context, name string) (*domain.Task, error)
	List(ctx context.Context) ([]*domain.Task, error)
	Rename(ctx context.Context, id, name string) error
	Delete(ctx context.Context, id string) error
}

type RecordRepo interface {
	Create(ctx context.Context, r *domain.TimeRecord) error
	Close(ctx context.Context, r *domain.TimeRecord) error
	GetOpen(ctx context.Context, taskID string) (*domain.TimeRecord, error)
	ListByTask(ctx context.Context, taskID string) ([]domain.TimeRecord, error)
	ListAll(ctx context.Context) ([]domain.TimeRecord, error)
}
