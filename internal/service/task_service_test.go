package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/zeit/internal/domain"
	"github.com/alexanderramin/zeit/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskService_CreateAndList(t *testing.T) {
	tasks, _, _ := setupServices(t)
	ctx := context.Background()

	a, err := tasks.Create(ctx, "  Alpha ")
	require.NoError(t, err)
	assert.Equal(t, "Alpha", a.Name)
	assert.NotEmpty(t, a.ID)

	_, err = tasks.Create(ctx, "Beta")
	require.NoError(t, err)

	list, err := tasks.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Alpha", list[0].Name)
	assert.Equal(t, "Beta", list[1].Name)
}

func TestTaskService_CreateValidation(t *testing.T) {
	tasks, _, _ := setupServices(t)
	ctx := context.Background()

	_, err := tasks.Create(ctx, "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = tasks.Create(ctx, "Dup")
	require.NoError(t, err)
	_, err = tasks.Create(ctx, "Dup")
	assert.ErrorIs(t, err, repository.ErrDuplicateKey)
}

func TestTaskService_Rename(t *testing.T) {
	tasks, _, _ := setupServices(t)
	ctx := context.Background()

	_, err := tasks.Create(ctx, "Old")
	require.NoError(t, err)
	require.NoError(t, tasks.Rename(ctx, "Old", "New"))

	list, err := tasks.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "New", list[0].Name)

	assert.ErrorIs(t, tasks.Rename(ctx, "New", ""), domain.ErrInvalidArgument)
	assert.ErrorIs(t, tasks.Rename(ctx, "missing", "x"), repository.ErrNotFound)
}

func TestTaskService_RemoveDropsRecords(t *testing.T) {
	tasks, tracking, _ := setupServices(t)
	ctx := context.Background()

	_, err := tasks.Create(ctx, "Doomed")
	require.NoError(t, err)
	_, err = tracking.Start(ctx, "Doomed")
	require.NoError(t, err)

	require.NoError(t, tasks.Remove(ctx, "Doomed"))

	list, err := tasks.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	active, err := tracking.Active(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)
}
