package tracker

import (
	"testing"
	"time"

	"github.com/alexanderramin/zeit/internal/domain"
	"github.com/alexanderramin/zeit/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithoutRecordsBefore_NilArgs(t *testing.T) {
	date := today

	_, err := WithoutRecordsBefore(nil, []*domain.Task{})
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Contains(t, err.Error(), `argument "date" must not be nil`)

	_, err = WithoutRecordsBefore(&date, nil)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Contains(t, err.Error(), `argument "tasks" must not be nil`)

	// The date is checked first.
	_, err = WithoutRecordsBefore(nil, nil)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Contains(t, err.Error(), `"date"`)
}

func TestWithoutRecordsBefore_EmptyList(t *testing.T) {
	date := today
	got, err := WithoutRecordsBefore(&date, []*domain.Task{})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestWithoutRecordsBefore_Filters(t *testing.T) {
	empty := testutil.NewTestTask("empty")
	old := testutil.NewTestTask("old", testutil.WithRecord(yesterday, time.Hour))
	fresh := testutil.NewTestTask("fresh", testutil.WithRecord(today.Add(time.Hour), time.Hour))
	boundary := testutil.NewTestTask("boundary", testutil.WithRecord(today, time.Minute))

	date := today
	got, err := WithoutRecordsBefore(&date, []*domain.Task{empty, old, fresh, boundary})
	require.NoError(t, err)
	assert.Equal(t, []*domain.Task{empty, fresh, boundary}, got)
}

func TestWithoutRecordsAfter_NilArgs(t *testing.T) {
	date := today

	_, err := WithoutRecordsAfter(nil, []*domain.Task{})
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Contains(t, err.Error(), `"date"`)

	_, err = WithoutRecordsAfter(&date, nil)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Contains(t, err.Error(), `"tasks"`)
}

func TestWithoutRecordsAfter_Filters(t *testing.T) {
	empty := testutil.NewTestTask("empty")
	late := testutil.NewTestTask("late", testutil.WithRecord(today.Add(-30*time.Minute), time.Hour))
	early := testutil.NewTestTask("early", testutil.WithRecord(yesterday, time.Hour))
	boundary := testutil.NewTestTask("boundary", testutil.WithRecord(today.Add(-time.Hour), time.Hour))
	running := testutil.NewTestTask("running", testutil.WithOpenRecord(today.Add(time.Hour)))

	date := today
	got, err := WithoutRecordsAfter(&date, []*domain.Task{empty, late, early, boundary, running})
	require.NoError(t, err)
	assert.Equal(t, []*domain.Task{empty, early, boundary, running}, got)
}

func TestWithoutZeroDuration(t *testing.T) {
	empty := testutil.NewTestTask("empty")
	running := testutil.NewTestTask("running", testutil.WithOpenRecord(today))
	worked := testutil.NewTestTask("worked", testutil.WithRecord(today, time.Minute))

	got, err := WithoutZeroDuration([]*domain.Task{empty, running, worked, nil})
	require.NoError(t, err)
	assert.Equal(t, []*domain.Task{worked}, got)

	_, err = WithoutZeroDuration(nil)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}
