package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/zeit/internal/domain"
	"github.com/alexanderramin/zeit/internal/repository"
	"github.com/alexanderramin/zeit/internal/service"
	"github.com/alexanderramin/zeit/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func testApp(t *testing.T) (*App, *fakeClock) {
	t.Helper()
	database := testutil.NewTestDB(t)
	tasks := repository.NewSQLiteTaskRepo(database)
	records := repository.NewSQLiteRecordRepo(database)
	uow := testutil.NewTestUoW(database)
	clock := &fakeClock{now: time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)}

	return &App{
		Tasks:      service.NewTaskService(tasks, records, uow),
		Tracking:   service.NewTrackingService(tasks, records, uow, service.WithClock(clock.Now)),
		ChartWidth: 20,
		Now:        clock.Now,
	}, clock
}

func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestTaskAdd_And_List(t *testing.T) {
	app, _ := testApp(t)

	out, err := executeCmd(t, app, "task", "add", "Write", "report")
	require.NoError(t, err)
	assert.Contains(t, out, "Added task Write report")

	out, err = executeCmd(t, app, "task", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Write report")
	assert.Contains(t, out, "stopped")
}

func TestTaskAdd_NoNameNonInteractive(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "task", "add")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "task name is required")
}

func TestTaskAdd_WithStart(t *testing.T) {
	app, _ := testApp(t)

	out, err := executeCmd(t, app, "task", "add", "--start", "Email")
	require.NoError(t, err)
	assert.Contains(t, out, "Started Email")

	active, err := app.Tracking.Active(context.Background())
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Email", active[0].Name)
}

func TestTaskRenameAndRemove(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "task", "add", "Old")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "task", "rename", "Old", "New", "name")
	require.NoError(t, err)
	assert.Contains(t, out, "Renamed Old to New name")

	_, err = executeCmd(t, app, "task", "rm", "New name")
	require.NoError(t, err)

	tasks, err := app.Tasks.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestStartStopStatus(t *testing.T) {
	app, clock := testApp(t)

	_, err := executeCmd(t, app, "task", "add", "Coding")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "start", "Coding")
	require.NoError(t, err)
	assert.Contains(t, out, "Started Coding at 09:00")

	clock.now = clock.now.Add(90 * time.Minute)
	out, err = executeCmd(t, app, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Coding")
	assert.Contains(t, out, "1:30:00")

	out, err = executeCmd(t, app, "stop", "Coding")
	require.NoError(t, err)
	assert.Contains(t, out, "Stopped Coding (1h 30m total)")

	out, err = executeCmd(t, app, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing is running.")
}

func TestStart_AlreadyActive(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "task", "add", "--start", "Coding")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "start", "Coding")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTaskActive)
}

func TestStart_UnknownTask(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "start", "ghost")
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStop_NoArgsStopsAll(t *testing.T) {
	app, clock := testApp(t)

	out, err := executeCmd(t, app, "stop")
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing was running.")

	_, err = executeCmd(t, app, "task", "add", "--start", "A")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "task", "add", "--start", "B")
	require.NoError(t, err)
	clock.now = clock.now.Add(10 * time.Minute)

	out, err = executeCmd(t, app, "stop", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "Stopped A (10m total)")
	assert.Contains(t, out, "Stopped B (10m total)")
}

func TestReport_DateRange(t *testing.T) {
	app, clock := testApp(t)

	_, err := executeCmd(t, app, "task", "add", "--start", "Alpha")
	require.NoError(t, err)
	clock.now = clock.now.Add(30 * time.Minute)
	_, err = executeCmd(t, app, "stop", "Alpha")
	require.NoError(t, err)

	// Never-started tasks have zero duration and are always left out.
	_, err = executeCmd(t, app, "task", "add", "Idle")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "report")
	require.NoError(t, err)
	assert.Contains(t, out, "Alpha")
	assert.Contains(t, out, "30m")
	assert.NotContains(t, out, "Idle")

	out, err = executeCmd(t, app, "report", "--from", "2025-06-15", "--to", "today")
	require.NoError(t, err)
	assert.Contains(t, out, "Alpha")

	out, err = executeCmd(t, app, "report", "--from", "2025-06-16")
	require.NoError(t, err)
	assert.Contains(t, out, "No recorded time in range.")

	out, err = executeCmd(t, app, "report", "--to", "yesterday")
	require.NoError(t, err)
	assert.Contains(t, out, "No recorded time in range.")
}

func TestReport_ChartToggle(t *testing.T) {
	app, clock := testApp(t)

	_, err := executeCmd(t, app, "task", "add", "--start", "Alpha")
	require.NoError(t, err)
	clock.now = clock.now.Add(30 * time.Minute)
	_, err = executeCmd(t, app, "stop", "--all")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "report")
	require.NoError(t, err)
	assert.Contains(t, out, "█")

	out, err = executeCmd(t, app, "report", "--chart=false")
	require.NoError(t, err)
	assert.NotContains(t, out, "█")
}

func TestReport_InvalidRange(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "report", "--from", "2025-06-16", "--to", "2025-06-10")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--from must be on or before --to")

	_, err = executeCmd(t, app, "report", "--from", "last week")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid date")
}

func TestParseDay(t *testing.T) {
	now := time.Date(2025, 6, 15, 17, 45, 0, 0, time.UTC)

	got, err := parseDay("today", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), got)

	got, err = parseDay("Yesterday", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC), got)

	got, err = parseDay("2024-02-29", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), got)

	_, err = parseDay("2024-13-01", now)
	assert.Error(t, err)
}

func TestDateFlag_EndOfDay(t *testing.T) {
	now := time.Date(2025, 6, 15, 17, 45, 0, 0, time.UTC)
	f := &dateFlag{now: func() time.Time { return now }, endOfDay: true}

	assert.Nil(t, f.Time())
	require.NoError(t, f.Set("2025-06-10"))
	require.NotNil(t, f.Time())
	assert.Equal(t, time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC), *f.Time())
	assert.Equal(t, "2025-06-10", f.String())
	assert.Equal(t, "date", f.Type())
}

func TestValidateTaskName(t *testing.T) {
	assert.Error(t, validateTaskName("   "))
	assert.NoError(t, validateTaskName("Focus"))
}
