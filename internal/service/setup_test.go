package service

import (
	"database/sql"
	"testing"
	"time"

	"github.com/alexanderramin/zeit/internal/repository"
	"github.com/alexanderramin/zeit/internal/testutil"
)

// testClock is a settable time source for start/stop.
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func setupRepos(t *testing.T) (*sql.DB, *repository.SQLiteTaskRepo, *repository.SQLiteRecordRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	return database, repository.NewSQLiteTaskRepo(database), repository.NewSQLiteRecordRepo(database)
}

func setupServices(t *testing.T) (TaskService, TrackingService, *testClock) {
	t.Helper()
	database, tasks, records := setupRepos(t)
	uow := testutil.NewTestUoW(database)
	clock := &testClock{now: time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)}
	return NewTaskService(tasks, records, uow),
		NewTrackingService(tasks, records, uow, WithClock(clock.Now)),
		clock
}
