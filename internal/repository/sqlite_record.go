package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/zeit/internal/db"
	"github.com/alexanderramin/zeit/internal/domain"
)

// SQLiteRecordRepo implements RecordRepo using the time_records table.
type SQLiteRecordRepo struct {
	db db.DBTX
}

func NewSQLiteRecordRepo(db db.DBTX) *SQLiteRecordRepo {
	return &SQLiteRecordRepo{db: db}
}

const recordColumns = `id, task_id, started_at, ended_at`

func (r *SQLiteRecordRepo) Create(ctx context.Context, rec *domain.TimeRecord) error {
	query := `INSERT INTO time_records (` + recordColumns + `) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		rec.TaskID,
		formatTime(rec.StartedAt),
		nullableTimeToString(rec.EndedAt),
	)
	if err != nil {
		return wrapConstraint("time record", err)
	}
	return nil
}

// Close stores the end timestamp of a record that is still open.
func (r *SQLiteRecordRepo) Close(ctx context.Context, rec *domain.TimeRecord) error {
	if rec.EndedAt == nil {
		return domain.MissingArgument("ended_at")
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE time_records SET ended_at = ? WHERE id = ? AND ended_at IS NULL`,
		formatTime(*rec.EndedAt), rec.ID)
	if err != nil {
		return fmt.Errorf("closing time record: %w", err)
	}
	return expectOneRow(res, "open time record")
}

func (r *SQLiteRecordRepo) GetOpen(ctx context.Context, taskID string) (*domain.TimeRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+recordColumns+` FROM time_records WHERE task_id = ? AND ended_at IS NULL`, taskID)
	rec, err := scanRecord(row)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *SQLiteRecordRepo) ListByTask(ctx context.Context, taskID string) ([]domain.TimeRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+recordColumns+` FROM time_records WHERE task_id = ? ORDER BY started_at, id`, taskID)
	if err != nil {
		return nil, fmt.Errorf("listing time records by task: %w", err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

func (r *SQLiteRecordRepo) ListAll(ctx context.Context) ([]domain.TimeRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+recordColumns+` FROM time_records ORDER BY started_at, id`)
	if err != nil {
		return nil, fmt.Errorf("listing time records: %w", err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

func scanRecord(row rowScanner) (domain.TimeRecord, error) {
	var rec domain.TimeRecord
	var startedAt string
	var endedAt sql.NullString
	if err := row.Scan(&rec.ID, &rec.TaskID, &startedAt, &endedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return rec, fmt.Errorf("time record: %w", ErrNotFound)
		}
		return rec, fmt.Errorf("scanning time record: %w", err)
	}

	var err error
	if rec.StartedAt, err = parseTime(startedAt); err != nil {
		return rec, fmt.Errorf("parsing started_at: %w", err)
	}
	if rec.EndedAt, err = parseNullableTime(endedAt); err != nil {
		return rec, fmt.Errorf("parsing ended_at: %w", err)
	}
	return rec, nil
}

func scanRecords(rows *sql.Rows) ([]domain.TimeRecord, error) {
	var records []domain.TimeRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating time records: %w", err)
	}
	return records, nil
}
