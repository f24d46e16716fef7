package domain

import "time"

// TimeRecord is one start/end interval of activity. EndedAt is nil while
// the record is open.
type TimeRecord struct {
	ID        string
	TaskID    string
	StartedAt time.Time
	EndedAt   *time.Time
}

// IsOpen reports whether the record has not been closed yet.
func (r *TimeRecord) IsOpen() bool {
	return r.EndedAt == nil
}

// Minutes returns the length of a closed record in minutes. Open records
// contribute nothing until they are closed.
func (r *TimeRecord) Minutes() float64 {
	if r.EndedAt == nil {
		return 0
	}
	return r.EndedAt.Sub(r.StartedAt).Minutes()
}

// Task is a named unit of tracked work. A task is active iff its last
// record is open; at most one record is ever open.
type Task struct {
	ID        string
	Name      string
	Records   []TimeRecord
	CreatedAt time.Time
}

// IsActive reports whether the task currently has an open record.
func (t *Task) IsActive() bool {
	return t.openIndex() >= 0
}

// Start opens a new record at now.
func (t *Task) Start(recordID string, now time.Time) (TimeRecord, error) {
	if t.IsActive() {
		return TimeRecord{}, ErrTaskActive
	}
	rec := TimeRecord{
		ID:        recordID,
		TaskID:    t.ID,
		StartedAt: now,
	}
	t.Records = append(t.Records, rec)
	return rec, nil
}

// Stop closes the open record at now. A clock that reads earlier than the
// record start closes the record with zero length so start <= end holds.
func (t *Task) Stop(now time.Time) (TimeRecord, error) {
	i := t.openIndex()
	if i < 0 {
		return TimeRecord{}, ErrTaskNotActive
	}
	rec := &t.Records[i]
	if now.Before(rec.StartedAt) {
		now = rec.StartedAt
	}
	rec.EndedAt = &now
	return *rec, nil
}

// OpenRecord returns the currently open record, or nil.
func (t *Task) OpenRecord() *TimeRecord {
	i := t.openIndex()
	if i < 0 {
		return nil
	}
	return &t.Records[i]
}

// OverallDuration sums the closed records in minutes.
func (t *Task) OverallDuration() float64 {
	var total float64
	for i := range t.Records {
		total += t.Records[i].Minutes()
	}
	return total
}

// Elapsed is OverallDuration plus the running time of an open record up to now.
func (t *Task) Elapsed(now time.Time) time.Duration {
	var total time.Duration
	for i := range t.Records {
		r := &t.Records[i]
		end := now
		if r.EndedAt != nil {
			end = *r.EndedAt
		}
		if end.After(r.StartedAt) {
			total += end.Sub(r.StartedAt)
		}
	}
	return total
}

// HasRecordsBefore reports whether any record started strictly before date.
func (t *Task) HasRecordsBefore(date time.Time) bool {
	for i := range t.Records {
		if t.Records[i].StartedAt.Before(date) {
			return true
		}
	}
	return false
}

// HasRecordsAfter reports whether any closed record ended strictly after date.
// Open records have no end and are not counted.
func (t *Task) HasRecordsAfter(date time.Time) bool {
	for i := range t.Records {
		if end := t.Records[i].EndedAt; end != nil && end.After(date) {
			return true
		}
	}
	return false
}

func (t *Task) openIndex() int {
	for i := len(t.Records) - 1; i >= 0; i-- {
		if t.Records[i].IsOpen() {
			return i
		}
	}
	return -1
}
