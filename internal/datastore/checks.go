package datastore

import (
	"fmt"
	"time"

	"github.com/lepinkainen/isbncheck/internal/report"
)

const (
	// DatabaseName is the Datasette database check results are published to.
	DatabaseName = "isbncheck"
	// ChecksTable holds one row per validated candidate.
	ChecksTable = "isbn_checks"
)

// ChecksSchema creates the check history table.
const ChecksSchema = `CREATE TABLE IF NOT EXISTS isbn_checks (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	input TEXT NOT NULL,
	valid INTEGER NOT NULL,
	kind TEXT,
	digits INTEGER,
	detail TEXT,
	checked_at TEXT NOT NULL
)`

// CheckRecord is a stored check result.
type CheckRecord struct {
	report.Result `yaml:",inline"`
	CheckedAt     time.Time `json:"checked_at" yaml:"checked_at"`
}

// RecordChecks creates the history table when needed and stores results.
func RecordChecks(store Store, results []report.Result, now time.Time) error {
	if err := store.CreateTable(ChecksSchema); err != nil {
		return err
	}

	records := make([]map[string]any, len(results))
	for i, r := range results {
		records[i] = checkToMap(r, now)
	}

	if err := store.BatchInsert(DatabaseName, ChecksTable, records); err != nil {
		return fmt.Errorf("failed to record checks: %w", err)
	}
	return nil
}

func checkToMap(r report.Result, now time.Time) map[string]any {
	valid := 0
	if r.Valid {
		valid = 1
	}
	return map[string]any{
		"input":      r.Input,
		"valid":      valid,
		"kind":       r.Kind,
		"digits":     r.Digits,
		"detail":     r.Detail,
		"checked_at": now.UTC().Format(time.RFC3339),
	}
}

// RecentChecks returns up to limit stored results, newest first.
func (s *SQLiteStore) RecentChecks(limit int) ([]CheckRecord, error) {
	if err := s.CreateTable(ChecksSchema); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := s.db.Query(
		`SELECT input, valid, kind, digits, detail, checked_at
		FROM isbn_checks ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query checks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []CheckRecord
	for rows.Next() {
		var (
			rec       CheckRecord
			valid     int64
			checkedAt string
		)
		if err := rows.Scan(&rec.Input, &valid, &rec.Kind, &rec.Digits, &rec.Detail, &checkedAt); err != nil {
			return nil, fmt.Errorf("failed to scan check: %w", err)
		}
		rec.Valid = valid != 0
		if t, err := time.Parse(time.RFC3339, checkedAt); err == nil {
			rec.CheckedAt = t
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read checks: %w", err)
	}
	return out, nil
}
