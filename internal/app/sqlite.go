package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// holiday_day mirrors the CSV row for row, duplicates included
const holidaySchema = `
CREATE TABLE IF NOT EXISTS holiday_day (
	holiday_date TEXT NOT NULL,
	holiday_name TEXT NOT NULL,
	holiday_period TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS holiday_day_date ON holiday_day (holiday_date);`

// SQLiteStore keeps holiday rows in a SQLite table
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at path and ensures the schema exists
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	store := NewSQLiteStore(db)
	if err := store.InitSchema(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// NewSQLiteStore wraps an open database
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Close closes the underlying database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// InitSchema creates the holiday_day table
func (s *SQLiteStore) InitSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, holidaySchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// ReplaceAll swaps the table contents for rows in a single transaction
// and returns the number of rows stored.
func (s *SQLiteStore) ReplaceAll(ctx context.Context, rows []Row) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM holiday_day"); err != nil {
		return 0, fmt.Errorf("failed to clear holidays: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO holiday_day (holiday_date, holiday_name, holiday_period) VALUES (?, ?, ?)")
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	var stored int64
	for _, row := range rows {
		res, err := stmt.ExecContext(ctx, row.Date.Format(OutputDateLayout), row.Name, string(row.Period))
		if err != nil {
			return 0, fmt.Errorf("failed to insert %s %q: %w", row.Date.Format(OutputDateLayout), row.Name, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, err
		}
		stored += n
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return int(stored), nil
}

// List returns every row in output order
func (s *SQLiteStore) List(ctx context.Context) ([]Row, error) {
	return s.query(ctx,
		"SELECT holiday_date, holiday_name, holiday_period FROM holiday_day ORDER BY holiday_date, holiday_name, holiday_period, rowid")
}

// ListByDate returns the rows for a single day
func (s *SQLiteStore) ListByDate(ctx context.Context, date time.Time) ([]Row, error) {
	return s.query(ctx,
		"SELECT holiday_date, holiday_name, holiday_period FROM holiday_day WHERE holiday_date = ? ORDER BY holiday_name, holiday_period, rowid",
		date.Format(OutputDateLayout))
}

func (s *SQLiteStore) query(ctx context.Context, query string, args ...any) ([]Row, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []Row
	for rows.Next() {
		var row Row
		var dateStr, period string
		if err := rows.Scan(&dateStr, &row.Name, &period); err != nil {
			return nil, err
		}
		row.Date, err = time.Parse(OutputDateLayout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("bad date %q in database: %w", dateStr, err)
		}
		row.Period = Period(period)
		results = append(results, row)
	}
	return results, rows.Err()
}
