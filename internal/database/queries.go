package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// =============================================================================
// Helper Functions
// =============================================================================

// parseTimestamp parses a timestamp from SQLite TEXT format.
// Tries multiple formats and returns nil if parsing fails.
func parseTimestamp(ns sql.NullString) *time.Time {
	if !ns.Valid || ns.String == "" {
		return nil
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02T15:04:05.999999"} {
		if t, err := time.Parse(layout, ns.String); err == nil {
			return &t
		}
	}
	return nil
}

// execer is satisfied by both *DB and *Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const almanacColumns = `
	solar_date, s_year, s_month, s_day,
	lunar_year, lunar_month, lunar_day, is_leap,
	weekday, gz_year, gz_month, gz_day, animal,
	month_cn, day_cn, term, updated_at`

func scanAlmanacDay(row scanner) (*AlmanacDay, error) {
	var day AlmanacDay
	var term, updatedAt sql.NullString

	err := row.Scan(
		&day.SolarDate, &day.SYear, &day.SMonth, &day.SDay,
		&day.LunarYear, &day.LunarMonth, &day.LunarDay, &day.IsLeap,
		&day.Weekday, &day.GzYear, &day.GzMonth, &day.GzDay, &day.Animal,
		&day.MonthCn, &day.DayCn, &term, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if term.Valid {
		day.Term = &term.String
	}
	if t := parseTimestamp(updatedAt); t != nil {
		day.UpdatedAt = *t
	}
	return &day, nil
}

func (db *DB) queryAlmanacDays(ctx context.Context, query string, args ...any) ([]AlmanacDay, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	days := []AlmanacDay{}
	for rows.Next() {
		day, err := scanAlmanacDay(rows)
		if err != nil {
			return nil, fmt.Errorf("scan almanac row: %w", err)
		}
		days = append(days, *day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate almanac rows: %w", err)
	}
	return days, nil
}

// =============================================================================
// Writes
// =============================================================================

const upsertAlmanacDaySQL = `
	INSERT INTO almanac_days (` + almanacColumns + `
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, datetime('now'))
	ON CONFLICT(solar_date) DO UPDATE SET
		s_year = excluded.s_year,
		s_month = excluded.s_month,
		s_day = excluded.s_day,
		lunar_year = excluded.lunar_year,
		lunar_month = excluded.lunar_month,
		lunar_day = excluded.lunar_day,
		is_leap = excluded.is_leap,
		weekday = excluded.weekday,
		gz_year = excluded.gz_year,
		gz_month = excluded.gz_month,
		gz_day = excluded.gz_day,
		animal = excluded.animal,
		month_cn = excluded.month_cn,
		day_cn = excluded.day_cn,
		term = excluded.term,
		updated_at = datetime('now')
`

const insertAlmanacDaySQL = `
	INSERT INTO almanac_days (` + almanacColumns + `
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, datetime('now'))
`

func almanacArgs(day *AlmanacDay) []any {
	return []any{
		day.SolarDate, day.SYear, day.SMonth, day.SDay,
		day.LunarYear, day.LunarMonth, day.LunarDay, day.IsLeap,
		day.Weekday, day.GzYear, day.GzMonth, day.GzDay, day.Animal,
		day.MonthCn, day.DayCn, day.Term,
	}
}

func upsertDay(ctx context.Context, ex execer, day *AlmanacDay) error {
	if _, err := ex.ExecContext(ctx, upsertAlmanacDaySQL, almanacArgs(day)...); err != nil {
		return fmt.Errorf("upsert almanac day %s: %w", day.SolarDate, err)
	}
	return nil
}

func insertDay(ctx context.Context, ex execer, day *AlmanacDay) error {
	if _, err := ex.ExecContext(ctx, insertAlmanacDaySQL, almanacArgs(day)...); err != nil {
		if IsDuplicate(err) {
			return fmt.Errorf("almanac day %s: %w", day.SolarDate, ErrDuplicate)
		}
		return fmt.Errorf("insert almanac day %s: %w", day.SolarDate, err)
	}
	return nil
}

// UpsertDay stores a day, replacing any existing row for the same date.
func (db *DB) UpsertDay(ctx context.Context, day *AlmanacDay) error {
	return upsertDay(ctx, db, day)
}

// UpsertDay stores a day within the transaction.
func (tx *Tx) UpsertDay(ctx context.Context, day *AlmanacDay) error {
	return upsertDay(ctx, tx, day)
}

// InsertDay stores a day that must not exist yet. Returns ErrDuplicate if
// the date is already stored.
func (db *DB) InsertDay(ctx context.Context, day *AlmanacDay) error {
	return insertDay(ctx, db, day)
}

// InsertDay stores a new day within the transaction.
func (tx *Tx) InsertDay(ctx context.Context, day *AlmanacDay) error {
	return insertDay(ctx, tx, day)
}

// DeleteRange removes the stored days between two YYYY-MM-DD dates,
// inclusive, and reports how many were removed.
func (db *DB) DeleteRange(ctx context.Context, startDate, endDate string) (int64, error) {
	result, err := db.ExecContext(ctx,
		`DELETE FROM almanac_days WHERE solar_date BETWEEN ? AND ?`,
		startDate, endDate,
	)
	if err != nil {
		return 0, fmt.Errorf("delete almanac range: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("check rows affected: %w", err)
	}
	return rows, nil
}

// =============================================================================
// Reads
// =============================================================================

// GetDay retrieves the stored row for a YYYY-MM-DD date.
// Returns ErrNotFound if the date has not been materialized.
func (db *DB) GetDay(ctx context.Context, date string) (*AlmanacDay, error) {
	query := `SELECT ` + almanacColumns + ` FROM almanac_days WHERE solar_date = ?`

	day, err := scanAlmanacDay(db.QueryRowContext(ctx, query, date))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query almanac day: %w", err)
	}
	return day, nil
}

// GetDaysByRange returns stored days between two dates, inclusive, in
// date order. Returns an empty slice when nothing is stored.
func (db *DB) GetDaysByRange(ctx context.Context, startDate, endDate string) ([]AlmanacDay, error) {
	query := `SELECT ` + almanacColumns + `
		FROM almanac_days
		WHERE solar_date BETWEEN ? AND ?
		ORDER BY solar_date`

	days, err := db.queryAlmanacDays(ctx, query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("query almanac range: %w", err)
	}
	return days, nil
}

// FindByLunarDate lists the Gregorian dates on which a lunar month-day
// falls for lunar years in r, in date order.
func (db *DB) FindByLunarDate(ctx context.Context, month, day int, leap bool, r YearRange) ([]AlmanacDay, error) {
	from, to := r.bounds()
	query := `SELECT ` + almanacColumns + `
		FROM almanac_days
		WHERE lunar_month = ? AND lunar_day = ? AND is_leap = ?
			AND lunar_year BETWEEN ? AND ?
		ORDER BY solar_date`

	days, err := db.queryAlmanacDays(ctx, query, month, day, leap, from, to)
	if err != nil {
		return nil, fmt.Errorf("query almanac by lunar date: %w", err)
	}
	return days, nil
}

// FindByTerm lists the days a solar term starts on for Gregorian years in r.
func (db *DB) FindByTerm(ctx context.Context, name string, r YearRange) ([]AlmanacDay, error) {
	from, to := r.bounds()
	query := `SELECT ` + almanacColumns + `
		FROM almanac_days
		WHERE term = ? AND s_year BETWEEN ? AND ?
		ORDER BY solar_date`

	days, err := db.queryAlmanacDays(ctx, query, name, from, to)
	if err != nil {
		return nil, fmt.Errorf("query almanac by term: %w", err)
	}
	return days, nil
}

// CountDays returns the number of stored days.
func (db *DB) CountDays(ctx context.Context) (int, error) {
	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM almanac_days`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count almanac days: %w", err)
	}
	return n, nil
}

// GetStats returns row count, date span and last write time of the store.
func (db *DB) GetStats(ctx context.Context) (*AlmanacStats, error) {
	query := `
		SELECT
			COUNT(*),
			COALESCE(MIN(solar_date), ''),
			COALESCE(MAX(solar_date), ''),
			MAX(updated_at)
		FROM almanac_days
	`

	var stats AlmanacStats
	var lastUpdated sql.NullString

	err := db.QueryRowContext(ctx, query).Scan(
		&stats.TotalDays,
		&stats.EarliestDate,
		&stats.LatestDate,
		&lastUpdated,
	)
	if err != nil {
		return nil, fmt.Errorf("query almanac stats: %w", err)
	}

	stats.LastUpdatedAt = parseTimestamp(lastUpdated)
	return &stats, nil
}
