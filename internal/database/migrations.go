package database

// migrationsSQL contains all database migrations, applied in version order.
var migrationsSQL = map[int]string{
	1: migrationV1AlmanacDays,
}

// migrationV1AlmanacDays creates the materialized almanac: one row per
// Gregorian date with its lunar date and labels.
const migrationV1AlmanacDays = `
-- Migration 001: almanac days

CREATE TABLE IF NOT EXISTS almanac_days (
    -- Gregorian date, YYYY-MM-DD
    solar_date TEXT PRIMARY KEY,
    s_year INTEGER NOT NULL,
    s_month INTEGER NOT NULL CHECK (s_month BETWEEN 1 AND 12),
    s_day INTEGER NOT NULL CHECK (s_day BETWEEN 1 AND 31),

    lunar_year INTEGER NOT NULL,
    lunar_month INTEGER NOT NULL CHECK (lunar_month BETWEEN 1 AND 12),
    lunar_day INTEGER NOT NULL CHECK (lunar_day BETWEEN 1 AND 30),
    is_leap INTEGER NOT NULL DEFAULT 0 CHECK (is_leap IN (0, 1)),

    -- 1 = Monday ... 7 = Sunday
    weekday INTEGER NOT NULL CHECK (weekday BETWEEN 1 AND 7),

    gz_year TEXT NOT NULL,
    gz_month TEXT NOT NULL,
    gz_day TEXT NOT NULL,
    animal TEXT NOT NULL,
    month_cn TEXT NOT NULL,
    day_cn TEXT NOT NULL,

    -- Solar term starting on this day, if any
    term TEXT,

    updated_at TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_almanac_days_lunar
    ON almanac_days(lunar_month, lunar_day, is_leap);

CREATE INDEX IF NOT EXISTS idx_almanac_days_term
    ON almanac_days(term)
    WHERE term IS NOT NULL;

CREATE INDEX IF NOT EXISTS idx_almanac_days_s_year
    ON almanac_days(s_year);
`
