package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/zapponejosh/lunar-calendar-api/internal/calendar"
)

// MaterializeResult reports what a Materialize call stored.
type MaterializeResult struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Written   int    `json:"written"`
	Skipped   int    `json:"skipped"`
}

// Materialize converts every Gregorian date of the years [fromYear, toYear]
// and stores the result in one transaction. The range is clamped to the
// convertible span. Existing rows are replaced unless keepExisting is set,
// in which case they are counted as skipped.
func (db *DB) Materialize(ctx context.Context, conv *calendar.Converter, fromYear, toYear int, keepExisting bool) (*MaterializeResult, error) {
	if fromYear > toYear {
		return nil, fmt.Errorf("%w: from year %d is after to year %d", calendar.ErrInvalidArgument, fromYear, toYear)
	}
	if fromYear > calendar.MaxYear || toYear < calendar.MinYear {
		return nil, fmt.Errorf("%w: years %d-%d, expected [%d-%d]",
			calendar.ErrOutOfRange, fromYear, toYear, calendar.MinYear, calendar.MaxYear)
	}

	start := time.Date(max(fromYear, calendar.MinYear), time.January, 1, 0, 0, 0, 0, time.UTC)
	if first := time.Date(calendar.MinYear, time.January, 31, 0, 0, 0, 0, time.UTC); start.Before(first) {
		start = first
	}
	end := time.Date(min(toYear, calendar.MaxYear), time.December, 31, 0, 0, 0, 0, time.UTC)

	result := &MaterializeResult{
		StartDate: calendar.FormatDate(start),
		EndDate:   calendar.FormatDate(end),
	}

	err := db.WithTx(ctx, func(tx *Tx) error {
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			if err := ctx.Err(); err != nil {
				return err
			}

			c, err := conv.SolarToLunar(d.Year(), int(d.Month()), d.Day())
			if err != nil {
				return fmt.Errorf("convert %s: %w", calendar.FormatDate(d), err)
			}
			day := AlmanacDayFromConversion(c)

			if keepExisting {
				err = tx.InsertDay(ctx, &day)
				if IsDuplicate(err) {
					result.Skipped++
					continue
				}
			} else {
				err = tx.UpsertDay(ctx, &day)
			}
			if err != nil {
				return err
			}
			result.Written++

			if d.Month() == time.December && d.Day() == 31 {
				db.logger.Debug("materialized year", slog.Int("year", d.Year()))
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("materialize %s..%s: %w", result.StartDate, result.EndDate, err)
	}

	db.logger.Info("almanac materialized",
		slog.String("start", result.StartDate),
		slog.String("end", result.EndDate),
		slog.Int("written", result.Written),
		slog.Int("skipped", result.Skipped),
	)
	return result, nil
}
