// Command almanac precomputes Gregorian to lunar conversions into the SQLite
// almanac store.
//
// Usage:
//
//	go run ./cmd/almanac -db data/almanac.db -from 2020 -to 2030
//
// This tool:
// 1. Creates/opens the SQLite database
// 2. Runs migrations to ensure schema is current
// 3. Converts every day of the requested years in a single transaction
// 4. Prints the resulting store statistics
//
// Rows are replaced on each run. Pass -keep to leave existing rows untouched.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zapponejosh/lunar-calendar-api/internal/calendar"
	"github.com/zapponejosh/lunar-calendar-api/internal/database"
)

type options struct {
	dbPath   string
	fromYear int
	toYear   int
	keep     bool
}

func main() {
	var opts options
	flag.StringVar(&opts.dbPath, "db", "data/almanac.db", "Path to SQLite database")
	flag.IntVar(&opts.fromYear, "from", calendar.MinYear, "First Gregorian year to materialize")
	flag.IntVar(&opts.toYear, "to", calendar.MaxYear, "Last Gregorian year to materialize")
	flag.BoolVar(&opts.keep, "keep", false, "Keep rows that already exist")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, opts, logger, os.Stdout); err != nil {
		logger.Error("materialize failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("materialize complete")
}

func run(ctx context.Context, opts options, logger *slog.Logger, out io.Writer) error {
	startTime := time.Now()

	// =========================================================================
	// Step 1: Open database and run migrations
	// =========================================================================
	logger.Info("opening database", slog.String("path", opts.dbPath))

	db, err := database.Open(database.DefaultConfig(opts.dbPath), logger)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	migrated, err := db.Migrate(ctx)
	if err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("migrations complete", slog.Int("applied", migrated))

	// =========================================================================
	// Step 2: Convert and store
	// =========================================================================
	logger.Info("starting materialize",
		slog.Int("from", opts.fromYear),
		slog.Int("to", opts.toYear),
		slog.Bool("keep", opts.keep),
	)

	conv := calendar.NewConverter(calendar.WithLocation(time.UTC))
	result, err := db.Materialize(ctx, conv, opts.fromYear, opts.toYear, opts.keep)
	if err != nil {
		return fmt.Errorf("materialize: %w", err)
	}

	// =========================================================================
	// Step 3: Verify
	// =========================================================================
	stats, err := db.GetStats(ctx)
	if err != nil {
		return fmt.Errorf("get stats: %w", err)
	}

	elapsed := time.Since(startTime)

	logger.Info("store verified",
		slog.Int("total_days", stats.TotalDays),
		slog.String("earliest", stats.EarliestDate),
		slog.String("latest", stats.LatestDate),
		slog.Duration("elapsed", elapsed),
	)

	printSummary(out, result, stats, elapsed)
	return nil
}

func printSummary(w io.Writer, result *database.MaterializeResult, stats *database.AlmanacStats, elapsed time.Duration) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== Almanac Summary ===")
	fmt.Fprintf(w, "Range:               %s .. %s\n", result.StartDate, result.EndDate)
	fmt.Fprintf(w, "Days written:        %d\n", result.Written)
	fmt.Fprintf(w, "Days skipped:        %d\n", result.Skipped)
	fmt.Fprintf(w, "Days in store:       %d\n", stats.TotalDays)
	fmt.Fprintf(w, "Store span:          %s .. %s\n", stats.EarliestDate, stats.LatestDate)
	fmt.Fprintf(w, "Time elapsed:        %v\n", elapsed.Round(time.Millisecond))
}
