// Package history implements the history command.
package history

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lepinkainen/isbncheck/internal/config"
	"github.com/lepinkainen/isbncheck/internal/datastore"
	"github.com/lepinkainen/isbncheck/internal/report"
)

var stdout io.Writer = os.Stdout

// Params holds the options for listing history.
type Params struct {
	Limit  int
	Format string
	Color  bool
}

// RunHistory prints the most recent recorded checks, newest first.
// Only the local SQLite store can be read back.
func RunHistory(p Params) error {
	format, err := report.ParseFormat(p.Format)
	if err != nil {
		return err
	}

	if config.HistoryMode == "remote" {
		return fmt.Errorf("history can only be listed in local mode (history.mode is %q)", config.HistoryMode)
	}

	store := datastore.NewSQLiteStore(config.HistoryDBFile)
	if err := store.Connect(); err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	records, err := store.RecentChecks(p.Limit)
	if err != nil {
		return err
	}

	if format != report.FormatText {
		if records == nil {
			records = []datastore.CheckRecord{}
		}
		return report.Encode(stdout, format, records)
	}

	for _, rec := range records {
		line := report.StyledLine(rec.Result, p.Color)
		if _, err := fmt.Fprintf(stdout, "%s  %s\n", rec.CheckedAt.Format(time.RFC3339), line); err != nil {
			return fmt.Errorf("failed to write history: %w", err)
		}
	}
	return nil
}
