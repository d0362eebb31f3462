// Package check implements the check and interactive commands.
package check

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lepinkainen/isbncheck/internal/config"
	"github.com/lepinkainen/isbncheck/internal/datastore"
	checkerrors "github.com/lepinkainen/isbncheck/internal/errors"
	"github.com/lepinkainen/isbncheck/internal/fileutil"
	"github.com/lepinkainen/isbncheck/internal/report"
	"github.com/lepinkainen/isbncheck/internal/tui"
)

var (
	stdout    io.Writer = os.Stdout
	now                 = time.Now
	runTUI              = tui.Run
	openStore           = datastore.OpenStore
)

// Params holds the options for a check run.
type Params struct {
	Inputs     []string
	Format     string
	Color      bool
	Strict     bool
	OutputFile string
	Overwrite  bool
	Record     bool
}

// RunCheck validates every input and prints one result per input.
// Invalid inputs are not an error unless Strict is set.
func RunCheck(p Params) error {
	format, err := report.ParseFormat(p.Format)
	if err != nil {
		return err
	}

	results := report.Evaluate(p.Inputs)

	if err := report.Write(stdout, results, report.Options{Format: format, Color: p.Color}); err != nil {
		return err
	}

	if p.OutputFile != "" {
		if err := writeOutputFile(p.OutputFile, results, format, p.Overwrite); err != nil {
			return err
		}
	}

	if p.Record {
		if err := recordResults(results); err != nil {
			return err
		}
	}

	counts := report.Summary(results)
	slog.Debug("Check finished", "valid", counts.Valid, "invalid", counts.Invalid)

	if p.Strict && counts.Invalid > 0 {
		return checkerrors.NewInvalidInputError(counts.Invalid, len(results))
	}
	return nil
}

// RunInteractive starts the interactive validator and records its results
// when history recording is enabled.
func RunInteractive(p Params) error {
	results, err := runTUI(p.Color)
	if err != nil {
		return fmt.Errorf("interactive session failed: %w", err)
	}

	counts := report.Summary(results)
	slog.Info("Interactive session finished", "valid", counts.Valid, "invalid", counts.Invalid)

	if p.Record {
		return recordResults(results)
	}
	return nil
}

func writeOutputFile(path string, results []report.Result, format report.Format, overwrite bool) error {
	var buf bytes.Buffer
	if err := report.Write(&buf, results, report.Options{Format: format}); err != nil {
		return err
	}

	written, err := fileutil.WriteFileWithOverwrite(path, buf.Bytes(), 0o644, overwrite)
	if err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if written {
		slog.Info("Wrote results", "filename", path, "count", len(results))
	}
	return nil
}

func recordResults(results []report.Result) error {
	if len(results) == 0 {
		return nil
	}

	store, err := openStore(config.HistoryMode, config.HistoryDBFile, config.RemoteURL, config.APIToken)
	if err != nil {
		slog.Error("Failed to open history store", "mode", config.HistoryMode, "error", err)
		return err
	}
	defer func() { _ = store.Close() }()

	if err := datastore.RecordChecks(store, results, now()); err != nil {
		slog.Error("Failed to record checks", "error", err)
		return err
	}
	slog.Info("Recorded checks", "count", len(results), "mode", config.HistoryMode)
	return nil
}
