package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/humanlog"
	"github.com/lepinkainen/isbncheck/cmd/check"
	"github.com/lepinkainen/isbncheck/cmd/history"
	"github.com/lepinkainen/isbncheck/internal/config"
	checkerrors "github.com/lepinkainen/isbncheck/internal/errors"
	"github.com/spf13/viper"
)

var (
	runCheck       = check.RunCheck
	runInteractive = check.RunInteractive
	runHistory     = history.RunHistory
)

// exitInvalid is the exit status used in strict mode when any input is invalid.
const exitInvalid = 2

// CLI represents the complete command structure for the isbncheck application
type CLI struct {
	// Global flags
	NoColor   bool   `help:"Disable coloured output"`
	Record    bool   `help:"Record results in the check history"`
	HistoryDB string `help:"Path to the SQLite history database"`
	LogLevel  string `help:"Log level: debug, info, warn or error"`
	Overwrite bool   `help:"Overwrite an existing output file"`

	Check       CheckCmd       `cmd:"" default:"withargs" help:"Validate ISBN-10 and ISBN-13 identifiers"`
	Interactive InteractiveCmd `cmd:"" help:"Validate ISBNs interactively"`
	History     HistoryCmd     `cmd:"" help:"Show recently recorded checks"`
}

// CheckCmd validates the ISBNs given as arguments
type CheckCmd struct {
	ISBNs      []string `arg:"" optional:"" name:"isbn" help:"ISBN candidates to validate"`
	Format     string   `short:"F" help:"Output format: text, json or yaml"`
	Strict     bool     `help:"Exit with status 2 when any input is invalid"`
	OutputFile string   `short:"o" help:"Also write the results to this file"`
}

// InteractiveCmd runs the interactive validator
type InteractiveCmd struct{}

// HistoryCmd lists recorded checks
type HistoryCmd struct {
	Limit  int    `short:"n" help:"Number of checks to show (0 = all)" default:"20"`
	Format string `short:"F" help:"Output format: text, json or yaml"`
}

// Execute runs the Kong-based CLI
func Execute() {
	initLogging(slog.LevelInfo)

	if err := initConfig(); err != nil {
		slog.Error("Fatal error config file", "error", err)
		os.Exit(1)
	}

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("isbncheck"),
		kong.Description("Validate ISBN-10 and ISBN-13 identifiers."),
		kong.UsageOnError(),
	)

	updateGlobalConfig(&cli)
	initLogging(parseLevel(config.LogLevel))

	if err := ctx.Run(); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode logs err and maps it to a process exit status.
func exitCode(err error) int {
	if checkerrors.IsInvalidInputError(err) {
		slog.Warn("Invalid ISBNs found", "error", err)
		return exitInvalid
	}
	slog.Error("Command failed", "error", err)
	return 1
}

func initConfig() error {
	config.SetDefaults()
	config.BindEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/isbncheck")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
		slog.Debug("Config file not found, using defaults")
	}

	config.InitConfig()
	return nil
}

func updateGlobalConfig(cli *CLI) {
	// Flags only override config when given
	if cli.NoColor {
		config.Color = false
	}
	if cli.Record {
		config.RecordHistory = true
	}
	if cli.HistoryDB != "" {
		config.HistoryDBFile = cli.HistoryDB
	}
	if cli.LogLevel != "" {
		config.LogLevel = cli.LogLevel
	}
	if cli.Overwrite {
		config.SetOverwriteFiles(true)
	}
}

// Run methods for each command

func (c *CheckCmd) Run() error {
	format := c.Format
	if format == "" {
		format = config.OutputFormat
	}

	return runCheck(check.Params{
		Inputs:     c.ISBNs,
		Format:     format,
		Color:      config.Color,
		Strict:     c.Strict || config.Strict,
		OutputFile: c.OutputFile,
		Overwrite:  config.OverwriteFiles,
		Record:     config.RecordHistory,
	})
}

func (i *InteractiveCmd) Run() error {
	return runInteractive(check.Params{
		Color:  config.Color,
		Record: config.RecordHistory,
	})
}

func (h *HistoryCmd) Run() error {
	format := h.Format
	if format == "" {
		format = config.OutputFormat
	}
	if h.Limit < 0 {
		return fmt.Errorf("limit must not be negative: %d", h.Limit)
	}

	return runHistory(history.Params{
		Limit:  h.Limit,
		Format: format,
		Color:  config.Color,
	})
}

func parseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func initLogging(level slog.Level) {
	// Results go to stdout, logs to stderr
	handler := humanlog.NewHandler(os.Stderr, &humanlog.Options{
		Level: level,
	})

	slog.SetDefault(slog.New(handler))
}
