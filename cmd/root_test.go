package cmd

import (
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/isbncheck/cmd/check"
	"github.com/lepinkainen/isbncheck/cmd/history"
	"github.com/lepinkainen/isbncheck/internal/config"
	checkerrors "github.com/lepinkainen/isbncheck/internal/errors"
	"github.com/lepinkainen/isbncheck/internal/testutil"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetCmdState(t *testing.T) *testutil.TestEnv {
	t.Helper()

	env := testutil.NewTestEnv(t)
	testutil.SetTestConfig(t, env)
	return env
}

func parseCLI(t *testing.T, args ...string) (*CLI, *kong.Context) {
	t.Helper()

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("isbncheck"),
		kong.Description("Validate ISBN-10 and ISBN-13 identifiers."),
		kong.Exit(func(code int) {
			t.Fatalf("unexpected Kong exit %d", code)
		}),
	)
	require.NoError(t, err)

	ctx, err := parser.Parse(args)
	require.NoError(t, err)
	return cli, ctx
}

func stubRunners(t *testing.T) (*check.Params, *history.Params) {
	t.Helper()

	origCheck, origInteractive, origHistory := runCheck, runInteractive, runHistory
	t.Cleanup(func() {
		runCheck, runInteractive, runHistory = origCheck, origInteractive, origHistory
	})

	var checkParams check.Params
	var historyParams history.Params
	runCheck = func(p check.Params) error {
		checkParams = p
		return nil
	}
	runInteractive = func(p check.Params) error {
		checkParams = p
		return nil
	}
	runHistory = func(p history.Params) error {
		historyParams = p
		return nil
	}
	return &checkParams, &historyParams
}

func TestCheckIsDefaultCommand(t *testing.T) {
	resetCmdState(t)
	checkParams, _ := stubRunners(t)

	cli, ctx := parseCLI(t, "99921-58-10-7", "978-0-306-40615-7")
	updateGlobalConfig(cli)
	require.NoError(t, ctx.Run())

	assert.Equal(t, []string{"99921-58-10-7", "978-0-306-40615-7"}, checkParams.Inputs)
	assert.Equal(t, "text", checkParams.Format)
	assert.False(t, checkParams.Strict)
	assert.False(t, checkParams.Record)
}

func TestCheckCommandFlags(t *testing.T) {
	env := resetCmdState(t)
	checkParams, _ := stubRunners(t)

	cli, ctx := parseCLI(t,
		"--record", "--history-db", env.Path("custom.db"), "--overwrite",
		"check", "--format", "json", "--strict", "-o", "out.json", "12345")
	updateGlobalConfig(cli)
	require.NoError(t, ctx.Run())

	assert.Equal(t, []string{"12345"}, checkParams.Inputs)
	assert.Equal(t, "json", checkParams.Format)
	assert.True(t, checkParams.Strict)
	assert.True(t, checkParams.Record)
	assert.True(t, checkParams.Overwrite)
	assert.Equal(t, "out.json", checkParams.OutputFile)
	assert.Equal(t, env.Path("custom.db"), config.HistoryDBFile)
}

func TestCheckWithoutArguments(t *testing.T) {
	resetCmdState(t)
	checkParams, _ := stubRunners(t)

	cli, ctx := parseCLI(t)
	updateGlobalConfig(cli)
	require.NoError(t, ctx.Run())
	assert.Empty(t, checkParams.Inputs)
}

func TestConfigFormatUsedWhenFlagMissing(t *testing.T) {
	resetCmdState(t)
	checkParams, historyParams := stubRunners(t)
	config.OutputFormat = "yaml"
	config.Strict = true

	cli, ctx := parseCLI(t, "check", "12345")
	updateGlobalConfig(cli)
	require.NoError(t, ctx.Run())
	assert.Equal(t, "yaml", checkParams.Format)
	assert.True(t, checkParams.Strict)

	cli, ctx = parseCLI(t, "history")
	updateGlobalConfig(cli)
	require.NoError(t, ctx.Run())
	assert.Equal(t, "yaml", historyParams.Format)
	assert.Equal(t, 20, historyParams.Limit)
}

func TestNoColorFlag(t *testing.T) {
	resetCmdState(t)
	checkParams, _ := stubRunners(t)
	config.Color = true

	cli, ctx := parseCLI(t, "--no-color", "interactive")
	updateGlobalConfig(cli)
	require.NoError(t, ctx.Run())
	assert.False(t, checkParams.Color)
}

func TestHistoryCommandParsing(t *testing.T) {
	resetCmdState(t)
	_, historyParams := stubRunners(t)

	cli, ctx := parseCLI(t, "history", "-n", "5", "-F", "json")
	updateGlobalConfig(cli)
	require.NoError(t, ctx.Run())
	assert.Equal(t, 5, historyParams.Limit)
	assert.Equal(t, "json", historyParams.Format)
}

func TestHistoryRejectsNegativeLimit(t *testing.T) {
	resetCmdState(t)
	stubRunners(t)

	cli, ctx := parseCLI(t, "history", "--limit=-1")
	updateGlobalConfig(cli)
	assert.Error(t, ctx.Run())
}

func TestInitConfigReadsFile(t *testing.T) {
	env := resetCmdState(t)
	env.WriteFileString("config.yaml", "output:\n  format: json\nhistory:\n  enabled: true\n")
	env.Chdir("")

	require.NoError(t, initConfig())
	assert.Equal(t, "json", config.OutputFormat)
	assert.True(t, config.RecordHistory)
}

func TestInitConfigMissingFile(t *testing.T) {
	env := resetCmdState(t)
	env.Chdir("")
	t.Setenv("HOME", env.RootDir())

	require.NoError(t, initConfig())
	assert.Equal(t, "text", config.OutputFormat)
	assert.Equal(t, "local", viper.GetString("history.mode"))
}

func TestInitConfigBrokenFile(t *testing.T) {
	env := resetCmdState(t)
	env.WriteFileString("config.yaml", "output: [unterminated\n")
	env.Chdir("")

	assert.Error(t, initConfig())
}

func TestExitCode(t *testing.T) {
	initLogging(slog.LevelError)
	t.Cleanup(func() { initLogging(slog.LevelInfo) })

	assert.Equal(t, exitInvalid, exitCode(checkerrors.NewInvalidInputError(1, 2)))
	assert.Equal(t, 1, exitCode(errors.New("disk full")))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}

func TestExecuteEndToEnd(t *testing.T) {
	env := resetCmdState(t)
	env.Chdir("")
	t.Setenv("HOME", env.RootDir())

	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"isbncheck", "--no-color", "--record", "978-0-306-40615-7", "12345"}

	Execute()

	assert.True(t, env.FileExists("isbncheck.db"))
}
