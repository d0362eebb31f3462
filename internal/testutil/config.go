package testutil

import (
	"testing"

	"github.com/lepinkainen/isbncheck/internal/config"
	"github.com/spf13/viper"
)

// ConfigState holds the state of the config package variables.
type ConfigState struct {
	OutputFormat   string
	Color          bool
	Strict         bool
	OverwriteFiles bool
	RecordHistory  bool
	HistoryMode    string
	HistoryDBFile  string
	RemoteURL      string
	APIToken       string
	LogLevel       string
}

// SaveConfigState captures the current state of config package variables.
func SaveConfigState() ConfigState {
	return ConfigState{
		OutputFormat:   config.OutputFormat,
		Color:          config.Color,
		Strict:         config.Strict,
		OverwriteFiles: config.OverwriteFiles,
		RecordHistory:  config.RecordHistory,
		HistoryMode:    config.HistoryMode,
		HistoryDBFile:  config.HistoryDBFile,
		RemoteURL:      config.RemoteURL,
		APIToken:       config.APIToken,
		LogLevel:       config.LogLevel,
	}
}

// RestoreConfigState restores the config package variables to a saved state.
func RestoreConfigState(state ConfigState) {
	config.OutputFormat = state.OutputFormat
	config.Color = state.Color
	config.Strict = state.Strict
	config.OverwriteFiles = state.OverwriteFiles
	config.RecordHistory = state.RecordHistory
	config.HistoryMode = state.HistoryMode
	config.HistoryDBFile = state.HistoryDBFile
	config.RemoteURL = state.RemoteURL
	config.APIToken = state.APIToken
	config.LogLevel = state.LogLevel
}

// SetTestConfig resets viper, loads the default configuration with colour
// disabled and the history database placed inside env, and restores
// everything when the test completes.
func SetTestConfig(t *testing.T, env *TestEnv) {
	t.Helper()

	state := SaveConfigState()
	viper.Reset()

	config.InitConfig()
	config.Color = false
	config.HistoryDBFile = env.Path("history.db")

	t.Cleanup(func() {
		RestoreConfigState(state)
		viper.Reset()
	})
}
