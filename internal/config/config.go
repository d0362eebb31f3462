package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Global configuration variables
var (
	// OutputFormat is the result rendering format: text, json or yaml
	OutputFormat string
	// Color enables styled text output
	Color bool
	// Strict makes invalid inputs produce a non-zero exit code
	Strict bool
	// OverwriteFiles controls whether an existing --output-file is replaced
	OverwriteFiles bool
	// RecordHistory stores every check result in the history store
	RecordHistory bool
	// HistoryMode is "local" (SQLite file) or "remote" (Datasette)
	HistoryMode string
	// HistoryDBFile is the SQLite database used in local mode
	HistoryDBFile string
	// RemoteURL is the Datasette base URL used in remote mode
	RemoteURL string
	// APIToken authenticates against the remote Datasette instance
	APIToken string
	// LogLevel is one of debug, info, warn or error
	LogLevel string
)

// SetDefaults registers default values with viper.
func SetDefaults() {
	viper.SetDefault("output.format", "text")
	viper.SetDefault("output.color", true)
	viper.SetDefault("output.overwrite", false)
	viper.SetDefault("strict", false)

	viper.SetDefault("history.enabled", false)
	viper.SetDefault("history.mode", "local")
	viper.SetDefault("history.dbfile", "./isbncheck.db")
	viper.SetDefault("history.remote_url", "")
	viper.SetDefault("history.api_token", "")

	viper.SetDefault("log.level", "info")
}

// BindEnv enables ISBNCHECK_ prefixed environment variables,
// e.g. ISBNCHECK_OUTPUT_FORMAT=json.
func BindEnv() {
	viper.SetEnvPrefix("isbncheck")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// InitConfig initializes the global configuration
func InitConfig() {
	SetDefaults()

	OutputFormat = viper.GetString("output.format")
	Color = viper.GetBool("output.color")
	OverwriteFiles = viper.GetBool("output.overwrite")
	Strict = viper.GetBool("strict")

	RecordHistory = viper.GetBool("history.enabled")
	HistoryMode = viper.GetString("history.mode")
	HistoryDBFile = viper.GetString("history.dbfile")
	RemoteURL = viper.GetString("history.remote_url")
	APIToken = viper.GetString("history.api_token")

	LogLevel = viper.GetString("log.level")
}

// SetOverwriteFiles sets the OverwriteFiles flag
func SetOverwriteFiles(overwrite bool) {
	OverwriteFiles = overwrite
}
