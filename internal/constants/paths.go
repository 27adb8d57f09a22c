// Package constants contains file names and identifiers shared across configtool.
package constants

const (
	// AppName is the application name used for XDG directory paths.
	AppName = "configtool"

	// SettingsFilename is the settings file read and written in the settings folder.
	SettingsFilename = "configtool.ini"

	// DefaultSettingsFilename is the read-only fallback consulted when SettingsFilename is missing.
	DefaultSettingsFilename = "configtool.default.ini"

	// SettingsSection is the INI section holding all configtool keys.
	SettingsSection = "configtool"

	// LogFilename is the default log file name for configtool.
	LogFilename = "configtool.log"

	// HistoryFilename is the SQLite database recording saved changes.
	HistoryFilename = "history.db"

	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "CONFIGTOOL"
)
