package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptGafAllowMissingSymbol sets whether records may omit the DB_Symbol
// column without being flagged.
func OptGafAllowMissingSymbol(b bool) Option {
	return func(c *Config) {
		c.Gaf.AllowMissingSymbol = b
	}
}

// OptGafHeaderOnly stops reading after the header block.
// Runtime-only field - not in ToOptions().
func OptGafHeaderOnly(b bool) Option {
	return func(c *Config) {
		c.Gaf.HeaderOnly = b
	}
}

// OptGafErrLog sets the target path for the error log.
// Runtime-only field - not in ToOptions().
func OptGafErrLog(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Error Log Path", s) {
			c.Gaf.ErrLog = s
		}
	}
}

// OptGafProgress enables the progress bar while reading.
func OptGafProgress(b bool) Option {
	return func(c *Config) {
		c.Gaf.Progress = b
	}
}

// OptExportFormat sets the export encoding.
// Valid values: "sqlite", "jsonl".
func OptExportFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Export.Format", s) {
			c.Export.Format = s
		}
	}
}

// OptExportBatchSize sets the number of records per insert transaction
// for the SQLite export.
func OptExportBatchSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Export Batch Size", i) {
			c.Export.BatchSize = i
		}
	}
}

// OptExportOutput sets the destination file of the export command.
// Runtime-only field - not in ToOptions().
func OptExportOutput(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Export Output", s) {
			c.Export.Output = s
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptHomeDir sets the home directory for config, cache, and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
