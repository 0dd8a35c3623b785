// Package config provides configuration management for GNanno.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation functions may write user-facing warnings via
// gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml >
// defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Gaf: allow_missing_symbol, progress
//   - Export: format, batch_size
//   - Log: level, format, destination
//
// Runtime-only fields (CLI flags only):
//   - Gaf.HeaderOnly, Gaf.ErrLog, Export.Output (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use GNANNO_ prefix with underscores for nesting:
//
//	GNANNO_GAF_ALLOW_MISSING_SYMBOL=true
//	GNANNO_EXPORT_BATCH_SIZE=10000
//	GNANNO_LOG_LEVEL=info
package config

// Config represents the complete GNanno configuration.
type Config struct {
	// Gaf contains settings for reading annotation files.
	Gaf GafConfig `mapstructure:"gaf" yaml:"gaf"`

	// Export contains settings specific to the export command.
	Export ExportConfig `mapstructure:"export" yaml:"export"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string `mapstructure:"-" yaml:"-"`
}

// GafConfig contains settings for the GAF reader.
type GafConfig struct {
	// AllowMissingSymbol drops DB_Symbol from the required-presence set.
	// Some annotation providers leave the symbol column empty.
	AllowMissingSymbol bool `mapstructure:"allow_missing_symbol" yaml:"allow_missing_symbol"`

	// HeaderOnly stops the read after the header block, before any data
	// line is parsed.
	HeaderOnly bool `mapstructure:"-" yaml:"-"`

	// ErrLog is the target path for the error log written when a read
	// produces ignored lines or illegal records. Empty means a ".log"
	// file next to the input.
	ErrLog string `mapstructure:"-" yaml:"-"`

	// Progress enables a progress bar while reading large files.
	Progress bool `mapstructure:"progress" yaml:"progress"`
}

// ExportConfig contains settings specific to the export command.
type ExportConfig struct {
	// Format selects the export encoding: "sqlite" or "jsonl".
	Format string `mapstructure:"format" yaml:"format"`

	// BatchSize defines the number of records per insert transaction for
	// the SQLite export. Larger batches are faster but use more memory.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`

	// Output is the destination file. Runtime-only, set per command.
	Output string `mapstructure:"-" yaml:"-"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Gaf: GafConfig{
			AllowMissingSymbol: false,
			Progress:           false,
		},
		Export: ExportConfig{
			Format:    "sqlite",
			BatchSize: 10_000,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
	}

	return res
}
