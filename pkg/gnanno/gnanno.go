// Package gnanno defines the interfaces implemented by the I/O layers
// of the GNanno tool.
package gnanno

import (
	"context"

	"github.com/gnames/gnanno/pkg/gaf"
)

// Reader parses one GO annotation file into memory in a single pass.
// A Reader owns no state between invocations; every Read starts fresh.
type Reader interface {
	// Read parses the file at path and returns the full Result: records,
	// header, schema and ignored lines. Malformed data lines land in the
	// ignored bucket and the read continues; an unreadable file or an
	// unsupported declared version aborts the read with a structured
	// error carrying the offending line's context.
	Read(path string) (*gaf.Result, error)

	// ReportProblems writes the error log for a result with ignored
	// lines or validation issues and prints the console summary. It
	// returns the log path. A result without problems writes nothing.
	ReportProblems(res *gaf.Result, path string) (string, error)
}

// Exporter writes a parsed annotation collection to another medium.
type Exporter interface {
	// Export writes all records of the result.
	Export(ctx context.Context, res *gaf.Result) error
}
