package ioread

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnanno/pkg/errcode"
	"github.com/gnames/gnanno/pkg/gaf"
)

// OpenError creates an error for an annotation file that cannot be
// opened.
func OpenError(path string, err error) error {
	msg := `Cannot open annotation file <em>%s</em>

<em>Possible causes:</em>
  - File does not exist
  - Permission denied`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.GafOpenError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot open GAF file: %w", err),
	}
}

// VersionError creates a fatal error for a missing or unsupported
// gaf-version header. The read cannot continue because the column
// layout is unknown; the message carries the first data line for
// context.
func VersionError(
	path, version string,
	lnum int,
	line string,
	err error,
) error {
	msg := `Unsupported gaf-version <em>%q</em> in <em>%s</em>

Supported versions: 1.0, 2.0, 2.1

First data line %s[%d]:
%s`

	vars := []any{version, path, path, lnum, line}

	return &gn.Error{
		Code: errcode.GafVersionError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("%s[%d]: %w", path, lnum, err),
	}
}

// ScanError creates a fatal error for a failure of the underlying
// stream. The last line read is rendered field by field when the column
// layout is already known.
func ScanError(
	path string,
	s *gaf.Schema,
	lnum int,
	line string,
	err error,
) error {
	detail := ""
	if s != nil && line != "" {
		detail = gaf.LineDetail(s, line)
	}
	msg := `Reading <em>%s</em> failed at line %d

%s
%s`

	vars := []any{path, lnum, line, detail}

	return &gn.Error{
		Code: errcode.GafScanError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("%s[%d]: %w", path, lnum, err),
	}
}

// ErrLogWriteError creates an error for a failure to write the error
// log file.
func ErrLogWriteError(path string, err error) error {
	msg := `Cannot write GAF error log <em>%s</em>`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.GafErrLogWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot write error log: %w", err),
	}
}
