package ioexport

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnanno/pkg/errcode"
)

// OpenError creates an error for an export target that cannot be
// opened or created.
func OpenError(path string, err error) error {
	msg := `Cannot open export target <em>%s</em>`
	vars := []any{path}

	return &gn.Error{
		Code: errcode.ExportOpenError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot open export target: %w", err),
	}
}

// WriteError creates an error for a failed write to the export target.
func WriteError(path string, err error) error {
	msg := `Cannot write export data to <em>%s</em>`
	vars := []any{path}

	return &gn.Error{
		Code: errcode.ExportWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot write export data: %w", err),
	}
}

// EncodeError creates an error for a record that cannot be encoded.
func EncodeError(path string, err error) error {
	msg := `Cannot encode annotation for <em>%s</em>`
	vars := []any{path}

	return &gn.Error{
		Code: errcode.ExportEncodeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot encode annotation: %w", err),
	}
}
