package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// GAF reading errors
	GafOpenError
	GafScanError
	GafVersionError
	GafLineFatalError
	GafErrLogWriteError

	// Export errors
	ExportOpenError
	ExportWriteError
	ExportEncodeError
)
