package ioread

import (
	"os"
	"path/filepath"

	"github.com/gnames/gn"
	"github.com/gnames/gnanno/pkg/gaf"
)

// ReportProblems writes the error log for a result that has ignored
// lines or validation issues, and prints a console summary with the
// error counts and the log location. Results without problems write
// nothing and return an empty path.
func (r *reader) ReportProblems(
	res *gaf.Result,
	path string,
) (string, error) {
	if !res.HasProblems() {
		return "", nil
	}

	logPath := r.cfg.Gaf.ErrLog
	if logPath == "" {
		logPath = path + ".log"
	}

	f, err := os.Create(logPath)
	if err != nil {
		return "", ErrLogWriteError(logPath, err)
	}
	defer f.Close()

	err = gaf.WriteReport(
		f, filepath.Base(path),
		res.Schema, res.Records, res.Ignored, res.Issues(),
	)
	if err != nil {
		return "", ErrLogWriteError(logPath, err)
	}

	gn.Info("WROTE GAF ERROR LOG: <em>%s</em>", logPath)
	for _, line := range gaf.SummaryCounts(res.Ignored, res.Issues()) {
		gn.Message("%s", line)
	}

	return logPath, nil
}
