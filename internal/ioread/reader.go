// Package ioread implements the streaming GAF reader. This is an impure
// I/O package: it opens the annotation file, drives the header/data
// state machine and hands each line to the pure parser in pkg/gaf.
package ioread

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnanno/pkg/config"
	"github.com/gnames/gnanno/pkg/gaf"
	"github.com/gnames/gnanno/pkg/gnanno"
	"github.com/gnames/gnfmt"
)

type reader struct {
	cfg *config.Config
}

// New creates a new Reader.
func New(cfg *config.Config) gnanno.Reader {
	return &reader{cfg: cfg}
}

// Read parses the whole file before returning; there is no streaming
// consumption by callers. The file handle is released on every path out
// of this method.
func (r *reader) Read(path string) (*gaf.Result, error) {
	start := time.Now()

	f, err := os.Open(path)
	if err != nil {
		return nil, OpenError(path, err)
	}
	defer f.Close()

	var src io.Reader = f
	var bar *pb.ProgressBar
	if r.cfg.Gaf.Progress {
		if info, err := f.Stat(); err == nil {
			bar = newProgressBar(info.Size(), "reading ")
			src = bar.NewProxyReader(f)
			defer bar.Finish()
		}
	}

	res, err := r.scan(src, path)
	if err != nil {
		return nil, err
	}

	slog.Info("GAF file read",
		"path", path,
		"version", res.Header.Version(),
		"annotations", len(res.Records),
		"ignored", len(res.Ignored),
		"duration", gnfmt.TimeString(time.Since(start).Seconds()),
	)
	if r.cfg.Gaf.Progress {
		gn.Info("Read <em>%s</em> annotations in %s",
			humanize.Comma(int64(len(res.Records))),
			gnfmt.TimeString(time.Since(start).Seconds()),
		)
	}

	return res, nil
}

// scan runs the single-pass state machine: header mode until the first
// non-comment line, then data mode with the version-specific schema
// fixed for the rest of the file.
func (r *reader) scan(src io.Reader, path string) (*gaf.Result, error) {
	res := &gaf.Result{Header: &gaf.Header{}}

	sc := bufio.NewScanner(src)
	// Annotation lines with many subfields can exceed the default token
	// size.
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var lnum int
	var line string
	for sc.Scan() {
		lnum++
		line = sc.Text()

		if res.Schema == nil {
			if gaf.IsHeaderLine(line) {
				res.Header.Observe(line)
				continue
			}
			// Header block is over; fix the schema for the rest of the
			// parse.
			if r.cfg.Gaf.HeaderOnly {
				return res, nil
			}
			schema, err := gaf.ForVersion(
				res.Header.Version(), r.cfg.Gaf.AllowMissingSymbol)
			if err != nil {
				return nil, VersionError(
					path, res.Header.Version(), lnum, line, err)
			}
			res.Schema = schema
			// The current line is the first data line; fall through.
		}

		rec, err := gaf.ParseLine(line, res.Schema)
		if err != nil {
			res.Ignored = append(res.Ignored, gaf.IgnoredLine{
				Num:    lnum,
				Text:   line,
				Reason: err.Error(),
			})
			continue
		}
		res.Records = append(res.Records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, ScanError(path, res.Schema, lnum, line, err)
	}

	return res, nil
}

// newProgressBar creates a byte-based progress bar with consistent
// settings.
func newProgressBar(total int64, prefix string) *pb.ProgressBar {
	bar := pb.Full.Start64(total)
	bar.Set("prefix", prefix)
	bar.Set(pb.Bytes, true)
	bar.Set(pb.CleanOnFinish, true)
	return bar
}
