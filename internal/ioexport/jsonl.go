package ioexport

import (
	"bufio"
	"context"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnanno/pkg/config"
	"github.com/gnames/gnanno/pkg/gaf"
	"github.com/gnames/gnanno/pkg/gnanno"
	"github.com/gnames/gnfmt"
)

type jsonlExporter struct {
	cfg *config.Config
}

// NewJSONL creates an Exporter that writes one JSON document per
// annotation to cfg.Export.Output.
func NewJSONL(cfg *config.Config) gnanno.Exporter {
	return &jsonlExporter{cfg: cfg}
}

func (e *jsonlExporter) Export(ctx context.Context, res *gaf.Result) error {
	out := e.cfg.Export.Output

	f, err := os.Create(out)
	if err != nil {
		return OpenError(out, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	enc := gnfmt.GNjson{}

	for _, rec := range res.Records {
		if err = ctx.Err(); err != nil {
			return WriteError(out, err)
		}
		bs, err := enc.Encode(newRow(rec))
		if err != nil {
			return EncodeError(out, err)
		}
		if _, err = w.Write(append(bs, '\n')); err != nil {
			return WriteError(out, err)
		}
	}
	if err = w.Flush(); err != nil {
		return WriteError(out, err)
	}

	slog.Info("Exported annotations to JSON Lines",
		"path", out,
		"annotations", len(res.Records),
	)
	gn.Message("<em>Exported %s annotations to %s</em>",
		humanize.Comma(int64(len(res.Records))), out)

	return nil
}
