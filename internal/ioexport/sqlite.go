package ioexport

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnanno/pkg/config"
	"github.com/gnames/gnanno/pkg/gaf"
	"github.com/gnames/gnanno/pkg/gnanno"
	_ "modernc.org/sqlite" // pure Go SQLite driver
)

const annotationsDDL = `
CREATE TABLE IF NOT EXISTS annotations (
  id TEXT NOT NULL,
  db TEXT NOT NULL,
  db_id TEXT NOT NULL,
  db_symbol TEXT,
  qualifiers TEXT,
  go_id TEXT NOT NULL,
  db_references TEXT NOT NULL,
  evidence_code TEXT NOT NULL,
  with_from TEXT,
  namespace TEXT NOT NULL,
  db_name TEXT,
  db_synonyms TEXT,
  db_type TEXT NOT NULL,
  taxa TEXT NOT NULL,
  date TEXT NOT NULL,
  assigned_by TEXT NOT NULL,
  extensions TEXT,
  gene_product_form_id TEXT
);
CREATE INDEX IF NOT EXISTS idx_annotations_go_id ON annotations (go_id);
CREATE INDEX IF NOT EXISTS idx_annotations_db_id ON annotations (db_id);
`

const annotationsInsert = `
INSERT INTO annotations (
  id, db, db_id, db_symbol, qualifiers, go_id, db_references,
  evidence_code, with_from, namespace, db_name, db_synonyms, db_type,
  taxa, date, assigned_by, extensions, gene_product_form_id
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

type sqliteExporter struct {
	cfg *config.Config
}

// NewSqlite creates an Exporter that writes annotations into a SQLite
// database at cfg.Export.Output using batched insert transactions.
func NewSqlite(cfg *config.Config) gnanno.Exporter {
	return &sqliteExporter{cfg: cfg}
}

func (e *sqliteExporter) Export(ctx context.Context, res *gaf.Result) error {
	out := e.cfg.Export.Output

	db, err := sql.Open("sqlite", out)
	if err != nil {
		return OpenError(out, err)
	}
	defer db.Close()

	if _, err = db.ExecContext(ctx, annotationsDDL); err != nil {
		return WriteError(out, err)
	}

	bar := pb.Full.Start(len(res.Records))
	bar.Set("prefix", "exporting ")
	bar.Set(pb.CleanOnFinish, true)
	defer bar.Finish()

	batch := e.cfg.Export.BatchSize
	if batch <= 0 {
		batch = 10_000
	}

	for start := 0; start < len(res.Records); start += batch {
		end := min(start+batch, len(res.Records))
		if err = e.insertBatch(ctx, db, res.Records[start:end], bar); err != nil {
			return WriteError(out, err)
		}
	}

	slog.Info("Exported annotations to SQLite",
		"path", out,
		"annotations", len(res.Records),
	)
	gn.Message("<em>Exported %s annotations to %s</em>",
		humanize.Comma(int64(len(res.Records))), out)

	return nil
}

func (e *sqliteExporter) insertBatch(
	ctx context.Context,
	db *sql.DB,
	recs []*gaf.Record,
	bar *pb.ProgressBar,
) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, annotationsInsert)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, rec := range recs {
		r := newRow(rec)
		_, err = stmt.ExecContext(ctx,
			r.ID, r.DB, r.DBID, r.DBSymbol,
			strings.Join(r.Qualifiers, "|"),
			r.GOID,
			strings.Join(r.DBReferences, "|"),
			r.EvidenceCode,
			strings.Join(r.WithFrom, "|"),
			r.Namespace,
			strings.Join(r.DBName, "|"),
			strings.Join(r.DBSynonyms, "|"),
			r.DBType,
			taxaString(r.Taxa),
			r.Date, r.AssignedBy, r.Extensions, r.GeneProductFormID,
		)
		if err != nil {
			return err
		}
		bar.Increment()
	}

	return tx.Commit()
}
