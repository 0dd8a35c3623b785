package ioexport_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gnames/gnanno/internal/ioexport"
	"github.com/gnames/gnanno/internal/ioread"
	"github.com/gnames/gnanno/pkg/config"
	"github.com/gnames/gnanno/pkg/gaf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func readFixture(t *testing.T, cfg *config.Config) *gaf.Result {
	t.Helper()
	rd := ioread.New(cfg)
	res, err := rd.Read(filepath.Join("testdata", "ok.gaf"))
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	return res
}

func TestExportSqlite(t *testing.T) {
	out := filepath.Join(t.TempDir(), "anno.sqlite")
	cfg := config.New()
	cfg.Update([]config.Option{config.OptExportOutput(out)})

	res := readFixture(t, cfg)
	exp := ioexport.NewSqlite(cfg)
	require.NoError(t, exp.Export(context.Background(), res))

	db, err := sql.Open("sqlite", out)
	require.NoError(t, err)
	defer db.Close()

	var count int
	err = db.QueryRow("SELECT count(*) FROM annotations").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	var id, goID, namespace, taxa string
	err = db.QueryRow(
		"SELECT id, go_id, namespace, taxa FROM annotations").
		Scan(&id, &goID, &namespace, &taxa)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, "GO:0003993", goID)
	assert.Equal(t, "MF", namespace)
	assert.Equal(t, "9606", taxa)
}

func TestExportSqliteDeterministicID(t *testing.T) {
	dir := t.TempDir()
	ids := make([]string, 2)
	for i := range ids {
		out := filepath.Join(dir, fmt.Sprintf("anno%d.sqlite", i))
		cfg := config.New()
		cfg.Update([]config.Option{config.OptExportOutput(out)})

		res := readFixture(t, cfg)
		exp := ioexport.NewSqlite(cfg)
		require.NoError(t, exp.Export(context.Background(), res))

		db, err := sql.Open("sqlite", out)
		require.NoError(t, err)
		err = db.QueryRow("SELECT id FROM annotations").Scan(&ids[i])
		require.NoError(t, err)
		db.Close()
	}
	// Re-exports of the same annotation produce the same UUID.
	assert.Equal(t, ids[0], ids[1])
}

func TestExportJSONL(t *testing.T) {
	out := filepath.Join(t.TempDir(), "anno.jsonl")
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptExportFormat("jsonl"),
		config.OptExportOutput(out),
	})

	res := readFixture(t, cfg)
	exp := ioexport.NewJSONL(cfg)
	require.NoError(t, exp.Export(context.Background(), res))

	bs, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(bs), "\n"), "\n")
	require.Len(t, lines, 1)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &doc))
	assert.Equal(t, "GO:0003993", doc["goId"])
	assert.Equal(t, "MF", doc["namespace"])
	assert.Equal(t, "2009-01-18", doc["date"])
	assert.NotEmpty(t, doc["id"])
}
