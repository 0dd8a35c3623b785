package ioread_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gnanno/internal/ioread"
	"github.com/gnames/gnanno/pkg/config"
	"github.com/gnames/gnanno/pkg/gaf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadOK(t *testing.T) {
	cfg := config.New()
	rd := ioread.New(cfg)

	res, err := rd.Read(filepath.Join("testdata", "ok.gaf"))
	require.NoError(t, err)

	require.Len(t, res.Records, 1)
	assert.Empty(t, res.Ignored)
	assert.Equal(t, "2.1", res.Header.Version())
	assert.Contains(t, res.Header.Text(), "gaf-version: 2.1")
	assert.Contains(t, res.Header.Text(), "Generated by the test suite")
	assert.Equal(t, 17, res.Schema.NumColumns)

	rec := res.Records[0]
	assert.Equal(t, "UniProtKB", rec.DB)
	assert.Equal(t, "P12345", rec.DBID)
	assert.Equal(t, gaf.NamespaceMF, rec.Namespace)
	assert.Equal(t, []int{9606}, rec.Taxa)

	assert.True(t, res.Validate())
	assert.False(t, res.HasProblems())
}

func TestReadShortLine(t *testing.T) {
	cfg := config.New()
	rd := ioread.New(cfg)

	// A 16-column line under a 2.1 header never becomes a record.
	res, err := rd.Read(filepath.Join("testdata", "short.gaf"))
	require.NoError(t, err)

	assert.Empty(t, res.Records)
	require.Len(t, res.Ignored, 1)
	assert.Equal(t, 2, res.Ignored[0].Num)
	assert.Contains(t, res.Ignored[0].Text, "UniProtKB")
	assert.Contains(t, res.Ignored[0].Reason, "16")
	assert.True(t, res.HasProblems())
}

func TestReadMixed(t *testing.T) {
	cfg := config.New()
	rd := ioread.New(cfg)

	res, err := rd.Read(filepath.Join("testdata", "mixed.gaf"))
	require.NoError(t, err)

	// Good line and empty-taxon line parse; the bad-aspect line is
	// ignored.
	require.Len(t, res.Records, 2)
	require.Len(t, res.Ignored, 1)
	assert.Equal(t, 3, res.Ignored[0].Num)

	// The empty-taxon record exists but fails validation.
	assert.False(t, res.Validate())
	is := res.Issues()
	assert.NotEmpty(t, is.ByCategory(gaf.CatBadTaxon))
}

func TestReadV1(t *testing.T) {
	cfg := config.New()
	rd := ioread.New(cfg)

	res, err := rd.Read(filepath.Join("testdata", "v1.gaf"))
	require.NoError(t, err)

	require.Len(t, res.Records, 1)
	assert.Equal(t, "1.0", res.Header.Version())
	assert.Equal(t, 15, res.Schema.NumColumns)
	assert.Equal(t, "SGD", res.Records[0].AssignedBy)
	assert.True(t, res.Validate())
}

func TestReadUnknownVersion(t *testing.T) {
	cfg := config.New()
	rd := ioread.New(cfg)

	_, err := rd.Read(filepath.Join("testdata", "badver.gaf"))
	assert.Error(t, err)
}

func TestReadMissingFile(t *testing.T) {
	cfg := config.New()
	rd := ioread.New(cfg)

	_, err := rd.Read(filepath.Join("testdata", "no-such-file.gaf"))
	assert.Error(t, err)
}

func TestReadHeaderOnly(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptGafHeaderOnly(true)})
	rd := ioread.New(cfg)

	res, err := rd.Read(filepath.Join("testdata", "ok.gaf"))
	require.NoError(t, err)

	assert.Empty(t, res.Records)
	assert.Nil(t, res.Schema)
	assert.Equal(t, "2.1", res.Header.Version())
}

func TestReadAllowMissingSymbol(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptGafAllowMissingSymbol(true)})
	rd := ioread.New(cfg)

	res, err := rd.Read(filepath.Join("testdata", "ok.gaf"))
	require.NoError(t, err)
	assert.NotContains(t, res.Schema.RequiredOne(), gaf.ColDBSymbol)
}

func TestReportProblems(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "gaf-errors.log")
	cfg := config.New()
	cfg.Update([]config.Option{config.OptGafErrLog(logPath)})
	rd := ioread.New(cfg)

	res, err := rd.Read(filepath.Join("testdata", "mixed.gaf"))
	require.NoError(t, err)
	res.Validate()

	written, err := rd.ReportProblems(res, "mixed.gaf")
	require.NoError(t, err)
	assert.Equal(t, logPath, written)

	bs, err := os.ReadFile(logPath)
	require.NoError(t, err)
	content := string(bs)
	assert.Contains(t, content, "ILLEGAL GAF ERROR SUMMARY:")
	assert.Contains(t, content, "GAF LINE IGNORED: mixed.gaf[3]")
	assert.Contains(t, content, string(gaf.CatBadTaxon))
}

func TestReportProblemsClean(t *testing.T) {
	cfg := config.New()
	rd := ioread.New(cfg)

	res, err := rd.Read(filepath.Join("testdata", "ok.gaf"))
	require.NoError(t, err)
	res.Validate()

	// Nothing is written for a clean result.
	written, err := rd.ReportProblems(res, "ok.gaf")
	require.NoError(t, err)
	assert.Empty(t, written)
}
