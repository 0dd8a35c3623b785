// Package ioexport writes parsed annotation collections to SQLite or
// JSON Lines files.
package ioexport

import (
	"fmt"
	"strings"

	"github.com/gnames/gnanno/pkg/gaf"
	"github.com/gnames/gnuuid"
)

// row is the flat export form of one annotation record. Multi-valued
// fields are sorted and joined with "|" for the SQLite encoding and
// kept as slices for JSON.
type row struct {
	ID                string   `json:"id"`
	DB                string   `json:"db"`
	DBID              string   `json:"dbId"`
	DBSymbol          string   `json:"dbSymbol,omitempty"`
	Qualifiers        []string `json:"qualifiers,omitempty"`
	GOID              string   `json:"goId"`
	DBReferences      []string `json:"dbReferences"`
	EvidenceCode      string   `json:"evidenceCode"`
	WithFrom          []string `json:"withFrom,omitempty"`
	Namespace         string   `json:"namespace"`
	DBName            []string `json:"dbName,omitempty"`
	DBSynonyms        []string `json:"dbSynonyms,omitempty"`
	DBType            string   `json:"dbType"`
	Taxa              []int    `json:"taxa"`
	Date              string   `json:"date"`
	AssignedBy        string   `json:"assignedBy"`
	Extensions        string   `json:"extensions,omitempty"`
	GeneProductFormID string   `json:"geneProductFormId,omitempty"`
}

func newRow(rec *gaf.Record) row {
	exts := make([]string, len(rec.Extensions))
	for i, g := range rec.Extensions {
		exts[i] = g.String()
	}

	res := row{
		DB:                rec.DB,
		DBID:              rec.DBID,
		DBSymbol:          rec.DBSymbol,
		Qualifiers:        rec.Qualifiers.Sorted(),
		GOID:              rec.GOID,
		DBReferences:      rec.DBReferences.Sorted(),
		EvidenceCode:      rec.EvidenceCode,
		WithFrom:          rec.WithFrom.Sorted(),
		Namespace:         string(rec.Namespace),
		DBName:            rec.DBName.Sorted(),
		DBSynonyms:        rec.DBSynonyms.Sorted(),
		DBType:            rec.DBType,
		Taxa:              rec.Taxa,
		Date:              rec.Date.Format("2006-01-02"),
		AssignedBy:        rec.AssignedBy,
		Extensions:        strings.Join(exts, "|"),
		GeneProductFormID: strings.Join(rec.GeneProductFormID.Sorted(), "|"),
	}

	// Deterministic UUID v5 so re-exports of the same annotation get the
	// same identifier.
	key := fmt.Sprintf("%s|%s|%s|%s|%s|%s|%s",
		res.DB, res.DBID, res.GOID, res.EvidenceCode,
		strings.Join(res.DBReferences, ","),
		strings.Join(res.Qualifiers, ","),
		res.Date,
	)
	res.ID = gnuuid.New(key).String()

	return res
}

func taxaString(taxa []int) string {
	strs := make([]string, len(taxa))
	for i, t := range taxa {
		strs[i] = fmt.Sprintf("%d", t)
	}
	return strings.Join(strs, "|")
}
