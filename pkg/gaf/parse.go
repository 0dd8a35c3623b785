package gaf

import (
	"fmt"
	"strings"
)

// ParseLine converts one raw data line into a Record according to the
// schema. A nil error means every column coerced cleanly. A non-nil
// error means the line is malformed (wrong column count or a field that
// failed coercion); the caller routes such lines to the ignored bucket
// and continues. ParseLine never panics on bad input.
func ParseLine(line string, s *Schema) (*Record, error) {
	line = strings.TrimRight(line, "\r\n")
	cols := strings.Split(line, "\t")
	if len(cols) != s.NumColumns {
		return nil, fmt.Errorf(
			"got %d columns, want %d for gaf-version %s",
			len(cols), s.NumColumns, s.Version,
		)
	}

	ns, err := MapAspect(cols[ColNS])
	if err != nil {
		return nil, err
	}
	taxa, err := ParseTaxa(cols[ColTaxon])
	if err != nil {
		return nil, err
	}
	date, err := ParseDate(cols[ColDate])
	if err != nil {
		return nil, err
	}

	rec := &Record{
		DB:           strings.TrimSpace(cols[ColDB]),
		DBID:         strings.TrimSpace(cols[ColDBID]),
		DBSymbol:     strings.TrimSpace(cols[ColDBSymbol]),
		Qualifiers:   NormalizeQualifiers(cols[ColQualifier]),
		GOID:         strings.TrimSpace(cols[ColGOID]),
		DBReferences: SplitSet(cols[ColDBReference]),
		EvidenceCode: strings.TrimSpace(cols[ColEvidenceCode]),
		WithFrom:     SplitSet(cols[ColWithFrom]),
		Namespace:    ns,
		DBName:       SplitSet(cols[ColDBName]),
		DBSynonyms:   SplitSet(cols[ColDBSynonym]),
		DBType:       strings.TrimSpace(cols[ColDBType]),
		Taxa:         taxa,
		Date:         date,
		AssignedBy:   strings.TrimSpace(cols[ColAssignedBy]),
	}

	// GAF 1.0 ends at Assigned_By; 2.x adds two columns.
	if s.long {
		rec.Extensions, err = ParseExtensions(cols[ColExtension])
		if err != nil {
			return nil, err
		}
		rec.GeneProductFormID = SplitSet(strings.TrimSpace(cols[ColGeneProductFormID]))
	}

	return rec, nil
}
