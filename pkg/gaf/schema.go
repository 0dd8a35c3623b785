package gaf

import (
	"fmt"
	"slices"
)

// Column indices shared by all GAF versions.
const (
	ColDB = iota
	ColDBID
	ColDBSymbol
	ColQualifier
	ColGOID
	ColDBReference
	ColEvidenceCode
	ColWithFrom
	ColNS
	ColDBName
	ColDBSynonym
	ColDBType
	ColTaxon
	ColDate
	ColAssignedBy
	// GAF 2.x only.
	ColExtension
	ColGeneProductFormID
)

// baseColumns are the 15 columns of GAF 1.0 and the first 15 of 2.x.
var baseColumns = []string{ //      Col Req?     Cardinality    Example
	"DB",                    //       0 required 1              UniProtKB
	"DB_ID",                 //       1 required 1              P12345
	"DB_Symbol",             //       2 required 1              PHO3
	"Qualifier",             //       3 optional 0 or greater   NOT
	"GO_ID",                 //       4 required 1              GO:0003993
	"DB_Reference",          //       5 required 1 or greater   PMID:2676709
	"Evidence_Code",         //       6 required 1              IMP
	"With_From",             //       7 optional 0 or greater   GO:0000346
	"NS",                    //       8 required 1              P->BP F->MF C->CC
	"DB_Name",               //       9 optional 0 or 1         Toll-like receptor 4
	"DB_Synonym",            //      10 optional 0 or greater   hToll|Tollbooth
	"DB_Type",               //      11 required 1              protein
	"Taxon",                 //      12 required 1 or 2         taxon:9606
	"Date",                  //      13 required 1              20090118
	"Assigned_By",           //      14 required 1              SGD
}

// extraColumns were added in GAF 2.0.
var extraColumns = []string{
	"Extension",            // 15 optional 0 or greater part_of(CL:0000576)
	"Gene_Product_Form_ID", // 16 optional 0 or 1       UniProtKB:P12345-2
}

// requiredOne lists the columns that must carry exactly one non-empty
// value in every record.
var requiredOne = []int{
	ColDB, ColDBID, ColDBSymbol, ColGOID, ColEvidenceCode,
	ColNS, ColDBType, ColDate, ColAssignedBy,
}

// Schema is the column layout for one declared GAF version. It is built
// once when the header ends and stays immutable for the rest of the
// parse; the record field order is bound to the column order here.
type Schema struct {
	// Version is the declared format version: "1.0", "2.0" or "2.1".
	Version string
	// Columns holds the column names in file order.
	Columns []string
	// NumColumns is the expected raw column count of every data line.
	NumColumns int
	// requiredOne are indices of columns that must be non-empty.
	requiredOne []int
	long        bool
}

// ForVersion builds the Schema for a declared version string. Unknown
// versions are a configuration error and fatal for the whole read. With
// allowMissingSymbol the DB_Symbol column is dropped from the
// required-presence set.
func ForVersion(version string, allowMissingSymbol bool) (*Schema, error) {
	var cols []string
	switch version {
	case "1.0":
		cols = baseColumns
	case "2.0", "2.1":
		cols = slices.Concat(baseColumns, extraColumns)
	default:
		return nil, fmt.Errorf("unsupported gaf-version %q", version)
	}

	req1 := requiredOne
	if allowMissingSymbol {
		req1 = slices.DeleteFunc(slices.Clone(req1), func(i int) bool {
			return i == ColDBSymbol
		})
	}

	return &Schema{
		Version:     version,
		Columns:     cols,
		NumColumns:  len(cols),
		requiredOne: req1,
		long:        version[0] == '2',
	}, nil
}

// Required reports whether the column at idx is a required field.
func (s *Schema) Required(idx int) bool {
	switch idx {
	case ColDB, ColDBID, ColGOID, ColDBReference, ColEvidenceCode,
		ColNS, ColDBType, ColTaxon, ColDate, ColAssignedBy:
		return true
	case ColDBSymbol:
		return slices.Contains(s.requiredOne, ColDBSymbol)
	}
	return false
}

// RequiredOne returns the indices of columns that must be non-empty in
// every record.
func (s *Schema) RequiredOne() []int {
	return s.requiredOne
}

// presence is a typed accessor table from column index to a check that a
// built record carries a value for that column. Built once; validation
// never reaches into records by name at run time.
var presence = map[int]func(*Record) bool{
	ColDB:           func(r *Record) bool { return r.DB != "" },
	ColDBID:         func(r *Record) bool { return r.DBID != "" },
	ColDBSymbol:     func(r *Record) bool { return r.DBSymbol != "" },
	ColGOID:         func(r *Record) bool { return r.GOID != "" },
	ColEvidenceCode: func(r *Record) bool { return r.EvidenceCode != "" },
	ColNS:           func(r *Record) bool { return r.Namespace != "" },
	ColDBType:       func(r *Record) bool { return r.DBType != "" },
	ColDate:         func(r *Record) bool { return !r.Date.IsZero() },
	ColAssignedBy:   func(r *Record) bool { return r.AssignedBy != "" },
}
