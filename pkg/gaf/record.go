// Package gaf implements parsing and validation of GO Annotation Files
// (GAF). The package is pure: it converts raw text into typed records and
// checks them, but performs no I/O. File reading lives in
// internal/ioread.
//
// GAF format: http://geneontology.org/page/go-annotation-file-formats
package gaf

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Namespace is the ontology branch of an annotation, mapped from the
// single-letter aspect code of the NS column.
type Namespace string

const (
	NamespaceBP Namespace = "BP" // biological process (aspect P)
	NamespaceMF Namespace = "MF" // molecular function (aspect F)
	NamespaceCC Namespace = "CC" // cellular component (aspect C)
)

// Set holds the members of a multi-valued GAF field. Order of the raw
// subfields is not preserved and duplicates collapse.
type Set map[string]struct{}

// NewSet creates a Set from the given members.
func NewSet(members ...string) Set {
	res := make(Set, len(members))
	for _, m := range members {
		res[m] = struct{}{}
	}
	return res
}

// Has reports whether the set contains the given member.
func (s Set) Has(member string) bool {
	_, ok := s[member]
	return ok
}

// Sorted returns the members in lexical order. Used for deterministic
// rendering in reports and exports.
func (s Set) Sorted() []string {
	res := make([]string, 0, len(s))
	for m := range s {
		res = append(res, m)
	}
	slices.Sort(res)
	return res
}

// String renders the set as its sorted members joined with "|".
func (s Set) String() string {
	return strings.Join(s.Sorted(), "|")
}

// Record is one fully parsed GAF data line. Records are created once by
// ParseLine and never mutated afterwards; post-hoc validation flags bad
// records without changing or removing them.
type Record struct {
	// DB is the database contributing the annotation (eg UniProtKB).
	DB string
	// DBID is the unique identifier of the annotated entity within DB.
	DBID string
	// DBSymbol is the entity symbol (eg PHO3). Required unless the
	// schema was built with symbol omission allowed.
	DBSymbol string
	// Qualifiers are annotation qualifiers, lower-cased except for the
	// canonical negation marker "NOT".
	Qualifiers Set
	// GOID is the annotated ontology term (eg GO:0003993).
	GOID string
	// DBReferences are the supporting references, one or more.
	DBReferences Set
	// EvidenceCode is the GO evidence code (eg IMP).
	EvidenceCode string
	// WithFrom holds the optional With/From support values.
	WithFrom Set
	// Namespace is the ontology branch, mapped from the aspect code.
	Namespace Namespace
	// DBName is the optional entity name, zero or one member.
	DBName Set
	// DBSynonyms are optional entity synonyms.
	DBSynonyms Set
	// DBType is the kind of the annotated entity (eg protein).
	DBType string
	// Taxa are organism identifiers in source order, one or two entries,
	// each stripped of its "taxon:" prefix.
	Taxa []int
	// Date is when the annotation was made, from an 8-digit YYYYMMDD.
	Date time.Time
	// AssignedBy is the source of the annotation (eg SGD).
	AssignedBy string
	// Extensions holds the parsed Annotation_Extension column. Only
	// populated for GAF 2.x.
	Extensions []ExtensionGroup
	// GeneProductFormID is the optional spliceform/proteoform field.
	// Only populated for GAF 2.x.
	GeneProductFormID Set
}

// String renders a record in a compact single-line form for diagnostics.
func (r *Record) String() string {
	taxa := make([]string, len(r.Taxa))
	for i, t := range r.Taxa {
		taxa[i] = fmt.Sprintf("taxon:%d", t)
	}
	return fmt.Sprintf(
		"%s:%s %s %s %s %s taxa[%s] %s %s",
		r.DB, r.DBID, r.DBSymbol, r.GOID, r.EvidenceCode, r.Namespace,
		strings.Join(taxa, "|"), r.Date.Format("20060102"), r.AssignedBy,
	)
}
