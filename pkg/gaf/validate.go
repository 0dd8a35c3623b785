package gaf

import "fmt"

// Category labels one kind of structural violation found by Validate.
type Category string

const (
	// CatQtyOne flags a required single-value column with no value.
	CatQtyOne Category = "QTY 1"
	// CatMinQty flags a multi-valued field below its minimum cardinality.
	CatMinQty Category = "MIN QTY"
	// CatMaxQty flags a multi-valued field above its maximum cardinality.
	CatMaxQty Category = "MAX QTY"
	// CatBadTaxon flags a taxon column without 1 or 2 entries.
	CatBadTaxon Category = "BAD TAXON"
)

// categoryOrder fixes the rendering order of violation categories in
// summaries and logs.
var categoryOrder = []Category{CatQtyOne, CatMinQty, CatMaxQty, CatBadTaxon}

// Issue is one structural violation on an already-built record.
type Issue struct {
	// RecordIndex is the 0-based index into the record collection.
	RecordIndex int
	// Msg is a rendered description of the violation.
	Msg string
}

// Issues collects categorized violations from one validation pass.
type Issues struct {
	byCat map[Category][]Issue
}

func (is *Issues) add(cat Category, idx int, msg string) {
	if is.byCat == nil {
		is.byCat = make(map[Category][]Issue)
	}
	is.byCat[cat] = append(is.byCat[cat], Issue{RecordIndex: idx, Msg: msg})
}

// Empty reports whether the pass found no violations.
func (is *Issues) Empty() bool {
	return len(is.byCat) == 0
}

// Total returns the number of violations across all categories.
func (is *Issues) Total() int {
	var n int
	for _, issues := range is.byCat {
		n += len(issues)
	}
	return n
}

// Categories returns the non-empty categories in fixed rendering order.
func (is *Issues) Categories() []Category {
	var res []Category
	for _, cat := range categoryOrder {
		if len(is.byCat[cat]) > 0 {
			res = append(res, cat)
		}
	}
	return res
}

// ByCategory returns the violations recorded under one category.
func (is *Issues) ByCategory(cat Category) []Issue {
	return is.byCat[cat]
}

// cardinality bounds one multi-valued field. max < 0 means unbounded.
// The accessor table is fixed at compile time; validation never looks
// fields up by name at run time.
type cardinality struct {
	name  string
	count func(*Record) int
	min   int
	max   int
}

var cardinalities = []cardinality{
	// Qualifier's 0-minimum can never fail; kept so every multi-valued
	// field appears in the table.
	{"Qualifier", func(r *Record) int { return len(r.Qualifiers) }, 0, -1},
	{"DB_Reference", func(r *Record) int { return len(r.DBReferences) }, 1, -1},
	{"With_From", func(r *Record) int { return len(r.WithFrom) }, 0, -1},
	{"DB_Name", func(r *Record) int { return len(r.DBName) }, 0, 1},
	{"DB_Synonym", func(r *Record) int { return len(r.DBSynonyms) }, 0, -1},
	{"Taxon", func(r *Record) int { return len(r.Taxa) }, 1, 2},
}

// Validate runs the post-hoc structural pass over a record collection:
// per-field cardinality bounds, taxon count, and required-value presence
// per the schema. Records are flagged, never mutated or removed, so
// repeated validation of the same collection yields identical results.
func Validate(recs []*Record, s *Schema) *Issues {
	is := &Issues{}
	for idx, rec := range recs {
		for _, c := range cardinalities {
			n := c.count(rec)
			if n < c.min {
				is.add(CatMinQty, idx, fmt.Sprintf(
					"FIELD(%s): MIN QUANTITY(%d) WASN'T MET: %d",
					c.name, c.min, n))
			}
			if c.max >= 0 && n > c.max {
				is.add(CatMaxQty, idx, fmt.Sprintf(
					"FIELD(%s): MAX QUANTITY(%d) EXCEEDED: %d: %s",
					c.name, c.max, n, rec))
			}
		}

		for _, col := range s.RequiredOne() {
			if !presence[col](rec) {
				is.add(CatQtyOne, idx, fmt.Sprintf(
					"MISSING REQUIRED VAL FOR COL(%d):%s: %s(%s) %s(%s)",
					col, s.Columns[col],
					s.Columns[ColDB], rec.DB, s.Columns[ColDBID], rec.DBID))
			}
		}

		if n := len(rec.Taxa); n != 1 && n != 2 {
			is.add(CatBadTaxon, idx, fmt.Sprintf("TAXON: %s", rec))
		}
	}
	return is
}
