package gaf

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Coercion functions that turn one raw GAF column into its typed value.
// Each is independent and side-effect free. A returned error means the
// whole line is malformed; the caller routes it to the ignored bucket.

// SplitSet splits a multi-valued field on "|". An empty field becomes an
// empty set.
func SplitSet(raw string) Set {
	if raw == "" {
		return Set{}
	}
	return NewSet(strings.Split(raw, "|")...)
}

// SplitList splits a multi-valued field on "|" keeping source order.
// Used where downstream cares about order or count, such as the taxon
// column.
func SplitList(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, "|")
}

// NormalizeQualifiers parses the Qualifier column. GAF files in the wild
// capitalize qualifiers inconsistently, so every token is lower-cased;
// the negation marker is normalized to the canonical "NOT".
func NormalizeQualifiers(raw string) Set {
	quals := Set{}
	if raw == "" {
		return quals
	}
	for _, q := range strings.Split(raw, "|") {
		q = strings.ToLower(q)
		if q == "not" {
			q = "NOT"
		}
		quals[q] = struct{}{}
	}
	return quals
}

// MapAspect converts the single-letter aspect code of the NS column to
// its namespace. Unknown codes are an error, never a silent default.
func MapAspect(code string) (Namespace, error) {
	switch code {
	case "P":
		return NamespaceBP, nil
	case "F":
		return NamespaceMF, nil
	case "C":
		return NamespaceCC, nil
	}
	return "", fmt.Errorf("unknown aspect code %q", code)
}

// ParseTaxa parses the Taxon column: "|"-separated entries of the form
// "taxon:9606". The prefix up to and including the first ":" is stripped
// and the remainder converted to an integer. Entries with an empty
// remainder are skipped without a placeholder. Source order is kept.
// Cardinality (1 or 2) is checked later by Validate, not here.
func ParseTaxa(raw string) ([]int, error) {
	var res []int
	for _, tok := range SplitList(raw) {
		if tok == "" {
			continue
		}
		_, id, found := strings.Cut(tok, ":")
		if !found {
			return nil, fmt.Errorf("taxon %q has no prefix delimiter", tok)
		}
		if id == "" {
			continue
		}
		n, err := strconv.Atoi(id)
		if err != nil {
			return nil, fmt.Errorf("taxon %q is not an integer id", tok)
		}
		res = append(res, n)
	}
	return res, nil
}

// ParseDate parses the Date column, an 8-digit YYYYMMDD literal.
func ParseDate(raw string) (time.Time, error) {
	if len(raw) != 8 {
		return time.Time{}, fmt.Errorf("date %q is not 8 digits", raw)
	}
	t, err := time.Parse("20060102", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad date %q: %w", raw, err)
	}
	return t, nil
}
