package gaf

import (
	"fmt"
	"regexp"
	"strings"
)

// Annotation extensions (GAF 2.x column 16) refine an annotation with
// cross-ontology relations, eg "part_of(CL:0000576)". The column holds
// pipe-separated groups of comma-separated relational units; groups are
// independent statements, units within a group apply together.

// ExtensionUnit is one relational expression: Relation(Target).
type ExtensionUnit struct {
	Relation string
	Target   string
}

func (u ExtensionUnit) String() string {
	return fmt.Sprintf("%s(%s)", u.Relation, u.Target)
}

// ExtensionGroup is a conjunction of extension units.
type ExtensionGroup []ExtensionUnit

func (g ExtensionGroup) String() string {
	units := make([]string, len(g))
	for i, u := range g {
		units[i] = u.String()
	}
	return strings.Join(units, ",")
}

var extUnitRe = regexp.MustCompile(`^([\w]+)\(([^()]+)\)$`)

// ParseExtensions parses the Annotation_Extension column. An empty
// column yields nil. A malformed unit is an error for the whole line.
func ParseExtensions(raw string) ([]ExtensionGroup, error) {
	if raw == "" {
		return nil, nil
	}
	var res []ExtensionGroup
	for _, rawGrp := range strings.Split(raw, "|") {
		var grp ExtensionGroup
		for _, rawUnit := range strings.Split(rawGrp, ",") {
			m := extUnitRe.FindStringSubmatch(strings.TrimSpace(rawUnit))
			if m == nil {
				return nil, fmt.Errorf("bad annotation extension %q", rawUnit)
			}
			grp = append(grp, ExtensionUnit{Relation: m[1], Target: m[2]})
		}
		res = append(res, grp)
	}
	return res, nil
}
