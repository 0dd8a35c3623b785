package gaf

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
)

// IgnoredLine is a data line that failed to parse into a Record. Only
// the 1-based line number, the verbatim text and the failure cause are
// retained.
type IgnoredLine struct {
	Num    int
	Text   string
	Reason string
}

// LineDetail renders a raw line as a numbered field-by-field breakdown
// using the column layout of the schema: index, required marker, column
// name, raw value. Lines with a wrong column count render as far as the
// values go.
func LineDetail(s *Schema, raw string) string {
	vals := strings.Split(strings.TrimRight(raw, "\r\n"), "\t")
	var b strings.Builder
	for i := 0; i < len(vals) && i < len(s.Columns); i++ {
		req := ""
		if s.Required(i) {
			req = "REQ"
		}
		fmt.Fprintf(&b, "%2d) %-3s %-20s %s\n", i, req, s.Columns[i], vals[i])
	}
	return b.String()
}

// SummaryCounts renders one line per error kind: the ignored-line count
// first, then each violation category with its count.
func SummaryCounts(ignored []IgnoredLine, is *Issues) []string {
	var res []string
	if len(ignored) > 0 {
		res = append(res, fmt.Sprintf(
			"  %9s IGNORED annotations",
			humanize.Comma(int64(len(ignored)))))
	}
	if is != nil {
		for _, cat := range is.Categories() {
			res = append(res, fmt.Sprintf(
				"  %9s %s",
				humanize.Comma(int64(len(is.ByCategory(cat)))), cat))
		}
	}
	return res
}

// WriteReport writes the full error report: summary counts, then detail
// blocks for every ignored line and every illegal record. src names the
// annotation file the report is about.
func WriteReport(
	w io.Writer,
	src string,
	s *Schema,
	recs []*Record,
	ignored []IgnoredLine,
	is *Issues,
) error {
	var err error
	write := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	write("ILLEGAL GAF ERROR SUMMARY:\n\n")
	for _, line := range SummaryCounts(ignored, is) {
		write("%s\n", line)
	}

	write("\n\nILLEGAL GAF ERROR DETAILS:\n\n")
	for _, ign := range ignored {
		write("**WARNING: GAF LINE IGNORED: %s[%d]: %s\n%s\n",
			src, ign.Num, ign.Reason, ign.Text)
		write("%s\n\n", LineDetail(s, ign.Text))
	}

	if is != nil {
		for _, cat := range is.Categories() {
			for _, issue := range is.ByCategory(cat) {
				write("**WARNING: GAF RECORD ILLEGAL(%s): %s[%d]:\n%s\n",
					cat, src, issue.RecordIndex, issue.Msg)
				if issue.RecordIndex >= 0 && issue.RecordIndex < len(recs) {
					write("%s\n", recs[issue.RecordIndex])
				}
				write("\n")
			}
		}
	}
	return err
}
