package gaf

// Result is everything one read of an annotation file produced. It is
// owned by the caller; nothing in it is shared between reads.
type Result struct {
	// Records are the successfully parsed data lines in file order.
	Records []*Record
	// Header is the accumulated header block.
	Header *Header
	// Schema is the column layout that was active during the read.
	Schema *Schema
	// Ignored are the data lines that failed to parse.
	Ignored []IgnoredLine

	issues *Issues
}

// Validate runs the structural validation pass over the records and
// reports whether no violations were found. Each call performs a fresh
// pass, so validating twice yields identical results. Not valid before
// the header has been read (nil Schema validates nothing).
func (r *Result) Validate() bool {
	if r.Schema == nil {
		return true
	}
	r.issues = Validate(r.Records, r.Schema)
	return r.issues.Empty()
}

// Issues returns the violations of the most recent Validate call, or
// nil if Validate has not run.
func (r *Result) Issues() *Issues {
	return r.issues
}

// HasProblems reports whether the read ignored any lines or the last
// validation pass flagged any records.
func (r *Result) HasProblems() bool {
	return len(r.Ignored) > 0 || (r.issues != nil && !r.issues.Empty())
}
