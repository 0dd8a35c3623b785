package gaf

import "strings"

// versionKey declares the format version inside the header block.
const versionKey = "gaf-version:"

// Header accumulates the comment-prefixed lines that precede the data
// block and captures the declared format version.
type Header struct {
	lines   []string
	version string
}

// IsHeaderLine reports whether a raw line belongs to the header block.
func IsHeaderLine(line string) bool {
	return strings.HasPrefix(line, "!")
}

// Observe stores one header line. The caller only passes in lines for
// which IsHeaderLine is true. The first gaf-version declaration wins;
// repeats never overwrite it.
func (h *Header) Observe(line string) {
	line = strings.TrimRight(strings.TrimPrefix(line, "!"), "\r\n")
	h.lines = append(h.lines, line)

	if h.version == "" && strings.HasPrefix(line, versionKey) {
		h.version = strings.TrimSpace(line[len(versionKey):])
	}
}

// Version returns the captured format version, or "" if the header did
// not declare one.
func (h *Header) Version() string {
	return h.version
}

// Text returns all captured header lines joined with newlines. It is
// idempotent and callable any number of times.
func (h *Header) Text() string {
	return strings.Join(h.lines, "\n")
}
