// Package explain describes why a CACHEDIR.TAG header does not match the
// signature, as a character-level diff between the two.
package explain

import (
	"fmt"
	"strings"

	"github.com/jpl-au/cachedir/tag"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Result holds a header comparison.
type Result struct {
	Expected string `json:"expected"` // the signature
	Found    string `json:"found"`    // the header bytes, escaped where not printable
	Diff     string `json:"diff"`     // plain diff text, one segment per line
	Offset   int    `json:"offset"`   // first differing byte, -1 when the header matches
	Short    bool   `json:"short"`    // header is a strict prefix of the signature
}

// Header compares header against the signature.
func Header(header []byte) Result {
	found := printable(header)
	r := Result{
		Expected: tag.Signature,
		Found:    found,
		Offset:   firstDifference(header),
	}
	r.Short = r.Offset == len(header) && len(header) < len(tag.Signature)
	if r.Offset < 0 {
		return r
	}

	dmp := diffmatchpatch.New()
	d := dmp.DiffMain(tag.Signature, found, false)
	d = dmp.DiffCleanupSemantic(d)
	r.Diff = format(d)
	return r
}

// String renders the comparison for terminal output.
func (r Result) String() string {
	if r.Offset < 0 {
		return "header matches signature\n"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "expected: %s\n", r.Expected)
	fmt.Fprintf(&b, "found:    %s\n", r.Found)
	if r.Short {
		fmt.Fprintf(&b, "file ends after %d of %d bytes\n", r.Offset, len(r.Expected))
	} else {
		fmt.Fprintf(&b, "first difference at byte %d\n", r.Offset)
	}
	b.WriteString(r.Diff)
	return b.String()
}

// firstDifference returns the offset of the first byte of header that
// differs from the signature, or the header length if it is a short prefix.
func firstDifference(header []byte) int {
	if tag.Matches(header) {
		return -1
	}
	for i := range header {
		if i >= len(tag.Signature) || header[i] != tag.Signature[i] {
			return i
		}
	}
	return len(header)
}

// printable returns header as text, escaping bytes a terminal would mangle.
func printable(header []byte) string {
	var b strings.Builder
	for _, c := range header {
		if c >= 0x20 && c < 0x7f {
			b.WriteByte(c)
			continue
		}
		fmt.Fprintf(&b, "\\x%02x", c)
	}
	return b.String()
}

// format converts diffs to one line per segment.
func format(diffs []diffmatchpatch.Diff) string {
	var b strings.Builder
	for _, d := range diffs {
		if d.Text == "" {
			continue
		}
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			b.WriteString("- " + d.Text + "\n")
		case diffmatchpatch.DiffInsert:
			b.WriteString("+ " + d.Text + "\n")
		case diffmatchpatch.DiffEqual:
			b.WriteString("  " + d.Text + "\n")
		}
	}
	return b.String()
}

// Colourise adds ANSI colours to diff output.
func Colourise(d string) string {
	const (
		red   = "\033[31m"
		green = "\033[32m"
		reset = "\033[0m"
	)

	var b strings.Builder
	for _, line := range strings.Split(d, "\n") {
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "- "):
			b.WriteString(red + line + reset + "\n")
		case strings.HasPrefix(line, "+ "):
			b.WriteString(green + line + reset + "\n")
		default:
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}
