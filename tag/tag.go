// Package tag detects cache directories marked with a CACHEDIR.TAG file as
// described by the Cache Directory Tagging Specification
// (https://bford.info/cachedir/).
//
// A directory is tagged when it directly contains a file named CACHEDIR.TAG
// whose leading bytes equal [Signature]. Anything after the signature,
// typically human-readable comment lines, is ignored.
//
// Every check ends in exactly one of three outcomes: the directory is
// tagged, it is not tagged, or the check could not be performed. A tag file
// that is too short or has the wrong content is a definitive "not tagged",
// not an error. A directory that does not exist or cannot be read is an
// error, so callers can tell "no marker here" from "could not look".
//
//	tagged, err := tag.IsTagged("target")
//	if err != nil {
//		// err is a *tag.Error; errors.Is(err, tag.ErrNotFound) etc.
//	}
//
// The package never logs, prints or exits. It holds no state between calls
// and is safe for concurrent use.
package tag

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
)

// Filename is the name of the marker file inside a cache directory.
const Filename = "CACHEDIR.TAG"

// Signature is the header a valid CACHEDIR.TAG file must start with.
const Signature = "Signature: 8a477f597d28d172789f06886806bc55"

// State describes what was found in a directory that could be checked.
type State int

const (
	// Absent means the directory exists but has no CACHEDIR.TAG file.
	Absent State = iota
	// WrongHeader means CACHEDIR.TAG exists but does not start with the
	// signature, including files shorter than the signature.
	WrongHeader
	// Present means CACHEDIR.TAG exists and starts with the signature.
	Present
)

// String returns the kebab-case name used in CLI and JSON output.
func (s State) String() string {
	switch s {
	case Absent:
		return "absent"
	case WrongHeader:
		return "wrong-header"
	case Present:
		return "present"
	default:
		return "unknown"
	}
}

// Report is the detailed result of [Inspect].
type Report struct {
	Dir    string // directory that was checked
	State  State
	Header []byte // leading bytes read from the tag file, nil when Absent
}

// Tagged reports whether the directory holds a valid tag.
func (r Report) Tagged() bool { return r.State == Present }

// Inspect checks dir for a CACHEDIR.TAG file and reports what it found.
//
// The returned error, when non-nil, is a *Error. A missing tag file inside
// an existing directory is not an error; a missing directory is.
func Inspect(dir string) (Report, error) {
	p := filepath.Join(dir, Filename)

	f, err := os.Open(p)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return Report{Dir: dir}, Classify(p, err)
		}
		// The tag file is missing. That is only a definitive answer if the
		// directory itself is there.
		info, statErr := os.Stat(dir)
		if statErr != nil {
			return Report{Dir: dir}, Classify(dir, statErr)
		}
		if !info.IsDir() {
			return Report{Dir: dir}, Classify(p, err)
		}
		return Report{Dir: dir, State: Absent}, nil
	}
	defer f.Close()

	buf := make([]byte, len(Signature))
	n, err := io.ReadFull(f, buf)
	switch {
	case err == nil:
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		// Too short to hold the signature.
		return Report{Dir: dir, State: WrongHeader, Header: buf[:n]}, nil
	default:
		return Report{Dir: dir}, Classify(p, err)
	}

	if !Matches(buf) {
		return Report{Dir: dir, State: WrongHeader, Header: buf}, nil
	}
	return Report{Dir: dir, State: Present, Header: buf}, nil
}

// Matches reports whether header starts with the signature. Bytes after the
// signature are ignored.
func Matches(header []byte) bool {
	return len(header) >= len(Signature) && bytes.Equal(header[:len(Signature)], []byte(Signature))
}

// IsTagged reports whether dir is tagged with a valid CACHEDIR.TAG file.
// See [Inspect] for error conditions.
func IsTagged(dir string) (bool, error) {
	r, err := Inspect(dir)
	if err != nil {
		return false, err
	}
	return r.Tagged(), nil
}
