// errors.go defines the error taxonomy for checks that could not produce an
// answer.
//
// Separated from tag.go so the classification rules live in one place.
//
// Design: a single *Error type carries the failing path and the OS cause,
// while the sentinels below let callers branch on the category with
// errors.Is without caring about platform errno values.

package tag

import (
	"errors"
	"io/fs"
)

var (
	// ErrNotFound matches errors for a directory or tag file that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrPermission matches errors caused by missing access rights.
	ErrPermission = errors.New("permission denied")
	// ErrIO matches every other open or read failure.
	ErrIO = errors.New("i/o error")
)

// Kind classifies why a check failed.
type Kind int

const (
	KindIO Kind = iota
	KindNotFound
	KindPermission
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not-found"
	case KindPermission:
		return "permission-denied"
	default:
		return "io"
	}
}

// sentinel returns the package sentinel matching k.
func (k Kind) sentinel() error {
	switch k {
	case KindNotFound:
		return ErrNotFound
	case KindPermission:
		return ErrPermission
	default:
		return ErrIO
	}
}

// Error reports a check that could not determine whether a directory is
// tagged.
type Error struct {
	Kind Kind
	Path string // path whose open, stat or read failed
	Err  error  // underlying OS error
}

// Error returns the OS description of the failure, e.g.
// "stat does-not-exist: no such file or directory".
func (e *Error) Error() string {
	if e.Err == nil {
		return e.Path + ": " + e.Kind.sentinel().Error()
	}
	return e.Err.Error()
}

// Unwrap returns the underlying OS error so errors.Is(err, fs.ErrNotExist)
// keeps working.
func (e *Error) Unwrap() error { return e.Err }

// Is matches the package sentinels by kind.
func (e *Error) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// Classify wraps err, which must be non-nil, in an *Error for path.
func Classify(path string, err error) *Error {
	var te *Error
	if errors.As(err, &te) {
		return te
	}

	k := KindIO
	switch {
	case errors.Is(err, fs.ErrNotExist):
		k = KindNotFound
	case errors.Is(err, fs.ErrPermission):
		k = KindPermission
	}
	return &Error{Kind: k, Path: path, Err: err}
}
