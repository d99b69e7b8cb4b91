/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// exit.go maps command results to process exit codes.

package cmd

import (
	"errors"
	"fmt"
)

// Exit codes. These form the contract with scripts calling cachedir.
const (
	ExitTagged    = 0 // directory is tagged (or command succeeded)
	ExitNotTagged = 1 // directory is not tagged
	ExitFailure   = 2 // check failed, or the command line was invalid
)

// ExitError carries an exit code out of a cobra command. When Err is nil the
// command has already told the user what happened and Execute prints nothing.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// Exit returns an already-reported error that makes the process exit with code.
func Exit(code int) error {
	return &ExitError{Code: code}
}

// Code returns the process exit code for err.
func Code(err error) int {
	if err == nil {
		return ExitTagged
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return ExitFailure
}

// Reported returns true if err only carries an exit code.
func Reported(err error) bool {
	var ee *ExitError
	return errors.As(err, &ee) && ee.Err == nil
}
