// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
)

// ErrUsage marks errors caused by the command line itself.
var ErrUsage = errors.New("braidnf: usage")

// Exit codes reported through ExitCode.
const (
	ExitFailure = 1
	ExitUsage   = 2
)

// exitError carries the process exit code next to the cause. main checks for
// the ExitCode method.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

// ExitCode returns the status the process should exit with.
func (e *exitError) ExitCode() int { return e.code }

// usagef reports a command-line mistake (exit status 2).
func usagef(format string, args ...any) error {
	return &exitError{code: ExitUsage, err: fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, args...))}
}

// failure reports an input that was well-formed on the command line but
// rejected by the library (exit status 1).
func failure(err error) error {
	return &exitError{code: ExitFailure, err: err}
}
