package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/structdiff/parse"
	"github.com/pkg/errors"
)

// cliError tags an error with the process exit code main should use for
// it.
type cliError struct {
	cause error
	code  int
}

func (e *cliError) Error() string { return e.cause.Error() }
func (e *cliError) Unwrap() error { return e.cause }
func (e *cliError) ExitCode() int { return e.code }

// usageErrorf builds a usage error: bad flags, bad arguments, bad
// combinations thereof.
func usageErrorf(format string, args ...interface{}) error {
	return &cliError{cause: fmt.Errorf(format, args...), code: 2}
}

// handleErr prints err and reports the process exit code it maps to.
func handleErr(err error) int {
	fmt.Fprintln(os.Stderr, "structdiff:", err)

	return exitCodeFor(err)
}

// exitCodeFor maps err to the process exit code it should produce: 1 for
// a parse failure or a cancelled diff, 2 for everything else (bad flags,
// bad arguments, cobra's own usage errors).
func exitCodeFor(err error) int {
	var pe *parse.ParseError
	if errors.As(err, &pe) {
		return 1
	}

	var ec exitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}

	return 2
}

type exitCoder interface {
	ExitCode() int
}
