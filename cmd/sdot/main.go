// Command sdot is a CLI front end for the semi-discrete optimal
// transport solver: it builds a domain and a set of seeds from flags,
// runs the Newton–KMT solve, and optionally persists the result.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ot2d/sdot/transport"
)

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "sdot:", err)
	}
	os.Exit(exitCode(err))
}

// exitCode maps the CLI's result to the process exit status: 0 success,
// 1 convergence failure, 2 input error, 3 internal/unexpected error.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var dnc *transport.ErrDidNotConverge
	if errors.As(err, &dnc) {
		return 1
	}
	var ce *cliError
	if errors.As(err, &ce) {
		return ce.code
	}
	return 3
}

// cliError tags an error with the exit code it should produce, for
// conditions exitCode can't otherwise distinguish (bad flags, invalid
// domain/seed specs).
type cliError struct {
	code int
	err  error
}

func inputError(err error) error {
	return &cliError{code: 2, err: err}
}

func (e *cliError) Error() string { return e.err.Error() }
func (e *cliError) Unwrap() error { return e.err }
