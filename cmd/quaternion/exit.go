package main

import (
	"errors"
	"fmt"
)

// Exit codes.
const (
	ExitSuccess      = 0 // all expressions evaluated, all cases passed
	ExitFailure      = 1 // an expression failed to evaluate or a case failed
	ExitCommandError = 2 // bad flags, unreadable input, malformed case file
)

// ExitError is an error with the exit code the process should end with.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// exitCode extracts the exit code from an error. Errors that are not
// ExitErrors come from cobra itself, e.g. unknown flags.
func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitCommandError
}
