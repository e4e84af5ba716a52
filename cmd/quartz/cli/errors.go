// Copyright 2026 The Quartz Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// ErrorCategory classifies command errors so callers can make
// programmatic decisions (fix input, run a remediation command,
// report a bug) without parsing error message text.
type ErrorCategory string

const (
	// CategoryParse indicates the command line itself was invalid:
	// unknown verb or object, missing required parameter, malformed
	// parameter value.
	CategoryParse ErrorCategory = "parse"

	// CategoryValidation indicates the tokens parsed but the
	// combination is invalid, such as a verb-object pair with no
	// registered command.
	CategoryValidation ErrorCategory = "validation"

	// CategoryPrecondition indicates an external invariant failed
	// before execution: missing config section, wrong working
	// directory.
	CategoryPrecondition ErrorCategory = "precondition"

	// CategoryExecution indicates the handler failed during real work.
	CategoryExecution ErrorCategory = "execution"

	// CategoryConflict indicates a duplicate (verb, object)
	// registration. This is a startup-time programming error, not a
	// runtime condition.
	CategoryConflict ErrorCategory = "conflict"
)

// CommandError is a categorized error produced by the routing engine.
// It wraps an inner error, preserving the chain for errors.Is and
// errors.As while adding category metadata.
type CommandError struct {
	Category ErrorCategory
	Err      error
}

func (e *CommandError) Error() string { return e.Err.Error() }

func (e *CommandError) Unwrap() error { return e.Err }

// ParseErr creates a parse error: the command line was invalid.
func ParseErr(format string, args ...any) *CommandError {
	return &CommandError{Category: CategoryParse, Err: fmt.Errorf(format, args...)}
}

// ValidationErr creates a validation error: tokens parsed but the
// combination is invalid.
func ValidationErr(format string, args ...any) *CommandError {
	return &CommandError{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// PreconditionErr creates a precondition error: an external invariant
// failed before the handler ran.
func PreconditionErr(format string, args ...any) *CommandError {
	return &CommandError{Category: CategoryPrecondition, Err: fmt.Errorf(format, args...)}
}

// ExecutionErr creates an execution error: the handler failed.
func ExecutionErr(format string, args ...any) *CommandError {
	return &CommandError{Category: CategoryExecution, Err: fmt.Errorf(format, args...)}
}

// ConflictErr creates a conflict error: duplicate registration.
func ConflictErr(format string, args ...any) *CommandError {
	return &CommandError{Category: CategoryConflict, Err: fmt.Errorf(format, args...)}
}

// ExitError signals a non-zero exit code without printing an extra
// error message. When a handler returns an ExitError, main exits with
// the specified code without printing the error string — the command
// is expected to have already written its own output.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode returns the exit code. main checks for this interface on
// returned errors to distinguish "handled non-zero exit" from
// "unexpected error to display".
func (e *ExitError) ExitCode() int {
	return e.Code
}
