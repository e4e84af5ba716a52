// Copyright 2026 The Quartz Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"time"

	"github.com/QuartzKazoku/quartz-cli/lib/config"
)

// ParameterType tags the value type of a command parameter.
type ParameterType string

const (
	TypeString  ParameterType = "string"
	TypeNumber  ParameterType = "number"
	TypeBoolean ParameterType = "boolean"
	TypeArray   ParameterType = "array"
	TypeObject  ParameterType = "object"
)

// ParameterDefinition describes one named parameter of a command.
type ParameterDefinition struct {
	// Name is the long parameter name, matched as "--name=value" or
	// "--name" for booleans.
	Name string

	// Type tags the expected value type. Values are coerced during
	// parsing; coercion failure is a validation error.
	Type ParameterType

	// Required marks parameters that must be present after parsing.
	// A required parameter with no default and no value fails the
	// parse; it is never silently absent.
	Required bool

	// Default is applied when the parameter is absent. nil means no
	// default.
	Default any

	// Description is shown in help output.
	Description string

	// Aliases are single-character shorthands matched as "-x".
	Aliases []string

	// Validate, when set, is invoked with the coerced value. A non-nil
	// return is folded into the parse's error list, naming the
	// parameter.
	Validate func(value any) error
}

// Handler is the terminal function of a command. It runs after every
// middleware has passed control down the chain.
type Handler func(ctx context.Context, exec *ExecutionContext) error

// CommandDefinition binds a (verb, object) pair to its parameter
// schema, handler, examples, and metadata. Definitions are immutable
// once registered.
type CommandDefinition struct {
	Verb        Verb
	Object      Object
	Description string

	// Parameters is the ordered parameter schema, rendered in help in
	// this order.
	Parameters []ParameterDefinition

	// Examples are literal command lines shown in help output. Each
	// example must re-parse to this definition's verb and object.
	Examples []string

	Handler Handler

	// Category groups commands in help output. Empty means "general".
	Category string

	// Deprecated marks commands that still run but warn on use.
	// DeprecationMessage names the replacement.
	Deprecated         bool
	DeprecationMessage string
}

// ParsedCommand is the validated, structured result of tokenizing one
// command line.
type ParsedCommand struct {
	// Raw preserves the original argv tokens.
	Raw []string

	Verb   Verb
	Object Object

	// Parameters maps parameter names to their coerced values.
	Parameters map[string]any

	// Args holds unmatched positional tokens in input order.
	Args []string
}

// ExecutionContext carries per-invocation state and the injected
// collaborator capabilities through the middleware chain. A fresh
// context is created for every invocation and discarded after
// dispatch.
type ExecutionContext struct {
	Command    *ParsedCommand
	Config     *config.Config
	Logger     Logger
	Translator Translator

	// WorkDir is the directory the command was invoked from.
	WorkDir string

	// Env is a snapshot of the process environment.
	Env map[string]string
}

// ValidationResult accumulates parse and validation problems. Errors
// block continuation; warnings are logged and otherwise ignored.
type ValidationResult struct {
	Valid    bool
	Errors   []string
	Warnings []string
}

// OK returns a valid, empty result.
func OK() ValidationResult {
	return ValidationResult{Valid: true}
}

// AddError appends an error and marks the result invalid.
func (r *ValidationResult) AddError(message string) {
	r.Errors = append(r.Errors, message)
	r.Valid = false
}

// AddWarning appends a warning. Warnings never invalidate the result.
func (r *ValidationResult) AddWarning(message string) {
	r.Warnings = append(r.Warnings, message)
}

// Merge folds other into r: errors invalidate, warnings accumulate.
func (r *ValidationResult) Merge(other ValidationResult) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	if !other.Valid {
		r.Valid = false
	}
}

// ExecutionResult is the non-throwing outcome of one trip through the
// executor. Handler errors are captured here rather than propagated;
// [Dispatcher.Dispatch] converts a failed result back into an error at
// the boundary.
type ExecutionResult struct {
	Success bool

	// Skipped is true when a middleware declined its continuation
	// (confirmation declined, dry-run): nothing failed, and the
	// handler never ran.
	Skipped bool

	Err error

	// Duration is measured with the monotonic clock from chain entry
	// to completion.
	Duration time.Duration
}
