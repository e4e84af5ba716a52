// Copyright 2026 The Quartz Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"time"
)

// NextFunc is a middleware's continuation. Invoking it runs everything
// downstream, ending in the terminal handler. Returning without
// invoking it short-circuits the chain: downstream middleware and the
// handler never run, no error is raised, and the overall result is
// still a success.
type NextFunc func(ctx context.Context) error

// Middleware is one composable pipeline stage wrapping the terminal
// handler. A stage may inspect or modify the execution context before
// calling next, act on the error next returns, or decline to call next
// at all.
type Middleware func(ctx context.Context, exec *ExecutionContext, next NextFunc) error

// Executor runs an ordered middleware chain around the terminal
// handler invocation. Registration order is invocation order,
// outermost first. The chain is strictly sequential: each stage's full
// downstream chain completes before control returns to it.
type Executor struct {
	middleware []Middleware
}

// NewExecutor returns an executor with an empty chain.
func NewExecutor() *Executor {
	return &Executor{}
}

// Use appends a middleware to the chain.
func (e *Executor) Use(m Middleware) {
	e.middleware = append(e.middleware, m)
}

// Execute merges command into the execution context, composes the
// chain once via a right-to-left fold, and runs it. Errors from any
// stage or the handler are captured in the returned result, never
// propagated. A short-circuit (a stage declining its continuation)
// yields a successful result with Skipped set.
func (e *Executor) Execute(ctx context.Context, def *CommandDefinition, command *ParsedCommand, exec *ExecutionContext) ExecutionResult {
	start := time.Now()
	exec.Command = command

	handlerRan := false
	chain := NextFunc(func(ctx context.Context) error {
		if def.Deprecated && exec.Logger != nil {
			message := string(def.Verb) + " " + string(def.Object) + " is deprecated"
			if def.DeprecationMessage != "" {
				message += ": " + def.DeprecationMessage
			}
			exec.Logger.Warn("%s", message)
		}
		handlerRan = true
		if def.Handler == nil {
			return ExecutionErr("command %s %s has no handler", def.Verb, def.Object)
		}
		return def.Handler(ctx, exec)
	})

	for i := len(e.middleware) - 1; i >= 0; i-- {
		stage := e.middleware[i]
		inner := chain
		chain = func(ctx context.Context) error {
			return stage(ctx, exec, inner)
		}
	}

	err := chain(ctx)
	duration := time.Since(start)

	if err != nil {
		return ExecutionResult{Success: false, Err: err, Duration: duration}
	}
	return ExecutionResult{Success: true, Skipped: !handlerRan, Duration: duration}
}
