// Copyright 2026 The Quartz Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"errors"
	"slices"
	"testing"
)

func TestExecutor_OrderAndHandler(t *testing.T) {
	executor := NewExecutor()

	var trace []string
	for _, name := range []string{"outer", "middle", "inner"} {
		executor.Use(func(ctx context.Context, exec *ExecutionContext, next NextFunc) error {
			trace = append(trace, name+" before")
			err := next(ctx)
			trace = append(trace, name+" after")
			return err
		})
	}

	def := testDefinition(VerbCreate, ObjectBranch)
	def.Handler = func(ctx context.Context, exec *ExecutionContext) error {
		trace = append(trace, "handler")
		return nil
	}

	logger := &recordingLogger{}
	result := executor.Execute(context.Background(), def, &ParsedCommand{Verb: def.Verb, Object: def.Object}, testContext(logger))
	if !result.Success || result.Skipped {
		t.Fatalf("Execute() = %+v, want a non-skipped success", result)
	}
	want := []string{
		"outer before", "middle before", "inner before",
		"handler",
		"inner after", "middle after", "outer after",
	}
	if !slices.Equal(trace, want) {
		t.Errorf("trace = %v, want %v", trace, want)
	}
}

func TestExecutor_ShortCircuit(t *testing.T) {
	executor := NewExecutor()

	executor.Use(func(ctx context.Context, exec *ExecutionContext, next NextFunc) error {
		// Declining the continuation must not be an error.
		return nil
	})

	downstreamRan := false
	executor.Use(func(ctx context.Context, exec *ExecutionContext, next NextFunc) error {
		downstreamRan = true
		return next(ctx)
	})

	def := testDefinition(VerbDelete, ObjectBranch)
	handlerRan := false
	def.Handler = func(ctx context.Context, exec *ExecutionContext) error {
		handlerRan = true
		return nil
	}

	result := executor.Execute(context.Background(), def, &ParsedCommand{Verb: def.Verb, Object: def.Object}, testContext(&recordingLogger{}))
	if !result.Success {
		t.Fatalf("Execute() = %+v, want success", result)
	}
	if !result.Skipped {
		t.Error("Skipped = false, want true for a short-circuited chain")
	}
	if downstreamRan || handlerRan {
		t.Errorf("downstream ran = %v, handler ran = %v, want neither", downstreamRan, handlerRan)
	}
}

func TestExecutor_ErrorsCaptured(t *testing.T) {
	boom := errors.New("boom")

	t.Run("from the handler", func(t *testing.T) {
		executor := NewExecutor()
		def := testDefinition(VerbCreate, ObjectCommit)
		def.Handler = func(ctx context.Context, exec *ExecutionContext) error {
			return boom
		}

		result := executor.Execute(context.Background(), def, &ParsedCommand{}, testContext(&recordingLogger{}))
		if result.Success {
			t.Fatal("Execute() reported success on a failed handler")
		}
		if !errors.Is(result.Err, boom) {
			t.Errorf("Err = %v, want the handler error", result.Err)
		}
	})

	t.Run("from a stage", func(t *testing.T) {
		executor := NewExecutor()
		executor.Use(func(ctx context.Context, exec *ExecutionContext, next NextFunc) error {
			return boom
		})

		result := executor.Execute(context.Background(), testDefinition(VerbCreate, ObjectCommit), &ParsedCommand{}, testContext(&recordingLogger{}))
		if result.Success || !errors.Is(result.Err, boom) {
			t.Fatalf("Execute() = %+v, want the stage error captured", result)
		}
	})
}

func TestExecutor_NilHandler(t *testing.T) {
	executor := NewExecutor()
	def := testDefinition(VerbCreate, ObjectBranch)
	def.Handler = nil

	result := executor.Execute(context.Background(), def, &ParsedCommand{}, testContext(&recordingLogger{}))
	if result.Success {
		t.Fatal("Execute() reported success for a handlerless definition")
	}
	var commandErr *CommandError
	if !errors.As(result.Err, &commandErr) || commandErr.Category != CategoryExecution {
		t.Errorf("Err = %v, want an execution-category error", result.Err)
	}
}

func TestExecutor_DeprecationWarning(t *testing.T) {
	executor := NewExecutor()
	def := testDefinition(VerbShow, ObjectBranch)
	def.Deprecated = true
	def.DeprecationMessage = "use 'quartz list branch' instead"

	logger := &recordingLogger{}
	result := executor.Execute(context.Background(), def, &ParsedCommand{Verb: def.Verb, Object: def.Object}, testContext(logger))
	if !result.Success {
		t.Fatalf("Execute() = %+v, want success", result)
	}
	if !logger.contains("deprecated") || !logger.contains("list branch") {
		t.Errorf("log = %v, want the deprecation warning with its message", logger.entries)
	}
}

func TestExecutor_CommandAttachedToContext(t *testing.T) {
	executor := NewExecutor()
	def := testDefinition(VerbCreate, ObjectBranch)
	var seen *ParsedCommand
	def.Handler = func(ctx context.Context, exec *ExecutionContext) error {
		seen = exec.Command
		return nil
	}

	command := &ParsedCommand{Verb: VerbCreate, Object: ObjectBranch}
	executor.Execute(context.Background(), def, command, testContext(&recordingLogger{}))
	if seen != command {
		t.Error("handler did not observe the parsed command on the execution context")
	}
}
