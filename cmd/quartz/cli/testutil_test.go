// Copyright 2026 The Quartz Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/QuartzKazoku/quartz-cli/lib/config"
)

// recordingLogger captures log calls for assertions.
type recordingLogger struct {
	entries []string
}

func (l *recordingLogger) record(level, format string, args ...any) {
	l.entries = append(l.entries, level+": "+fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Info(format string, args ...any)    { l.record("info", format, args...) }
func (l *recordingLogger) Warn(format string, args ...any)    { l.record("warn", format, args...) }
func (l *recordingLogger) Error(format string, args ...any)   { l.record("error", format, args...) }
func (l *recordingLogger) Success(format string, args ...any) { l.record("ok", format, args...) }
func (l *recordingLogger) Debug(format string, args ...any)   { l.record("debug", format, args...) }
func (l *recordingLogger) Line(format string, args ...any)    { l.record("line", format, args...) }

func (l *recordingLogger) contains(fragment string) bool {
	for _, entry := range l.entries {
		if strings.Contains(entry, fragment) {
			return true
		}
	}
	return false
}

// keyTranslator returns the key itself, with vars appended for
// visibility in assertions.
type keyTranslator struct{}

func (keyTranslator) T(key string, vars map[string]string) string {
	if len(vars) == 0 {
		return key
	}
	var parts []string
	for name, value := range vars {
		parts = append(parts, name+"="+value)
	}
	return key + " " + strings.Join(parts, " ")
}

// testContext builds a fully-populated execution context.
func testContext(logger *recordingLogger) *ExecutionContext {
	return &ExecutionContext{
		Config:     config.Default(),
		Logger:     logger,
		Translator: keyTranslator{},
		WorkDir:    "/tmp",
		Env:        map[string]string{},
	}
}

// noopHandler succeeds without doing anything.
func noopHandler(ctx context.Context, exec *ExecutionContext) error {
	return nil
}

// testDefinition builds a minimal definition for registry and
// dispatch tests.
func testDefinition(verb Verb, object Object) *CommandDefinition {
	return &CommandDefinition{
		Verb:        verb,
		Object:      object,
		Description: fmt.Sprintf("%s %s", verb, object),
		Handler:     noopHandler,
	}
}
