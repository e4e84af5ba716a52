// Copyright 2026 The Quartz Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// Logger is the structured output collaborator the engine logs
// through. Implementations render to the terminal (lib/ui) or to a
// structured sink; no return value is ever relied upon.
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
	Success(format string, args ...any)
	Debug(format string, args ...any)

	// Line writes a plain output line with no level prefix or styling.
	Line(format string, args ...any)
}

// Translator is the key-to-display-string collaborator. Lookup with a
// missing key returns the key itself; it never fails.
type Translator interface {
	T(key string, vars map[string]string) string
}

// NewFallbackLogger creates a slog-backed [Logger] for non-interactive
// use. When stderr is a terminal it uses slog.TextHandler for
// human-readable output; when stderr is piped or redirected (CI,
// scripts) it uses slog.JSONHandler for machine-parseable output.
func NewFallbackLogger() Logger {
	var handler slog.Handler
	options := &slog.HandlerOptions{Level: slog.LevelDebug}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		handler = slog.NewTextHandler(os.Stderr, options)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, options)
	}
	return &slogLogger{inner: slog.New(handler)}
}

type slogLogger struct {
	inner *slog.Logger
}

func (l *slogLogger) Info(format string, args ...any) {
	l.inner.Info(fmt.Sprintf(format, args...))
}

func (l *slogLogger) Warn(format string, args ...any) {
	l.inner.Warn(fmt.Sprintf(format, args...))
}

func (l *slogLogger) Error(format string, args ...any) {
	l.inner.Error(fmt.Sprintf(format, args...))
}

func (l *slogLogger) Success(format string, args ...any) {
	l.inner.Info(fmt.Sprintf(format, args...), "status", "success")
}

func (l *slogLogger) Debug(format string, args ...any) {
	l.inner.Debug(fmt.Sprintf(format, args...))
}

func (l *slogLogger) Line(format string, args ...any) {
	fmt.Fprintf(os.Stdout, format+"\n", args...)
}
