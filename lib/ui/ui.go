// Copyright 2026 The Quartz Authors
// SPDX-License-Identifier: Apache-2.0

// Package ui provides terminal output for the quartz CLI: the leveled
// logger the routing engine logs through, the y/N confirmation prompt
// consumed by the destructive-command middleware, and bordered box
// rendering for help output.
//
// Styling degrades with the terminal: a full color profile gets
// lipgloss styles, a dumb terminal or redirected stream gets plain
// text. The --no-color flag forces plain output.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

var (
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	debugStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Logger renders leveled output to the terminal. It implements the
// routing engine's logger contract: Info, Warn, Error, Success,
// Debug, and Line, all printf-style.
type Logger struct {
	out     io.Writer
	err     io.Writer
	color   bool
	verbose bool
}

// NewLogger creates a terminal logger. Color is enabled only when the
// caller allows it and stderr is a terminal with a color profile.
// Debug output is suppressed unless verbose is set.
func NewLogger(color, verbose bool) *Logger {
	enabled := color &&
		term.IsTerminal(int(os.Stderr.Fd())) &&
		termenv.DefaultOutput().Profile != termenv.Ascii
	return &Logger{
		out:     os.Stdout,
		err:     os.Stderr,
		color:   enabled,
		verbose: verbose,
	}
}

// NewTestLogger creates a logger writing plain text to the given
// writers, for tests.
func NewTestLogger(out, err io.Writer) *Logger {
	return &Logger{out: out, err: err, verbose: true}
}

func (l *Logger) Info(format string, args ...any) {
	l.write(l.err, infoStyle, "info", format, args...)
}

func (l *Logger) Warn(format string, args ...any) {
	l.write(l.err, warnStyle, "warn", format, args...)
}

func (l *Logger) Error(format string, args ...any) {
	l.write(l.err, errorStyle, "error", format, args...)
}

func (l *Logger) Success(format string, args ...any) {
	l.write(l.err, successStyle, "ok", format, args...)
}

func (l *Logger) Debug(format string, args ...any) {
	if !l.verbose {
		return
	}
	l.write(l.err, debugStyle, "debug", format, args...)
}

// Line writes a plain output line to stdout with no prefix or
// styling. Command output goes through Line; diagnostics go through
// the leveled methods.
func (l *Logger) Line(format string, args ...any) {
	fmt.Fprintf(l.out, format+"\n", args...)
}

func (l *Logger) write(w io.Writer, style lipgloss.Style, level, format string, args ...any) {
	prefix := level + ":"
	if l.color {
		prefix = style.Render(prefix)
	}
	fmt.Fprintf(w, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}
