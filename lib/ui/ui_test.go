// Copyright 2026 The Quartz Authors
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestLogger_Streams(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := NewTestLogger(&out, &errOut)

	logger.Line("plain output")
	logger.Info("something happened")
	logger.Warn("careful")
	logger.Error("it broke")
	logger.Success("done")

	if got := out.String(); got != "plain output\n" {
		t.Errorf("stdout = %q, want only the Line output", got)
	}
	for _, want := range []string{"info: something happened", "warn: careful", "error: it broke", "ok: done"} {
		if !strings.Contains(errOut.String(), want) {
			t.Errorf("stderr missing %q:\n%s", want, errOut.String())
		}
	}
}

func TestLogger_DebugGatedByVerbose(t *testing.T) {
	var errOut bytes.Buffer
	quiet := &Logger{out: &bytes.Buffer{}, err: &errOut}
	quiet.Debug("hidden")
	if errOut.Len() != 0 {
		t.Errorf("stderr = %q, want debug suppressed", errOut.String())
	}

	verbose := NewTestLogger(&bytes.Buffer{}, &errOut)
	verbose.Debug("visible")
	if !strings.Contains(errOut.String(), "debug: visible") {
		t.Errorf("stderr = %q, want the debug line", errOut.String())
	}
}

func TestReadConfirmation(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"no\n", false},
		{"\n", false},
		{"whatever\n", false},
		{"", false}, // EOF declines
	}
	for _, tc := range cases {
		var out bytes.Buffer
		got, err := readConfirmation("continue? ", strings.NewReader(tc.input), &out)
		if err != nil {
			t.Errorf("readConfirmation(%q) = %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("readConfirmation(%q) = %v, want %v", tc.input, got, tc.want)
		}
		if !strings.Contains(out.String(), "continue?") {
			t.Errorf("prompt not written for input %q", tc.input)
		}
	}
}

func TestRenderBox(t *testing.T) {
	t.Run("frame is rectangular", func(t *testing.T) {
		box := RenderBox("config", "short\na much longer line here")
		lines := strings.Split(strings.TrimRight(box, "\n"), "\n")
		if len(lines) != 4 {
			t.Fatalf("box has %d lines, want 4:\n%s", len(lines), box)
		}
		width := ansi.StringWidth(lines[0])
		for i, line := range lines {
			if w := ansi.StringWidth(line); w != width {
				t.Errorf("line %d width = %d, want %d:\n%s", i, w, width, box)
			}
		}
	})

	t.Run("title embedded in the top border", func(t *testing.T) {
		box := RenderBox("config", "body")
		top, _, _ := strings.Cut(box, "\n")
		if !strings.Contains(top, "─ config ─") {
			t.Errorf("top border = %q, want the title embedded", top)
		}
	})

	t.Run("no title", func(t *testing.T) {
		box := RenderBox("", "body line")
		lines := strings.Split(strings.TrimRight(box, "\n"), "\n")
		if strings.ContainsAny(lines[0], "abcdefghijklmnopqrstuvwxyz") {
			t.Errorf("top border = %q, want no text", lines[0])
		}
		if ansi.StringWidth(lines[0]) != ansi.StringWidth(lines[1]) {
			t.Errorf("widths differ:\n%s", box)
		}
	})

	t.Run("wide title sets the width", func(t *testing.T) {
		box := RenderBox("a very long title indeed", "x")
		lines := strings.Split(strings.TrimRight(box, "\n"), "\n")
		width := ansi.StringWidth(lines[0])
		for i, line := range lines {
			if w := ansi.StringWidth(line); w != width {
				t.Errorf("line %d width = %d, want %d:\n%s", i, w, width, box)
			}
		}
	})

	t.Run("styled content measured without escapes", func(t *testing.T) {
		styled := "\x1b[1mbold\x1b[0m"
		box := RenderBox("", styled+"\nplain")
		lines := strings.Split(strings.TrimRight(box, "\n"), "\n")
		if ansi.StringWidth(lines[1]) != ansi.StringWidth(lines[2]) {
			t.Errorf("styled line distorted the frame:\n%s", box)
		}
	})
}
