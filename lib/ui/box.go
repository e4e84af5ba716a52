// Copyright 2026 The Quartz Authors
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// RenderBox draws a bordered box around body with an optional title
// embedded in the top border. Line widths are measured with ANSI
// escapes stripped, so styled content does not distort the frame.
func RenderBox(title, body string) string {
	lines := strings.Split(strings.TrimRight(body, "\n"), "\n")

	width := ansi.StringWidth(title) + 1
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > width {
			width = w
		}
	}
	// Interior is width+2: one space of padding each side of content.
	interior := width + 2

	var b strings.Builder
	b.WriteString("┌")
	if title != "" {
		titleWidth := ansi.StringWidth(title)
		b.WriteString("─ " + title + " ")
		b.WriteString(strings.Repeat("─", interior-titleWidth-3))
	} else {
		b.WriteString(strings.Repeat("─", interior))
	}
	b.WriteString("┐\n")

	for _, line := range lines {
		padding := width - ansi.StringWidth(line)
		b.WriteString("│ " + line + strings.Repeat(" ", padding) + " │\n")
	}

	b.WriteString("└" + strings.Repeat("─", interior) + "┘\n")
	return b.String()
}
