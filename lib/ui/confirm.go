// Copyright 2026 The Quartz Authors
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Confirm writes a prompt to stderr and reads a single y/N line from
// stdin. Anything other than "y" or "yes" (case-insensitive) is a
// decline, including EOF. When stdin is not a terminal the prompt
// declines immediately: a script that wants to pass a confirmation
// gate must say --force explicitly.
func Confirm(prompt string) (bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintf(os.Stderr, "%s(not a terminal, assuming no)\n", prompt)
		return false, nil
	}
	return readConfirmation(prompt, os.Stdin, os.Stderr)
}

// readConfirmation is the testable core of [Confirm].
func readConfirmation(prompt string, in io.Reader, out io.Writer) (bool, error) {
	fmt.Fprint(out, prompt)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		// EOF with no input is a decline, not a failure.
		return false, nil
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
