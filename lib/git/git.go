// Copyright 2026 The Quartz Authors
// SPDX-License-Identifier: Apache-2.0

// Package git provides typed access to the git CLI for the quartz
// command handlers. All commands target a specific repository
// directory via the -C flag, which every Runner method injects —
// there is no implicit current directory.
package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes git commands against a repository at a specific
// directory.
type Runner struct {
	dir string
}

// NewRunner returns a Runner targeting the given directory. The
// directory should be inside a working tree; use [Detect] first for
// admission control.
func NewRunner(dir string) *Runner {
	return &Runner{dir: dir}
}

// Dir returns the repository directory.
func (r *Runner) Dir() string {
	return r.dir
}

// Run executes a git command targeting this repository and returns
// stdout. Stderr is captured separately and included in error
// messages on failure.
func (r *Runner) Run(ctx context.Context, args ...string) (string, error) {
	fullArgs := append([]string{"-C", r.dir}, args...)
	var stdout, stderr bytes.Buffer
	command := exec.CommandContext(ctx, "git", fullArgs...)
	command.Stdout = &stdout
	command.Stderr = &stderr

	if err := command.Run(); err != nil {
		return "", fmt.Errorf("git %s in %s: %w (stderr: %s)",
			strings.Join(args, " "), r.dir, err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}

// CurrentBranch returns the checked-out branch name.
func (r *Runner) CurrentBranch(ctx context.Context) (string, error) {
	out, err := r.Run(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// CreateBranch creates and checks out a branch.
func (r *Runner) CreateBranch(ctx context.Context, name string) error {
	_, err := r.Run(ctx, "checkout", "-b", name)
	return err
}

// DeleteBranch deletes a local branch. force uses -D instead of -d.
func (r *Runner) DeleteBranch(ctx context.Context, name string, force bool) error {
	flag := "-d"
	if force {
		flag = "-D"
	}
	_, err := r.Run(ctx, "branch", flag, name)
	return err
}

// Branches lists local branch names, sorted by refname.
func (r *Runner) Branches(ctx context.Context) ([]string, error) {
	out, err := r.Run(ctx, "branch", "--format=%(refname:short)")
	if err != nil {
		return nil, err
	}
	var branches []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			branches = append(branches, line)
		}
	}
	return branches, nil
}

// StagedDiff returns the diff of the index against HEAD.
func (r *Runner) StagedDiff(ctx context.Context) (string, error) {
	return r.Run(ctx, "diff", "--cached")
}

// Commit records the staged changes with the given message.
func (r *Runner) Commit(ctx context.Context, message string) error {
	_, err := r.Run(ctx, "commit", "-m", message)
	return err
}

// Log returns one-line commit subjects since the given ref, newest
// first. An empty ref lists the full history.
func (r *Runner) Log(ctx context.Context, sinceRef string) ([]string, error) {
	args := []string{"log", "--pretty=format:%s"}
	if sinceRef != "" {
		args = append(args, sinceRef+"..HEAD")
	}
	out, err := r.Run(ctx, args...)
	if err != nil {
		return nil, err
	}
	var subjects []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			subjects = append(subjects, line)
		}
	}
	return subjects, nil
}
