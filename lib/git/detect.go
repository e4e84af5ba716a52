// Copyright 2026 The Quartz Authors
// SPDX-License-Identifier: Apache-2.0

package git

import (
	gogit "github.com/go-git/go-git/v5"
)

// Detect reports whether dir is inside a recognized git repository,
// walking parent directories the way git itself does. On success it
// returns the repository's working tree root. This is the probe the
// repository-precondition middleware consumes; it never shells out,
// so admission control works even when the git binary is missing
// from PATH.
func Detect(dir string) (root string, ok bool) {
	repository, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return "", false
	}

	worktree, err := repository.Worktree()
	if err != nil {
		// Bare repository: recognized, but it has no working tree to
		// report as root.
		return dir, true
	}
	return worktree.Filesystem.Root(), true
}
