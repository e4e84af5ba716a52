// Copyright 2026 The Quartz Authors
// SPDX-License-Identifier: Apache-2.0

package cli

// Object is a resource token from the closed set of resources a verb
// can act on.
type Object string

const (
	ObjectProject   Object = "project"
	ObjectConfig    Object = "config"
	ObjectProfile   Object = "profile"
	ObjectBranch    Object = "branch"
	ObjectCommit    Object = "commit"
	ObjectPR        Object = "pr"
	ObjectReview    Object = "review"
	ObjectChangelog Object = "changelog"
)

// Objects lists every valid object in display order.
func Objects() []Object {
	return []Object{
		ObjectProject, ObjectConfig, ObjectProfile, ObjectBranch,
		ObjectCommit, ObjectPR, ObjectReview, ObjectChangelog,
	}
}

// IsValidObject reports whether token is a member of the closed object set.
func IsValidObject(token string) bool {
	for _, object := range Objects() {
		if string(object) == token {
			return true
		}
	}
	return false
}
