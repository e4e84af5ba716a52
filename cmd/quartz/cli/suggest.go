// Copyright 2026 The Quartz Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "strings"

// maxSuggestions caps the number of "did you mean" entries in an
// unknown-token error.
const maxSuggestions = 3

// matchThreshold is the minimum positional character-match ratio for a
// candidate to be suggested. The ratio is matched positions divided by
// the longer string's length; 0.5 catches single transpositions and
// dropped characters ("delte" vs "delete" scores exactly 0.5).
const matchThreshold = 0.5

// suggest returns up to [maxSuggestions] candidates close to the
// unknown input, in candidate order. Two heuristics qualify a
// candidate: case-insensitive substring containment in either
// direction, or a positional character-match ratio of at least
// [matchThreshold].
//
// This is deliberately not edit distance: the two rules are cheap and
// behave well on the short token vocabulary involved, and their exact
// output is pinned by tests.
func suggest(unknown string, candidates []string) []string {
	lowered := strings.ToLower(unknown)

	var suggestions []string
	for _, candidate := range candidates {
		if len(suggestions) == maxSuggestions {
			break
		}
		candidateLowered := strings.ToLower(candidate)

		if strings.Contains(candidateLowered, lowered) || strings.Contains(lowered, candidateLowered) {
			suggestions = append(suggestions, candidate)
			continue
		}
		if matchRatio(lowered, candidateLowered) >= matchThreshold {
			suggestions = append(suggestions, candidate)
		}
	}
	return suggestions
}

// matchRatio returns the fraction of positions at which a and b hold
// the same character, over the longer string's length. Positions past
// the shorter string's end count as mismatches.
func matchRatio(a, b string) float64 {
	longer := len(a)
	if len(b) > longer {
		longer = len(b)
	}
	if longer == 0 {
		return 0
	}

	shorter := len(a)
	if len(b) < shorter {
		shorter = len(b)
	}

	matches := 0
	for i := range shorter {
		if a[i] == b[i] {
			matches++
		}
	}
	return float64(matches) / float64(longer)
}

// formatSuggestions renders suggestions as a "did you mean" clause, or
// an empty string when there is nothing to suggest.
func formatSuggestions(suggestions []string) string {
	if len(suggestions) == 0 {
		return ""
	}
	return " (did you mean: " + strings.Join(suggestions, ", ") + "?)"
}
