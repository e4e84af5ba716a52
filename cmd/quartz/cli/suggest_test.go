// Copyright 2026 The Quartz Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"slices"
	"testing"
)

func TestSuggest(t *testing.T) {
	verbs := verbStrings()

	tests := []struct {
		name       string
		input      string
		candidates []string
		want       []string
	}{
		{
			name:       "transposition matches by position ratio",
			input:      "delte",
			candidates: verbs,
			want:       []string{"delete"},
		},
		{
			name:       "substring containment",
			input:      "creat",
			candidates: verbs,
			want:       []string{"create"},
		},
		{
			name:       "containment works in both directions",
			input:      "generates",
			candidates: verbs,
			want:       []string{"generate"},
		},
		{
			name:       "case insensitive",
			input:      "LIST",
			candidates: verbs,
			want:       []string{"list"},
		},
		{
			name:       "nothing close",
			input:      "xyzzy",
			candidates: verbs,
			want:       nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := suggest(test.input, test.candidates)
			if !slices.Equal(got, test.want) {
				t.Errorf("suggest(%q) = %v, want %v", test.input, got, test.want)
			}
		})
	}
}

func TestSuggest_CapsAtThree(t *testing.T) {
	candidates := []string{"branch-a", "branch-b", "branch-c", "branch-d", "branch-e"}
	got := suggest("branch", candidates)
	if len(got) != maxSuggestions {
		t.Errorf("suggest() returned %d entries, want at most %d", len(got), maxSuggestions)
	}
}

func TestMatchRatio(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"delte", "delete", 0.5},
		{"same", "same", 1.0},
		{"", "abc", 0},
		{"abc", "xyz", 0},
	}
	for _, test := range tests {
		if got := matchRatio(test.a, test.b); got != test.want {
			t.Errorf("matchRatio(%q, %q) = %v, want %v", test.a, test.b, got, test.want)
		}
	}
}
