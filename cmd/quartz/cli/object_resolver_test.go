// Copyright 2026 The Quartz Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"strings"
	"testing"
)

func TestObjectResolver_ParseEmbedsSuggestions(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(testDefinition(VerbCreate, ObjectBranch)); err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	resolver := NewObjectResolver(registry)

	_, _, result := resolver.Parse(VerbCreate, []string{"brnch"})
	if result.Valid {
		t.Fatal("Parse() accepted an unknown object")
	}
	if len(result.Errors) != 1 {
		t.Fatalf("Errors = %v, want a single combined error", result.Errors)
	}
	// The error enumerates the verb's valid objects and suggests the
	// close match.
	if !strings.Contains(result.Errors[0], "branch") {
		t.Errorf("error %q does not mention %q", result.Errors[0], "branch")
	}
	if !strings.Contains(result.Errors[0], "did you mean") {
		t.Errorf("error %q has no suggestion clause", result.Errors[0])
	}
}

func TestObjectResolver_MissingObject(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(testDefinition(VerbCreate, ObjectBranch)); err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	resolver := NewObjectResolver(registry)

	_, _, result := resolver.Parse(VerbCreate, nil)
	if result.Valid {
		t.Fatal("Parse() accepted a missing object token")
	}
	if !strings.Contains(result.Errors[0], "branch") {
		t.Errorf("error %q does not list valid objects for the verb", result.Errors[0])
	}
}

func TestObjectResolver_Route(t *testing.T) {
	registry := NewRegistry()
	def := testDefinition(VerbCreate, ObjectBranch)
	if err := registry.Register(def); err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	resolver := NewObjectResolver(registry)

	if got := resolver.Route(VerbCreate, ObjectBranch); got != def {
		t.Errorf("Route() = %v, want the registered definition", got)
	}
	if got := resolver.Route(VerbDelete, ObjectBranch); got != nil {
		t.Errorf("Route() = %v, want nil for an unregistered pair", got)
	}
}

func TestObjectResolver_RelatedObjects(t *testing.T) {
	registry := NewRegistry()
	pairs := []struct {
		verb   Verb
		object Object
	}{
		{VerbCreate, ObjectBranch},
		{VerbCreate, ObjectCommit},
		{VerbList, ObjectBranch},
		{VerbList, ObjectProfile},
		{VerbShow, ObjectConfig},
	}
	for _, pair := range pairs {
		if err := registry.Register(testDefinition(pair.verb, pair.object)); err != nil {
			t.Fatalf("Register() error: %v", err)
		}
	}
	resolver := NewObjectResolver(registry)

	// branch shares "create" with commit and "list" with profile;
	// config shares nothing.
	related := resolver.RelatedObjects(ObjectBranch)
	if len(related) != 2 || related[0] != ObjectCommit || related[1] != ObjectProfile {
		t.Errorf("RelatedObjects(branch) = %v, want [commit profile]", related)
	}
	if related := resolver.RelatedObjects(ObjectConfig); len(related) != 0 {
		t.Errorf("RelatedObjects(config) = %v, want empty", related)
	}
}

func TestObjectResolver_PreconditionHooks(t *testing.T) {
	resolver := NewObjectResolver(NewRegistry())

	wantErr := errors.New("not inside a repository")
	resolver.SetPrecondition(ObjectBranch, func(exec *ExecutionContext) error {
		return wantErr
	})

	hook := resolver.Precondition(ObjectBranch)
	if hook == nil {
		t.Fatal("Precondition() = nil for a registered hook")
	}
	if err := hook(nil); !errors.Is(err, wantErr) {
		t.Errorf("hook error = %v, want %v", err, wantErr)
	}
	if resolver.Precondition(ObjectConfig) != nil {
		t.Error("Precondition() returned a hook for an object without one")
	}
}
