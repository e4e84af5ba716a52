// Copyright 2026 The Quartz Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "sync"

// DefaultCategory groups definitions registered without an explicit
// category.
const DefaultCategory = "general"

type registryKey struct {
	verb   Verb
	object Object
}

// Registry is the static command catalog, keyed by (verb, object).
// It is populated once at startup and read-mostly afterwards:
// Unregister and Clear exist for test isolation and must not run
// concurrently with dispatch. A single mutex keeps the primary map
// and all three indices consistent under parallel tests.
type Registry struct {
	mu sync.Mutex

	entries map[registryKey]*CommandDefinition

	// order preserves registration order for deterministic help
	// rendering.
	order []registryKey

	byVerb     map[Verb][]*CommandDefinition
	byObject   map[Object][]*CommandDefinition
	byCategory map[string][]*CommandDefinition
}

// NewRegistry returns an empty registry. Construct one per process (or
// per test) and pass it by reference into the parser, executor, and
// dispatcher.
func NewRegistry() *Registry {
	return &Registry{
		entries:    make(map[registryKey]*CommandDefinition),
		byVerb:     make(map[Verb][]*CommandDefinition),
		byObject:   make(map[Object][]*CommandDefinition),
		byCategory: make(map[string][]*CommandDefinition),
	}
}

// Register inserts a definition. A duplicate (verb, object) key is
// rejected with a conflict error and leaves the registry unchanged;
// it never overwrites.
func (r *Registry) Register(def *CommandDefinition) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := registryKey{verb: def.Verb, object: def.Object}
	if _, exists := r.entries[key]; exists {
		return ConflictErr("command %s %s is already registered", def.Verb, def.Object)
	}

	r.entries[key] = def
	r.order = append(r.order, key)
	r.byVerb[def.Verb] = append(r.byVerb[def.Verb], def)
	r.byObject[def.Object] = append(r.byObject[def.Object], def)
	category := def.Category
	if category == "" {
		category = DefaultCategory
	}
	r.byCategory[category] = append(r.byCategory[category], def)
	return nil
}

// Unregister removes a definition from the primary map and every
// index, pruning index buckets left empty. Absent keys are a no-op.
func (r *Registry) Unregister(verb Verb, object Object) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := registryKey{verb: verb, object: object}
	def, exists := r.entries[key]
	if !exists {
		return
	}

	delete(r.entries, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	r.byVerb[verb] = removeDefinition(r.byVerb[verb], def)
	if len(r.byVerb[verb]) == 0 {
		delete(r.byVerb, verb)
	}
	r.byObject[object] = removeDefinition(r.byObject[object], def)
	if len(r.byObject[object]) == 0 {
		delete(r.byObject, object)
	}
	category := def.Category
	if category == "" {
		category = DefaultCategory
	}
	r.byCategory[category] = removeDefinition(r.byCategory[category], def)
	if len(r.byCategory[category]) == 0 {
		delete(r.byCategory, category)
	}
}

// Clear removes every definition. Test isolation only.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = make(map[registryKey]*CommandDefinition)
	r.order = nil
	r.byVerb = make(map[Verb][]*CommandDefinition)
	r.byObject = make(map[Object][]*CommandDefinition)
	r.byCategory = make(map[string][]*CommandDefinition)
}

// Get returns the definition for (verb, object), or nil.
func (r *Registry) Get(verb Verb, object Object) *CommandDefinition {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.entries[registryKey{verb: verb, object: object}]
}

// FindByVerb returns every definition registered under verb, in
// registration order. Empty slice if none.
func (r *Registry) FindByVerb(verb Verb) []*CommandDefinition {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*CommandDefinition(nil), r.byVerb[verb]...)
}

// FindByObject returns every definition registered under object.
func (r *Registry) FindByObject(object Object) []*CommandDefinition {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*CommandDefinition(nil), r.byObject[object]...)
}

// FindByCategory returns every definition in category.
func (r *Registry) FindByCategory(category string) []*CommandDefinition {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*CommandDefinition(nil), r.byCategory[category]...)
}

// List returns every definition in registration order.
func (r *Registry) List() []*CommandDefinition {
	r.mu.Lock()
	defer r.mu.Unlock()

	defs := make([]*CommandDefinition, 0, len(r.order))
	for _, key := range r.order {
		defs = append(defs, r.entries[key])
	}
	return defs
}

// Stats summarizes catalog size per dimension.
type Stats struct {
	Total      int
	Verbs      int
	Objects    int
	Categories int
}

// GetStats returns total, verb, object, and category counts.
func (r *Registry) GetStats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()

	return Stats{
		Total:      len(r.entries),
		Verbs:      len(r.byVerb),
		Objects:    len(r.byObject),
		Categories: len(r.byCategory),
	}
}

func removeDefinition(defs []*CommandDefinition, def *CommandDefinition) []*CommandDefinition {
	for i, d := range defs {
		if d == def {
			return append(defs[:i], defs[i+1:]...)
		}
	}
	return defs
}
