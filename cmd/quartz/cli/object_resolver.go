// Copyright 2026 The Quartz Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// PreconditionFunc is a context precondition attached to an object,
// such as "must run inside a recognized repository". Hooks are
// extension points invoked by pipeline middleware before the handler
// runs, not by the resolver itself. A non-nil return aborts the
// invocation.
type PreconditionFunc func(exec *ExecutionContext) error

// ObjectResolver validates and extracts the object token, routes
// (verb, object) pairs to definitions, and holds the per-object
// precondition hooks.
type ObjectResolver struct {
	registry *Registry
	hooks    map[Object]PreconditionFunc
}

// NewObjectResolver returns a resolver backed by registry.
func NewObjectResolver(registry *Registry) *ObjectResolver {
	return &ObjectResolver{
		registry: registry,
		hooks:    make(map[Object]PreconditionFunc),
	}
}

// Validate checks a single object token. An empty token or a token
// outside the closed object set is an error; a valid object with no
// registered commands produces a warning.
func (r *ObjectResolver) Validate(token string) ValidationResult {
	result := OK()

	if token == "" {
		result.AddError("missing object")
		return result
	}
	if !IsValidObject(token) {
		result.AddError(fmt.Sprintf("unknown object %q: valid objects are %s",
			token, joinObjects(Objects())))
		return result
	}

	object := Object(token)
	if len(r.registry.FindByObject(object)) == 0 {
		result.AddWarning(fmt.Sprintf("object %q has no registered commands", object))
	}
	return result
}

// Parse consumes args[0] as the object under the given verb. On an
// unknown token it returns a single error embedding up to three
// suggestions and the objects valid for the verb. The returned slice
// holds the remaining tokens.
func (r *ObjectResolver) Parse(verb Verb, args []string) (Object, []string, ValidationResult) {
	if len(args) == 0 {
		result := OK()
		result.AddError(fmt.Sprintf("missing object: valid objects for %q are %s",
			verb, joinObjects(r.validObjectsFor(verb))))
		return "", nil, result
	}

	token := args[0]
	result := r.Validate(token)
	if !result.Valid {
		suggestions := suggest(token, objectStrings())
		failed := OK()
		failed.AddError(fmt.Sprintf("unknown object %q%s: valid objects for %q are %s",
			token, formatSuggestions(suggestions), verb, joinObjects(r.validObjectsFor(verb))))
		failed.Warnings = result.Warnings
		return "", args[1:], failed
	}
	return Object(token), args[1:], result
}

// Route returns the definition registered for (verb, object), or nil.
func (r *ObjectResolver) Route(verb Verb, object Object) *CommandDefinition {
	return r.registry.Get(verb, object)
}

// RelatedObjects returns the objects sharing at least one verb with
// the given object, excluding the object itself. Registration order of
// the sibling definitions decides the result order; duplicates are
// collapsed.
func (r *ObjectResolver) RelatedObjects(object Object) []Object {
	verbs := make(map[Verb]bool)
	for _, def := range r.registry.FindByObject(object) {
		verbs[def.Verb] = true
	}

	seen := make(map[Object]bool)
	var related []Object
	for _, def := range r.registry.List() {
		if def.Object == object || !verbs[def.Verb] || seen[def.Object] {
			continue
		}
		seen[def.Object] = true
		related = append(related, def.Object)
	}
	return related
}

// SetPrecondition attaches a context precondition hook to an object.
// The hook runs from the precondition middleware before any command
// targeting the object.
func (r *ObjectResolver) SetPrecondition(object Object, hook PreconditionFunc) {
	r.hooks[object] = hook
}

// Precondition returns the hook attached to object, or nil.
func (r *ObjectResolver) Precondition(object Object) PreconditionFunc {
	return r.hooks[object]
}

// validObjectsFor lists registered objects for a verb, falling back to
// the full object set when the verb has no commands yet.
func (r *ObjectResolver) validObjectsFor(verb Verb) []Object {
	var objects []Object
	for _, def := range r.registry.FindByVerb(verb) {
		objects = append(objects, def.Object)
	}
	if len(objects) == 0 {
		return Objects()
	}
	return objects
}

func objectStrings() []string {
	objects := Objects()
	tokens := make([]string, len(objects))
	for i, object := range objects {
		tokens[i] = string(object)
	}
	return tokens
}
