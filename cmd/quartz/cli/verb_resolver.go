// Copyright 2026 The Quartz Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"strings"
)

// VerbResolver validates and extracts the verb token, consulting the
// registry for per-verb warnings and verb-object combination checks.
type VerbResolver struct {
	registry *Registry
}

// NewVerbResolver returns a resolver backed by registry.
func NewVerbResolver(registry *Registry) *VerbResolver {
	return &VerbResolver{registry: registry}
}

// Validate checks a single verb token. An empty token or a token
// outside the closed verb set is an error; a valid verb with zero
// registered commands, or whose registered commands are all
// deprecated, produces a warning.
func (r *VerbResolver) Validate(token string) ValidationResult {
	result := OK()

	if token == "" {
		result.AddError("missing verb")
		return result
	}
	if !IsValidVerb(token) {
		result.AddError(fmt.Sprintf("unknown verb %q: valid verbs are %s",
			token, joinVerbs(Verbs())))
		return result
	}

	verb := Verb(token)
	defs := r.registry.FindByVerb(verb)
	if len(defs) == 0 {
		result.AddWarning(fmt.Sprintf("verb %q has no registered commands", verb))
		return result
	}

	deprecated := 0
	for _, def := range defs {
		if def.Deprecated {
			deprecated++
		}
	}
	if deprecated == len(defs) {
		result.AddWarning(fmt.Sprintf("every command under verb %q is deprecated", verb))
	}
	return result
}

// Parse consumes args[0] as the verb. On validation failure it returns
// a result whose single error embeds up to three suggestions computed
// from the valid verb set. The returned slice holds the remaining
// tokens.
func (r *VerbResolver) Parse(args []string) (Verb, []string, ValidationResult) {
	if len(args) == 0 {
		result := OK()
		result.AddError("missing verb")
		return "", nil, result
	}

	token := args[0]
	result := r.Validate(token)
	if !result.Valid {
		suggestions := suggest(token, verbStrings())
		failed := OK()
		failed.AddError(fmt.Sprintf("unknown verb %q%s: valid verbs are %s",
			token, formatSuggestions(suggestions), joinVerbs(Verbs())))
		failed.Warnings = result.Warnings
		return "", args[1:], failed
	}
	return Verb(token), args[1:], result
}

// PossibleObjects lists the objects with a registered command under
// verb, in registration order. Used by help and autocomplete.
func (r *VerbResolver) PossibleObjects(verb Verb) []Object {
	var objects []Object
	for _, def := range r.registry.FindByVerb(verb) {
		objects = append(objects, def.Object)
	}
	return objects
}

// ValidateCombination checks that (verb, object) names a registered
// command. A missing combination is an error listing the objects valid
// for the verb; an existing but deprecated combination produces a
// warning, never an error.
func (r *VerbResolver) ValidateCombination(verb Verb, object Object) ValidationResult {
	result := OK()

	def := r.registry.Get(verb, object)
	if def == nil {
		objects := r.PossibleObjects(verb)
		if len(objects) == 0 {
			result.AddError(fmt.Sprintf("verb %q has no registered commands", verb))
			return result
		}
		result.AddError(fmt.Sprintf("cannot %s %s: valid objects for %q are %s",
			verb, object, verb, joinObjects(objects)))
		return result
	}

	if def.Deprecated {
		message := fmt.Sprintf("%s %s is deprecated", verb, object)
		if def.DeprecationMessage != "" {
			message += ": " + def.DeprecationMessage
		}
		result.AddWarning(message)
	}
	return result
}

func verbStrings() []string {
	verbs := Verbs()
	tokens := make([]string, len(verbs))
	for i, verb := range verbs {
		tokens[i] = string(verb)
	}
	return tokens
}

func joinVerbs(verbs []Verb) string {
	tokens := make([]string, len(verbs))
	for i, verb := range verbs {
		tokens[i] = string(verb)
	}
	return strings.Join(tokens, ", ")
}

func joinObjects(objects []Object) string {
	tokens := make([]string, len(objects))
	for i, object := range objects {
		tokens[i] = string(object)
	}
	return strings.Join(tokens, ", ")
}
