// Copyright 2026 The Quartz Authors
// SPDX-License-Identifier: Apache-2.0

package cli

// Parser turns raw argv into a structured, validated [ParsedCommand].
// It composes the verb resolver, object resolver, and parameter
// parser, consulting the registry for the routed definition's
// parameter schema.
type Parser struct {
	registry *Registry
	verbs    *VerbResolver
	objects  *ObjectResolver
	params   *ParameterParser
}

// NewParser returns a parser over the given registry and resolvers.
// The object resolver is shared with the middleware chain, which
// invokes its precondition hooks.
func NewParser(registry *Registry, verbs *VerbResolver, objects *ObjectResolver) *Parser {
	return &Parser{
		registry: registry,
		verbs:    verbs,
		objects:  objects,
		params:   NewParameterParser(),
	}
}

// ParseOutput carries the parse result and its accumulated validation
// state. Command is nil when errors prevented resolution.
type ParseOutput struct {
	Command    *ParsedCommand
	Validation ValidationResult
}

// Parse resolves argv into a ParsedCommand. Errors accumulate in the
// returned validation result rather than aborting at the first
// problem where resolution can still proceed; verb and object
// resolution failures stop the parse since nothing downstream can be
// routed.
func (p *Parser) Parse(args []string) ParseOutput {
	output := ParseOutput{Validation: OK()}

	verb, rest, verbResult := p.verbs.Parse(args)
	output.Validation.Merge(verbResult)
	if !verbResult.Valid {
		return output
	}

	var object Object
	if verb.IsObjectless() {
		// Object-less verbs ("help", "version") route to the
		// canonical object without consuming a token.
		object = CanonicalObject
	} else {
		var objectResult ValidationResult
		object, rest, objectResult = p.objects.Parse(verb, rest)
		output.Validation.Merge(objectResult)
		if !objectResult.Valid {
			return output
		}
	}

	output.Validation.Merge(p.verbs.ValidateCombination(verb, object))
	def := p.registry.Get(verb, object)
	if def == nil {
		return output
	}

	parameters := p.params.Parse(def.Parameters, rest)
	output.Validation.Merge(parameters.Validation)

	output.Command = &ParsedCommand{
		Raw:        args,
		Verb:       verb,
		Object:     object,
		Parameters: parameters.Parameters,
		Args:       parameters.Remaining,
	}
	return output
}
