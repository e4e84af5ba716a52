// Copyright 2026 The Quartz Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"
)

// Dispatcher is the facade over parser, registry, and executor. It is
// what the process entry point talks to: parse-and-dispatch, help
// generation, and shell autocomplete.
type Dispatcher struct {
	registry *Registry
	parser   *Parser
	verbs    *VerbResolver
	executor *Executor
}

// NewDispatcher wires a dispatcher over the given registry, resolvers,
// and executor.
func NewDispatcher(registry *Registry, verbs *VerbResolver, objects *ObjectResolver, executor *Executor) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		parser:   NewParser(registry, verbs, objects),
		verbs:    verbs,
		executor: executor,
	}
}

// ParseAndDispatch parses argv, logs any accumulated warnings, joins
// any accumulated errors into a single error, and otherwise
// dispatches. This is the one call the process entry point makes.
func (d *Dispatcher) ParseAndDispatch(ctx context.Context, args []string, exec *ExecutionContext) error {
	output := d.parser.Parse(args)

	if exec.Logger != nil {
		for _, warning := range output.Validation.Warnings {
			exec.Logger.Warn("%s", warning)
		}
	}
	if !output.Validation.Valid {
		return ParseErr("%s", strings.Join(output.Validation.Errors, "; "))
	}
	return d.Dispatch(ctx, output.Command, exec)
}

// Dispatch looks up the parsed command's definition and runs it
// through the executor. Callers only ever see success-or-error: a
// non-success [ExecutionResult] is converted back into its error here,
// and a short-circuited run is a success.
func (d *Dispatcher) Dispatch(ctx context.Context, command *ParsedCommand, exec *ExecutionContext) error {
	def := d.registry.Get(command.Verb, command.Object)
	if def == nil {
		return ValidationErr("no command registered for %s %s", command.Verb, command.Object)
	}

	result := d.executor.Execute(ctx, def, command, exec)
	if !result.Success {
		return result.Err
	}
	return nil
}

// GenerateHelp renders help text. Four shapes, depending on which of
// verb and object are given (zero values mean absent):
//
//   - both: single-command detail with parameters and examples
//   - verb only: that verb's objects, grouped by category
//   - object only: that object's verbs, grouped by category
//   - neither: the full catalog, grouped by category then verb
func (d *Dispatcher) GenerateHelp(verb Verb, object Object) string {
	switch {
	case verb != "" && object != "":
		return d.commandHelp(verb, object)
	case verb != "":
		return d.groupedHelp(fmt.Sprintf("Commands for %q", verb), d.registry.FindByVerb(verb))
	case object != "":
		return d.groupedHelp(fmt.Sprintf("Commands for %q", object), d.registry.FindByObject(object))
	}
	return d.groupedHelp("Commands", d.registry.List())
}

// commandHelp renders the detail view for one definition.
func (d *Dispatcher) commandHelp(verb Verb, object Object) string {
	def := d.registry.Get(verb, object)
	if def == nil {
		return fmt.Sprintf("no command registered for %s %s\n", verb, object)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "quartz %s %s\n\n", def.Verb, def.Object)
	if def.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", def.Description)
	}
	if def.Deprecated {
		notice := "Deprecated"
		if def.DeprecationMessage != "" {
			notice += ": " + def.DeprecationMessage
		}
		fmt.Fprintf(&b, "%s\n\n", notice)
	}

	if len(def.Parameters) > 0 {
		fmt.Fprintf(&b, "Parameters:\n")
		tw := tabwriter.NewWriter(&b, 2, 0, 3, ' ', 0)
		for _, parameter := range def.Parameters {
			name := "--" + parameter.Name
			for _, alias := range parameter.Aliases {
				name += ", -" + alias
			}
			attributes := string(parameter.Type)
			if parameter.Required {
				attributes += ", required"
			}
			fmt.Fprintf(tw, "  %s\t%s (%s)\n", name, parameter.Description, attributes)
		}
		tw.Flush()
	}

	if len(def.Examples) > 0 {
		fmt.Fprintf(&b, "\nExamples:\n")
		for _, example := range def.Examples {
			fmt.Fprintf(&b, "  %s\n", example)
		}
	}
	return b.String()
}

// groupedHelp renders a set of definitions grouped by category, in
// registration order within each group. Category order is
// alphabetical with "general" last.
func (d *Dispatcher) groupedHelp(title string, defs []*CommandDefinition) string {
	groups := make(map[string][]*CommandDefinition)
	var categories []string
	for _, def := range defs {
		category := def.Category
		if category == "" {
			category = DefaultCategory
		}
		if _, seen := groups[category]; !seen {
			categories = append(categories, category)
		}
		groups[category] = append(groups[category], def)
	}
	sort.Slice(categories, func(i, j int) bool {
		if categories[i] == DefaultCategory {
			return false
		}
		if categories[j] == DefaultCategory {
			return true
		}
		return categories[i] < categories[j]
	})

	var b strings.Builder
	fmt.Fprintf(&b, "%s:\n", title)
	for _, category := range categories {
		fmt.Fprintf(&b, "\n%s:\n", category)
		tw := tabwriter.NewWriter(&b, 2, 0, 3, ' ', 0)
		for _, def := range groups[category] {
			name := fmt.Sprintf("%s %s", def.Verb, def.Object)
			summary := def.Description
			if def.Deprecated {
				summary += " (deprecated)"
			}
			fmt.Fprintf(tw, "  %s\t%s\n", name, summary)
		}
		tw.Flush()
	}
	fmt.Fprintf(&b, "\nRun 'quartz help <verb> <object>' for details on a command.\n")
	return b.String()
}

// GetSuggestions returns autocomplete candidates for a partial command
// line. Zero tokens list every verb; one token lists verbs matching
// its prefix; two or more resolve the verb and list its objects
// matching the second token's prefix. Any resolution failure yields an
// empty list rather than an error.
func (d *Dispatcher) GetSuggestions(partial []string) []string {
	switch len(partial) {
	case 0:
		return verbStrings()
	case 1:
		var matches []string
		prefix := strings.ToLower(partial[0])
		for _, verb := range verbStrings() {
			if strings.HasPrefix(verb, prefix) {
				matches = append(matches, verb)
			}
		}
		return matches
	}

	if !IsValidVerb(partial[0]) {
		return nil
	}
	verb := Verb(partial[0])
	prefix := strings.ToLower(partial[1])
	var matches []string
	for _, object := range d.verbs.PossibleObjects(verb) {
		if strings.HasPrefix(string(object), prefix) {
			matches = append(matches, string(object))
		}
	}
	return matches
}
