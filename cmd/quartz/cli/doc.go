// Copyright 2026 The Quartz Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command routing engine for the quartz CLI.
//
// Commands have the shape "<verb> <object> [parameters]" (for example,
// "quartz create branch --name feature/x"). The engine resolves the
// verb and object tokens against closed enumerations, routes the pair
// through a [Registry] of static [CommandDefinition] entries, parses the
// remaining tokens against the definition's parameter schema, and runs
// the matched handler through an ordered middleware chain.
//
// The central types are:
//
//   - [Registry]: the static catalog, keyed by (verb, object) with
//     secondary indices by verb, object, and category.
//   - [Parser]: turns raw argv into a validated [ParsedCommand], using
//     [VerbResolver], [ObjectResolver], and [ParameterParser].
//   - [Executor]: runs the middleware chain around the terminal handler.
//     A middleware may decline to call its continuation, which skips
//     everything downstream without raising an error.
//   - [Dispatcher]: the facade composing the three, exposing
//     ParseAndDispatch, help generation, and shell autocomplete.
//
// When a user types an unknown verb or object, the resolvers compute up
// to three "did you mean" suggestions using substring containment and a
// positional character-match ratio (suggest.go).
//
// Parse and validation problems are accumulated as error and warning
// string lists in a [ValidationResult] rather than returned one at a
// time; the [Dispatcher] aggregates accumulated errors into a single
// error at the boundary. Warnings are logged and never alter control
// flow.
package cli
