// Copyright 2026 The Quartz Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"

	"github.com/QuartzKazoku/quartz-cli/cmd/quartz/cli"
)

// projectCommands defines the object-less pair: "quartz help" and
// "quartz version" are routed as (help, project) and
// (version, project) by the parser's canonical-object substitution.
func projectCommands(deps *Deps) []*cli.CommandDefinition {
	return []*cli.CommandDefinition{
		{
			Verb:        cli.VerbHelp,
			Object:      cli.ObjectProject,
			Description: "Show help for the catalog or one command",
			Examples: []string{
				"quartz help",
				"quartz help create branch",
			},
			Handler: func(ctx context.Context, exec *cli.ExecutionContext) error {
				// The tokens after "help" arrive as positional
				// operands: none for the full catalog, a verb, or a
				// verb-object pair.
				args := exec.Command.Args
				var verb cli.Verb
				var object cli.Object
				if len(args) > 0 && cli.IsValidVerb(args[0]) {
					verb = cli.Verb(args[0])
				}
				if len(args) > 1 && cli.IsValidObject(args[1]) {
					object = cli.Object(args[1])
				}
				exec.Logger.Line("%s", deps.Help(verb, object))
				return nil
			},
		},
		{
			Verb:        cli.VerbVersion,
			Object:      cli.ObjectProject,
			Description: "Print version information",
			Examples: []string{
				"quartz version",
			},
			Handler: func(ctx context.Context, exec *cli.ExecutionContext) error {
				exec.Logger.Line("%s", exec.Translator.T("version.line",
					map[string]string{"version": deps.Version}))
				return nil
			},
		},
	}
}
