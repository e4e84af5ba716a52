// Copyright 2026 The Quartz Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"strings"

	"github.com/QuartzKazoku/quartz-cli/cmd/quartz/cli"
	"github.com/QuartzKazoku/quartz-cli/lib/llm"
	"github.com/QuartzKazoku/quartz-cli/lib/ui"
)

const changelogSystemPrompt = `You write changelogs. Given commit subjects, reply with a markdown
changelog grouped under Added / Changed / Fixed headings. Drop merge
commits and other noise. Reply with the changelog only.`

func changelogCommands(deps *Deps) []*cli.CommandDefinition {
	return []*cli.CommandDefinition{
		{
			Verb:        cli.VerbGenerate,
			Object:      cli.ObjectChangelog,
			Description: "Generate a changelog from the commit history",
			Category:    "ai",
			Parameters: []cli.ParameterDefinition{
				{
					Name:        "since",
					Type:        cli.TypeString,
					Description: "start from this ref (e.g. a release tag)",
					Aliases:     []string{"s"},
				},
				dryRunParam(),
			},
			Examples: []string{
				"quartz generate changelog --since=v1.2.0",
			},
			Handler: func(ctx context.Context, exec *cli.ExecutionContext) error {
				subjects, err := deps.NewGit(exec.WorkDir).Log(ctx, stringParam(exec, "since"))
				if err != nil {
					return err
				}
				if len(subjects) == 0 {
					return cli.ExecutionErr("no commits in the requested range")
				}

				response, err := deps.NewProvider(exec.Config).Complete(ctx, llm.Request{
					Model:  exec.Config.AI.Model,
					System: changelogSystemPrompt,
					Prompt: strings.Join(subjects, "\n"),
				})
				if err != nil {
					return err
				}
				exec.Logger.Line("%s", ui.RenderBox(
					exec.Translator.T("changelog.header", nil),
					strings.TrimSpace(response.Text)))
				return nil
			},
		},
	}
}
