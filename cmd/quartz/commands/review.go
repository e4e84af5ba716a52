// Copyright 2026 The Quartz Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"strings"

	"github.com/QuartzKazoku/quartz-cli/cmd/quartz/cli"
	"github.com/QuartzKazoku/quartz-cli/lib/llm"
)

const reviewSystemPrompt = `You review code changes. Given a diff, reply with a concise review:
real problems first (bugs, races, security), then style notes. Be
specific about file and line. If the diff looks fine, say so briefly.`

func reviewCommands(deps *Deps) []*cli.CommandDefinition {
	return []*cli.CommandDefinition{
		{
			Verb:        cli.VerbGenerate,
			Object:      cli.ObjectReview,
			Description: "Generate an AI review of the staged changes",
			Category:    "ai",
			Parameters: []cli.ParameterDefinition{
				{
					Name:        "range",
					Type:        cli.TypeString,
					Description: "review a ref range (e.g. main..HEAD) instead of the staged diff",
					Aliases:     []string{"r"},
				},
				dryRunParam(),
			},
			Examples: []string{
				"quartz generate review",
				"quartz generate review --range=main..HEAD",
			},
			Handler: func(ctx context.Context, exec *cli.ExecutionContext) error {
				runner := deps.NewGit(exec.WorkDir)

				var diff string
				var err error
				if refRange := stringParam(exec, "range"); refRange != "" {
					diff, err = runner.Run(ctx, "diff", refRange)
				} else {
					diff, err = runner.StagedDiff(ctx)
				}
				if err != nil {
					return err
				}
				if strings.TrimSpace(diff) == "" {
					return cli.ExecutionErr("nothing to review: the diff is empty")
				}

				response, err := deps.NewProvider(exec.Config).Complete(ctx, llm.Request{
					Model:  exec.Config.AI.Model,
					System: reviewSystemPrompt,
					Prompt: diff,
				})
				if err != nil {
					return err
				}
				exec.Logger.Line("%s", strings.TrimSpace(response.Text))
				return nil
			},
		},
	}
}
