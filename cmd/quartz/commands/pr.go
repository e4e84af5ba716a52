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

const prSystemPrompt = `You write pull request descriptions. Given the commits on a branch,
reply with a markdown body: a one-paragraph summary followed by a
bullet list of notable changes. Reply with the body only.`

func prCommands(deps *Deps) []*cli.CommandDefinition {
	return []*cli.CommandDefinition{
		{
			Verb:        cli.VerbCreate,
			Object:      cli.ObjectPR,
			Description: "Prepare a pull request for the current branch",
			Category:    "git",
			Parameters: []cli.ParameterDefinition{
				{
					Name:        "title",
					Type:        cli.TypeString,
					Required:    true,
					Description: "pull request title",
					Aliases:     []string{"t"},
				},
				{
					Name:        "base",
					Type:        cli.TypeString,
					Default:     "main",
					Description: "base branch to merge into",
					Aliases:     []string{"b"},
				},
				{
					Name:        "ai",
					Type:        cli.TypeBoolean,
					Description: "generate the body from the branch's commits",
				},
				dryRunParam(),
			},
			Examples: []string{
				"quartz create pr --title=\"Add login flow\"",
				"quartz create pr -t \"Add login flow\" --base=develop --ai",
			},
			Handler: func(ctx context.Context, exec *cli.ExecutionContext) error {
				runner := deps.NewGit(exec.WorkDir)
				branch, err := runner.CurrentBranch(ctx)
				if err != nil {
					return err
				}
				base := stringParam(exec, "base")
				title := stringParam(exec, "title")

				body := ""
				if boolParam(exec, "ai") {
					if exec.Config.AI.APIKey == "" || exec.Config.AI.Model == "" {
						return cli.PreconditionErr("--ai needs the AI provider configured: run 'quartz set config --key=ai.apiKey --value=<your-key>'")
					}
					subjects, err := runner.Log(ctx, base)
					if err != nil {
						return err
					}
					response, err := deps.NewProvider(exec.Config).Complete(ctx, llm.Request{
						Model:  exec.Config.AI.Model,
						System: prSystemPrompt,
						Prompt: strings.Join(subjects, "\n"),
					})
					if err != nil {
						return err
					}
					body = strings.TrimSpace(response.Text)
				}

				detail := "branch: " + branch + "\nbase:   " + base
				if body != "" {
					detail += "\n\n" + body
				}
				exec.Logger.Line("%s", ui.RenderBox(title, detail))
				exec.Logger.Success("%s", exec.Translator.T("pr.created",
					map[string]string{"title": title}))
				return nil
			},
		},
		{
			Verb:        cli.VerbList,
			Object:      cli.ObjectPR,
			Description: "List branches with commits not yet on the base branch",
			Category:    "git",
			Parameters: []cli.ParameterDefinition{
				{
					Name:        "base",
					Type:        cli.TypeString,
					Default:     "main",
					Description: "base branch to compare against",
					Aliases:     []string{"b"},
				},
			},
			Examples: []string{
				"quartz list pr",
				"quartz list pr --base=develop",
			},
			Handler: func(ctx context.Context, exec *cli.ExecutionContext) error {
				runner := deps.NewGit(exec.WorkDir)
				base := stringParam(exec, "base")

				branches, err := runner.Branches(ctx)
				if err != nil {
					return err
				}
				for _, branch := range branches {
					if branch == base {
						continue
					}
					out, err := runner.Run(ctx, "rev-list", "--count", base+".."+branch)
					if err != nil {
						return err
					}
					count := strings.TrimSpace(out)
					if count == "0" {
						continue
					}
					exec.Logger.Line("%s (%s commit(s) ahead of %s)", branch, count, base)
				}
				return nil
			},
		},
	}
}
