// Copyright 2026 The Quartz Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/QuartzKazoku/quartz-cli/cmd/quartz/cli"
	"github.com/QuartzKazoku/quartz-cli/lib/llm"
)

// commitSystemPrompt instructs the model when generating a commit
// message from the staged diff.
const commitSystemPrompt = `You write git commit messages. Given a diff, reply with a single
conventional-commit subject line (max 72 characters) and nothing else.`

func commitCommands(deps *Deps) []*cli.CommandDefinition {
	return []*cli.CommandDefinition{
		{
			Verb:        cli.VerbCreate,
			Object:      cli.ObjectCommit,
			Description: "Record the staged changes as a commit",
			Category:    "git",
			Parameters: []cli.ParameterDefinition{
				{
					Name:        "message",
					Type:        cli.TypeString,
					Description: "commit message; omit with --ai to generate one",
					Aliases:     []string{"m"},
				},
				{
					Name:        "ai",
					Type:        cli.TypeBoolean,
					Description: "generate the message from the staged diff",
				},
				dryRunParam(),
			},
			Examples: []string{
				"quartz create commit --message=\"fix login redirect\"",
				"quartz create commit --ai",
			},
			Handler: func(ctx context.Context, exec *cli.ExecutionContext) error {
				runner := deps.NewGit(exec.WorkDir)

				message := stringParam(exec, "message")
				if message == "" {
					if !boolParam(exec, "ai") {
						return cli.ExecutionErr("a commit message is required: pass --message or --ai")
					}
					generated, err := generateCommitMessage(ctx, deps, exec)
					if err != nil {
						return err
					}
					message = generated
				}

				if err := runner.Commit(ctx, message); err != nil {
					return err
				}
				exec.Logger.Success("%s", exec.Translator.T("commit.created",
					map[string]string{"subject": firstLine(message)}))
				return nil
			},
		},
		{
			Verb:        cli.VerbList,
			Object:      cli.ObjectCommit,
			Description: "List recent commit subjects",
			Category:    "git",
			Parameters: []cli.ParameterDefinition{
				{
					Name:        "count",
					Type:        cli.TypeNumber,
					Default:     float64(10),
					Description: "number of commits to show",
					Aliases:     []string{"c"},
					Validate:    validateCommitCount,
				},
			},
			Examples: []string{
				"quartz list commit",
				"quartz list commit --count=25",
			},
			Handler: func(ctx context.Context, exec *cli.ExecutionContext) error {
				subjects, err := deps.NewGit(exec.WorkDir).Log(ctx, "")
				if err != nil {
					return err
				}
				count := int(numberParam(exec, "count", 10))
				if count < len(subjects) {
					subjects = subjects[:count]
				}
				for _, subject := range subjects {
					exec.Logger.Line("%s", subject)
				}
				return nil
			},
		},
	}
}

// generateCommitMessage asks the model for a subject line based on
// the staged diff.
func generateCommitMessage(ctx context.Context, deps *Deps, exec *cli.ExecutionContext) (string, error) {
	if exec.Config.AI.APIKey == "" || exec.Config.AI.Model == "" {
		return "", cli.PreconditionErr("--ai needs the AI provider configured: run 'quartz set config --key=ai.apiKey --value=<your-key>'")
	}

	diff, err := deps.NewGit(exec.WorkDir).StagedDiff(ctx)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(diff) == "" {
		return "", cli.ExecutionErr("%s", exec.Translator.T("commit.nothingStaged", nil))
	}

	response, err := deps.NewProvider(exec.Config).Complete(ctx, llm.Request{
		Model:  exec.Config.AI.Model,
		System: commitSystemPrompt,
		Prompt: diff,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(response.Text), nil
}

func validateCommitCount(value any) error {
	count, _ := value.(float64)
	if count < 1 {
		return fmt.Errorf("must be a positive number")
	}
	return nil
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
