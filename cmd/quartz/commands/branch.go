// Copyright 2026 The Quartz Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/QuartzKazoku/quartz-cli/cmd/quartz/cli"
)

func branchCommands(deps *Deps) []*cli.CommandDefinition {
	return []*cli.CommandDefinition{
		{
			Verb:        cli.VerbCreate,
			Object:      cli.ObjectBranch,
			Description: "Create and check out a new branch",
			Category:    "git",
			Parameters: []cli.ParameterDefinition{
				{
					Name:        "name",
					Type:        cli.TypeString,
					Required:    true,
					Description: "branch name",
					Aliases:     []string{"n"},
					Validate:    validateBranchName,
				},
				dryRunParam(),
			},
			Examples: []string{
				"quartz create branch --name=feature/login",
				"quartz create branch -n fix/typo",
			},
			Handler: func(ctx context.Context, exec *cli.ExecutionContext) error {
				name := stringParam(exec, "name")
				if err := deps.NewGit(exec.WorkDir).CreateBranch(ctx, name); err != nil {
					return err
				}
				exec.Logger.Success("%s", exec.Translator.T("branch.created",
					map[string]string{"name": name}))
				return nil
			},
		},
		{
			Verb:        cli.VerbDelete,
			Object:      cli.ObjectBranch,
			Description: "Delete a local branch",
			Category:    "git",
			Parameters: []cli.ParameterDefinition{
				forceParam(),
				dryRunParam(),
			},
			Examples: []string{
				"quartz delete branch old-feature",
				"quartz delete branch old-feature --force",
			},
			Handler: func(ctx context.Context, exec *cli.ExecutionContext) error {
				if len(exec.Command.Args) == 0 {
					return cli.ExecutionErr("branch name required: quartz delete branch <name>")
				}
				name := exec.Command.Args[0]
				force := boolParam(exec, "force")
				if err := deps.NewGit(exec.WorkDir).DeleteBranch(ctx, name, force); err != nil {
					return err
				}
				exec.Logger.Success("%s", exec.Translator.T("branch.deleted",
					map[string]string{"name": name}))
				return nil
			},
		},
		{
			Verb:        cli.VerbList,
			Object:      cli.ObjectBranch,
			Description: "List local branches",
			Category:    "git",
			Examples: []string{
				"quartz list branch",
			},
			Handler: func(ctx context.Context, exec *cli.ExecutionContext) error {
				return listBranches(ctx, deps, exec)
			},
		},
		{
			Verb:               cli.VerbShow,
			Object:             cli.ObjectBranch,
			Description:        "Show local branches",
			Category:           "git",
			Deprecated:         true,
			DeprecationMessage: "use 'quartz list branch' instead",
			Examples: []string{
				"quartz show branch",
			},
			Handler: func(ctx context.Context, exec *cli.ExecutionContext) error {
				return listBranches(ctx, deps, exec)
			},
		},
	}
}

func listBranches(ctx context.Context, deps *Deps, exec *cli.ExecutionContext) error {
	runner := deps.NewGit(exec.WorkDir)
	branches, err := runner.Branches(ctx)
	if err != nil {
		return err
	}
	current, err := runner.CurrentBranch(ctx)
	if err != nil {
		return err
	}
	for _, branch := range branches {
		marker := "  "
		if branch == current {
			marker = "* "
		}
		exec.Logger.Line("%s%s", marker, branch)
	}
	return nil
}

// validateBranchName rejects names git itself would refuse.
func validateBranchName(value any) error {
	name, _ := value.(string)
	if name == "" {
		return fmt.Errorf("must not be empty")
	}
	if strings.ContainsAny(name, " ~^:?*[\\") || strings.Contains(name, "..") {
		return fmt.Errorf("%q is not a valid branch name", name)
	}
	return nil
}
