// Copyright 2026 The Quartz Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the static quartz command catalog: one
// CommandDefinition per (verb, object) pair, with parameter schemas,
// examples, and the terminal handlers that call into the git, llm,
// and config collaborators.
package commands

import (
	"net/http"

	"github.com/QuartzKazoku/quartz-cli/cmd/quartz/cli"
	"github.com/QuartzKazoku/quartz-cli/lib/config"
	"github.com/QuartzKazoku/quartz-cli/lib/git"
	"github.com/QuartzKazoku/quartz-cli/lib/llm"
)

// Deps are the collaborator constructors handlers close over. Zero
// fields get production defaults in [Register]; tests substitute
// fakes.
type Deps struct {
	// ConfigPath is where "set config" and the profile commands
	// persist changes.
	ConfigPath string

	// Version is printed by "quartz version".
	Version string

	// NewGit builds the git runner for a working directory.
	NewGit func(dir string) *git.Runner

	// NewProvider builds the model provider from the AI config
	// section.
	NewProvider func(cfg *config.Config) llm.Provider

	// Help renders help text; main wires it to the dispatcher after
	// construction, since the dispatcher needs the populated registry
	// first.
	Help func(verb cli.Verb, object cli.Object) string
}

func (d *Deps) defaults() {
	if d.Version == "" {
		d.Version = "dev"
	}
	if d.NewGit == nil {
		d.NewGit = git.NewRunner
	}
	if d.NewProvider == nil {
		d.NewProvider = func(cfg *config.Config) llm.Provider {
			return llm.NewOpenAI(http.DefaultClient, cfg.AI.BaseURL, cfg.AI.APIKey)
		}
	}
	if d.Help == nil {
		d.Help = func(verb cli.Verb, object cli.Object) string { return "" }
	}
}

// Register populates the registry with the complete catalog. Called
// once at startup; a registration conflict is a programming error and
// is returned for main to report.
func Register(registry *cli.Registry, deps *Deps) error {
	deps.defaults()

	var defs []*cli.CommandDefinition
	defs = append(defs, branchCommands(deps)...)
	defs = append(defs, commitCommands(deps)...)
	defs = append(defs, prCommands(deps)...)
	defs = append(defs, reviewCommands(deps)...)
	defs = append(defs, changelogCommands(deps)...)
	defs = append(defs, configCommands(deps)...)
	defs = append(defs, profileCommands(deps)...)
	defs = append(defs, projectCommands(deps)...)

	for _, def := range defs {
		if err := registry.Register(def); err != nil {
			return err
		}
	}
	return nil
}

// RepositoryObjects lists the objects whose commands must run inside
// a recognized git repository. main attaches the repository probe as
// a precondition hook for each.
func RepositoryObjects() []cli.Object {
	return []cli.Object{
		cli.ObjectBranch,
		cli.ObjectCommit,
		cli.ObjectPR,
		cli.ObjectReview,
		cli.ObjectChangelog,
	}
}

// Shared parameter definitions. Declared per command so bare "--force"
// and "--dry-run" resolve as booleans instead of leaking into the
// positional operands.

func forceParam() cli.ParameterDefinition {
	return cli.ParameterDefinition{
		Name:        "force",
		Type:        cli.TypeBoolean,
		Description: "skip the confirmation prompt",
		Aliases:     []string{"f"},
	}
}

func dryRunParam() cli.ParameterDefinition {
	return cli.ParameterDefinition{
		Name:        "dry-run",
		Type:        cli.TypeBoolean,
		Description: "print the intended action without executing it",
	}
}

// stringParam reads a string parameter from the parsed command,
// returning "" when absent.
func stringParam(exec *cli.ExecutionContext, name string) string {
	value, _ := exec.Command.Parameters[name].(string)
	return value
}

// boolParam reads a boolean parameter, false when absent.
func boolParam(exec *cli.ExecutionContext, name string) bool {
	value, _ := exec.Command.Parameters[name].(bool)
	return value
}

// numberParam reads a number parameter, returning fallback when absent.
func numberParam(exec *cli.ExecutionContext, name string, fallback float64) float64 {
	value, ok := exec.Command.Parameters[name].(float64)
	if !ok {
		return fallback
	}
	return value
}
