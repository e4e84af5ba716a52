// Copyright 2026 The Quartz Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"

	"github.com/QuartzKazoku/quartz-cli/cmd/quartz/cli"
	"github.com/QuartzKazoku/quartz-cli/lib/config"
)

func profileCommands(deps *Deps) []*cli.CommandDefinition {
	return []*cli.CommandDefinition{
		{
			Verb:        cli.VerbCreate,
			Object:      cli.ObjectProfile,
			Description: "Create a named AI preset",
			Category:    "config",
			Parameters: []cli.ParameterDefinition{
				{
					Name:        "name",
					Type:        cli.TypeString,
					Required:    true,
					Description: "profile name",
					Aliases:     []string{"n"},
				},
				{
					Name:        "provider",
					Type:        cli.TypeString,
					Description: "AI provider for this profile",
				},
				{
					Name:        "model",
					Type:        cli.TypeString,
					Description: "model for this profile",
					Aliases:     []string{"m"},
				},
				dryRunParam(),
			},
			Examples: []string{
				"quartz create profile --name=work --model=gpt-4o",
			},
			Handler: func(ctx context.Context, exec *cli.ExecutionContext) error {
				name := stringParam(exec, "name")
				if exec.Config.FindProfile(name) != nil {
					return cli.ExecutionErr("profile %q already exists", name)
				}
				exec.Config.Profiles = append(exec.Config.Profiles, config.Profile{
					Name:     name,
					Provider: stringParam(exec, "provider"),
					Model:    stringParam(exec, "model"),
				})
				if err := config.Save(deps.ConfigPath, exec.Config); err != nil {
					return err
				}
				exec.Logger.Success("%s", exec.Translator.T("profile.created",
					map[string]string{"name": name}))
				return nil
			},
		},
		{
			Verb:        cli.VerbDelete,
			Object:      cli.ObjectProfile,
			Description: "Delete a named AI preset",
			Category:    "config",
			Parameters: []cli.ParameterDefinition{
				forceParam(),
				dryRunParam(),
			},
			Examples: []string{
				"quartz delete profile work",
			},
			Handler: func(ctx context.Context, exec *cli.ExecutionContext) error {
				if len(exec.Command.Args) == 0 {
					return cli.ExecutionErr("profile name required: quartz delete profile <name>")
				}
				name := exec.Command.Args[0]
				if exec.Config.FindProfile(name) == nil {
					return cli.ExecutionErr("no profile named %q", name)
				}
				kept := exec.Config.Profiles[:0]
				for _, profile := range exec.Config.Profiles {
					if profile.Name != name {
						kept = append(kept, profile)
					}
				}
				exec.Config.Profiles = kept
				if exec.Config.ActiveProfile == name {
					exec.Config.ActiveProfile = ""
				}
				if err := config.Save(deps.ConfigPath, exec.Config); err != nil {
					return err
				}
				exec.Logger.Success("%s", exec.Translator.T("profile.deleted",
					map[string]string{"name": name}))
				return nil
			},
		},
		{
			Verb:        cli.VerbList,
			Object:      cli.ObjectProfile,
			Description: "List AI presets",
			Category:    "config",
			Examples: []string{
				"quartz list profile",
			},
			Handler: func(ctx context.Context, exec *cli.ExecutionContext) error {
				if len(exec.Config.Profiles) == 0 {
					exec.Logger.Line("%s", exec.Translator.T("profile.none", nil))
					return nil
				}
				for _, profile := range exec.Config.Profiles {
					marker := "  "
					if profile.Name == exec.Config.ActiveProfile {
						marker = "* "
					}
					exec.Logger.Line("%s%s (%s %s)", marker, profile.Name, profile.Provider, profile.Model)
				}
				return nil
			},
		},
		{
			Verb:        cli.VerbShow,
			Object:      cli.ObjectProfile,
			Description: "Show the active AI preset",
			Category:    "config",
			Examples: []string{
				"quartz show profile",
			},
			Handler: func(ctx context.Context, exec *cli.ExecutionContext) error {
				name := exec.Command.Args
				target := exec.Config.ActiveProfile
				if len(name) > 0 {
					target = name[0]
				}
				if target == "" {
					exec.Logger.Line("%s", exec.Translator.T("profile.none", nil))
					return nil
				}
				profile := exec.Config.FindProfile(target)
				if profile == nil {
					return cli.ExecutionErr("no profile named %q", target)
				}
				exec.Logger.Line("name:     %s", profile.Name)
				exec.Logger.Line("provider: %s", profile.Provider)
				exec.Logger.Line("model:    %s", profile.Model)
				return nil
			},
		},
		{
			Verb:        cli.VerbUse,
			Object:      cli.ObjectProfile,
			Description: "Switch to a named AI preset",
			Category:    "config",
			Parameters: []cli.ParameterDefinition{
				dryRunParam(),
			},
			Examples: []string{
				"quartz use profile work",
			},
			Handler: func(ctx context.Context, exec *cli.ExecutionContext) error {
				if len(exec.Command.Args) == 0 {
					return cli.ExecutionErr("profile name required: quartz use profile <name>")
				}
				name := exec.Command.Args[0]
				profile := exec.Config.FindProfile(name)
				if profile == nil {
					return cli.ExecutionErr("no profile named %q", name)
				}
				exec.Config.ActiveProfile = name
				if profile.Provider != "" {
					exec.Config.AI.Provider = profile.Provider
				}
				if profile.Model != "" {
					exec.Config.AI.Model = profile.Model
				}
				if err := config.Save(deps.ConfigPath, exec.Config); err != nil {
					return err
				}
				exec.Logger.Success("%s", exec.Translator.T("profile.active",
					map[string]string{"name": name}))
				return nil
			},
		},
	}
}
