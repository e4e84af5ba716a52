// Copyright 2026 The Quartz Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/QuartzKazoku/quartz-cli/cmd/quartz/cli"
	"github.com/QuartzKazoku/quartz-cli/lib/config"
	"github.com/QuartzKazoku/quartz-cli/lib/ui"
)

func configCommands(deps *Deps) []*cli.CommandDefinition {
	keyParam := cli.ParameterDefinition{
		Name:        "key",
		Type:        cli.TypeString,
		Required:    true,
		Description: "config key (e.g. ai.model, ui.language)",
		Aliases:     []string{"k"},
	}

	return []*cli.CommandDefinition{
		{
			Verb:        cli.VerbShow,
			Object:      cli.ObjectConfig,
			Description: "Show the resolved configuration",
			Category:    "config",
			Examples: []string{
				"quartz show config",
			},
			Handler: func(ctx context.Context, exec *cli.ExecutionContext) error {
				var lines []string
				for _, key := range configKeys() {
					value, _ := readConfigKey(exec.Config, key)
					lines = append(lines, fmt.Sprintf("%-12s %s", key, redact(key, value)))
				}
				exec.Logger.Line("%s", ui.RenderBox("config", strings.Join(lines, "\n")))
				return nil
			},
		},
		{
			Verb:        cli.VerbSet,
			Object:      cli.ObjectConfig,
			Description: "Set a configuration value",
			Category:    "config",
			Parameters: []cli.ParameterDefinition{
				keyParam,
				{
					Name:        "value",
					Type:        cli.TypeString,
					Required:    true,
					Description: "value to store",
					Aliases:     []string{"v"},
				},
				dryRunParam(),
			},
			Examples: []string{
				"quartz set config --key=ai.model --value=gpt-4o-mini",
				"quartz set config -k ui.language -v ja",
			},
			Handler: func(ctx context.Context, exec *cli.ExecutionContext) error {
				key := stringParam(exec, "key")
				if err := writeConfigKey(exec.Config, key, stringParam(exec, "value")); err != nil {
					return err
				}
				if err := config.Save(deps.ConfigPath, exec.Config); err != nil {
					return err
				}
				exec.Logger.Success("%s", exec.Translator.T("configmsg.updated",
					map[string]string{"key": key}))
				return nil
			},
		},
		{
			Verb:        cli.VerbGet,
			Object:      cli.ObjectConfig,
			Description: "Print one configuration value",
			Category:    "config",
			Parameters:  []cli.ParameterDefinition{keyParam},
			Examples: []string{
				"quartz get config --key=ai.model",
			},
			Handler: func(ctx context.Context, exec *cli.ExecutionContext) error {
				value, err := readConfigKey(exec.Config, stringParam(exec, "key"))
				if err != nil {
					return err
				}
				exec.Logger.Line("%s", value)
				return nil
			},
		},
		{
			Verb:        cli.VerbList,
			Object:      cli.ObjectConfig,
			Description: "List configuration keys and values",
			Category:    "config",
			Examples: []string{
				"quartz list config",
			},
			Handler: func(ctx context.Context, exec *cli.ExecutionContext) error {
				for _, key := range configKeys() {
					value, _ := readConfigKey(exec.Config, key)
					exec.Logger.Line("%s=%s", key, redact(key, value))
				}
				return nil
			},
		},
	}
}

// configKeys lists the settable keys in display order.
func configKeys() []string {
	return []string{
		"ai.provider", "ai.apiKey", "ai.model", "ai.baseUrl",
		"ui.language", "ui.color",
	}
}

func readConfigKey(cfg *config.Config, key string) (string, error) {
	switch key {
	case "ai.provider":
		return cfg.AI.Provider, nil
	case "ai.apiKey":
		return cfg.AI.APIKey, nil
	case "ai.model":
		return cfg.AI.Model, nil
	case "ai.baseUrl":
		return cfg.AI.BaseURL, nil
	case "ui.language":
		return cfg.UI.Language, nil
	case "ui.color":
		return strconv.FormatBool(cfg.UI.Color), nil
	}
	return "", cli.ExecutionErr("unknown config key %q: valid keys are %s",
		key, strings.Join(configKeys(), ", "))
}

func writeConfigKey(cfg *config.Config, key, value string) error {
	switch key {
	case "ai.provider":
		cfg.AI.Provider = value
	case "ai.apiKey":
		cfg.AI.APIKey = value
	case "ai.model":
		cfg.AI.Model = value
	case "ai.baseUrl":
		cfg.AI.BaseURL = value
	case "ui.language":
		cfg.UI.Language = value
	case "ui.color":
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return cli.ExecutionErr("ui.color must be true or false, got %q", value)
		}
		cfg.UI.Color = enabled
	default:
		return cli.ExecutionErr("unknown config key %q: valid keys are %s",
			key, strings.Join(configKeys(), ", "))
	}
	return nil
}

// redact masks secret-bearing values in listings.
func redact(key, value string) string {
	if value == "" {
		return ""
	}
	if strings.Contains(strings.ToLower(key), "key") || strings.Contains(strings.ToLower(key), "token") {
		return "********"
	}
	return value
}
