// Copyright 2026 The Quartz Authors
// SPDX-License-Identifier: Apache-2.0

// Command quartz is a git and AI assistant CLI. Invocations have the
// shape "quartz <verb> <object> [parameters]"; the routing engine in
// cmd/quartz/cli resolves them against the static catalog in
// cmd/quartz/commands.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/QuartzKazoku/quartz-cli/cmd/quartz/cli"
	"github.com/QuartzKazoku/quartz-cli/cmd/quartz/commands"
	"github.com/QuartzKazoku/quartz-cli/lib/config"
	"github.com/QuartzKazoku/quartz-cli/lib/git"
	"github.com/QuartzKazoku/quartz-cli/lib/i18n"
	"github.com/QuartzKazoku/quartz-cli/lib/ui"
)

// version is stamped at build time with
// -ldflags "-X main.version=v1.2.3".
var version = "dev"

func main() {
	if err := run(); err != nil {
		// Handlers that print their own output return an ExitError
		// with the desired exit code. Don't print a redundant
		// "error:" line for those.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flags := pflag.NewFlagSet("quartz", pflag.ContinueOnError)
	// Stop at the first non-flag token: everything from the verb on
	// belongs to the routing engine's own grammar.
	flags.SetInterspersed(false)
	configPath := flags.String("config", "", "config file path (default ~/.config/quartz/config.json)")
	noColor := flags.Bool("no-color", false, "disable colored output")
	verbose := flags.BoolP("verbose", "V", false, "enable debug output")
	locale := flags.String("locale", "", "override the configured language")
	showVersion := flags.Bool("version", false, "print version and exit")

	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return dispatchHelp()
		}
		return err
	}
	if *showVersion {
		fmt.Println("quartz " + version)
		return nil
	}

	path, err := config.ResolvePath(*configPath)
	if err != nil {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	language := cfg.UI.Language
	if *locale != "" {
		language = *locale
	}
	translator, err := i18n.New(language)
	if err != nil {
		return err
	}
	// When stderr is piped or redirected there is no terminal to
	// style; log structured records instead.
	var logger cli.Logger = ui.NewLogger(cfg.UI.Color && !*noColor, *verbose)
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		logger = cli.NewFallbackLogger()
	}

	registry := cli.NewRegistry()
	deps := &commands.Deps{ConfigPath: path, Version: version}
	if err := commands.Register(registry, deps); err != nil {
		return err
	}

	verbs := cli.NewVerbResolver(registry)
	objects := cli.NewObjectResolver(registry)
	for _, object := range commands.RepositoryObjects() {
		objects.SetPrecondition(object, requireRepository)
	}

	executor := cli.DefaultChain(objects, ui.Confirm)
	dispatcher := cli.NewDispatcher(registry, verbs, objects, executor)
	deps.Help = dispatcher.GenerateHelp

	args := flags.Args()
	if len(args) == 0 {
		logger.Line("%s", dispatcher.GenerateHelp("", ""))
		return nil
	}

	workDir, err := os.Getwd()
	if err != nil {
		return err
	}
	exec := &cli.ExecutionContext{
		Config:     cfg,
		Logger:     logger,
		Translator: translator,
		WorkDir:    workDir,
		Env:        environMap(),
	}
	return dispatcher.ParseAndDispatch(context.Background(), args, exec)
}

// dispatchHelp handles a bare "quartz --help" by routing it through
// the catalog's help command, so pflag's help and the engine's help
// stay one implementation.
func dispatchHelp() error {
	registry := cli.NewRegistry()
	deps := &commands.Deps{Version: version}
	if err := commands.Register(registry, deps); err != nil {
		return err
	}
	verbs := cli.NewVerbResolver(registry)
	objects := cli.NewObjectResolver(registry)
	dispatcher := cli.NewDispatcher(registry, verbs, objects, cli.NewExecutor())
	fmt.Fprintln(os.Stdout, dispatcher.GenerateHelp("", ""))
	return nil
}

// requireRepository is the context precondition attached to every
// git-touching object.
func requireRepository(exec *cli.ExecutionContext) error {
	if _, ok := git.Detect(exec.WorkDir); !ok {
		return fmt.Errorf("not inside a git repository (run from a working tree, or 'git init' first)")
	}
	return nil
}

func environMap() map[string]string {
	env := make(map[string]string)
	for _, entry := range os.Environ() {
		name, value, _ := strings.Cut(entry, "=")
		env[name] = value
	}
	return env
}
