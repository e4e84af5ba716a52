// Copyright 2026 The Quartz Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"
)

func dispatcherFixture(t *testing.T) (*Dispatcher, *Registry) {
	t.Helper()
	registry := NewRegistry()

	branch := testDefinition(VerbCreate, ObjectBranch)
	branch.Category = "repository"
	branch.Parameters = []ParameterDefinition{
		{Name: "name", Type: TypeString, Required: true, Aliases: []string{"n"}, Description: "branch name"},
	}
	branch.Examples = []string{"quartz create branch --name=feature/login"}

	show := testDefinition(VerbShow, ObjectBranch)
	show.Category = "repository"
	show.Deprecated = true
	show.DeprecationMessage = "use 'quartz list branch' instead"

	for _, def := range []*CommandDefinition{
		branch,
		show,
		testDefinition(VerbList, ObjectBranch),
		testDefinition(VerbShow, ObjectConfig),
		testDefinition(VerbHelp, ObjectProject),
	} {
		if err := registry.Register(def); err != nil {
			t.Fatalf("Register(%s %s): %v", def.Verb, def.Object, err)
		}
	}

	verbs := NewVerbResolver(registry)
	objects := NewObjectResolver(registry)
	return NewDispatcher(registry, verbs, objects, NewExecutor()), registry
}

func TestDispatcher_ParseAndDispatch(t *testing.T) {
	t.Run("happy path runs the handler once", func(t *testing.T) {
		dispatcher, registry := dispatcherFixture(t)
		calls := 0
		def := registry.Get(VerbCreate, ObjectBranch)
		def.Handler = func(ctx context.Context, exec *ExecutionContext) error {
			calls++
			return nil
		}

		exec := testContext(&recordingLogger{})
		err := dispatcher.ParseAndDispatch(context.Background(), []string{"create", "branch", "--name=x"}, exec)
		if err != nil {
			t.Fatalf("ParseAndDispatch() = %v", err)
		}
		if calls != 1 {
			t.Errorf("handler ran %d times, want 1", calls)
		}
	})

	t.Run("parse errors surface as one parse error", func(t *testing.T) {
		dispatcher, _ := dispatcherFixture(t)
		exec := testContext(&recordingLogger{})
		err := dispatcher.ParseAndDispatch(context.Background(), []string{"create", "branch"}, exec)
		if err == nil {
			t.Fatal("ParseAndDispatch() accepted an invalid parse")
		}
		var commandErr *CommandError
		if !errors.As(err, &commandErr) || commandErr.Category != CategoryParse {
			t.Errorf("err = %v, want parse category", err)
		}
		if !strings.Contains(err.Error(), "name") {
			t.Errorf("err = %q, want the missing parameter reported", err)
		}
	})

	t.Run("warnings are logged but not fatal", func(t *testing.T) {
		dispatcher, _ := dispatcherFixture(t)
		logger := &recordingLogger{}
		exec := testContext(logger)
		err := dispatcher.ParseAndDispatch(context.Background(), []string{"show", "branch"}, exec)
		if err != nil {
			t.Fatalf("ParseAndDispatch() = %v, want the deprecated command to still run", err)
		}
		if !logger.contains("deprecated") {
			t.Errorf("log = %v, want the deprecation warning", logger.entries)
		}
	})
}

func TestDispatcher_DispatchMissingDefinition(t *testing.T) {
	dispatcher, _ := dispatcherFixture(t)
	exec := testContext(&recordingLogger{})

	err := dispatcher.Dispatch(context.Background(), &ParsedCommand{Verb: VerbDelete, Object: ObjectPR}, exec)
	if err == nil {
		t.Fatal("Dispatch() succeeded with no registered definition")
	}
	var commandErr *CommandError
	if !errors.As(err, &commandErr) || commandErr.Category != CategoryValidation {
		t.Errorf("err = %v, want validation category", err)
	}
}

func TestDispatcher_GenerateHelp(t *testing.T) {
	dispatcher, _ := dispatcherFixture(t)

	t.Run("command detail", func(t *testing.T) {
		help := dispatcher.GenerateHelp(VerbCreate, ObjectBranch)
		for _, want := range []string{"quartz create branch", "--name, -n", "required", "feature/login"} {
			if !strings.Contains(help, want) {
				t.Errorf("help missing %q:\n%s", want, help)
			}
		}
	})

	t.Run("deprecated detail carries the notice", func(t *testing.T) {
		help := dispatcher.GenerateHelp(VerbShow, ObjectBranch)
		if !strings.Contains(help, "Deprecated: use 'quartz list branch' instead") {
			t.Errorf("help missing the deprecation notice:\n%s", help)
		}
	})

	t.Run("verb scoped", func(t *testing.T) {
		help := dispatcher.GenerateHelp(VerbShow, "")
		if !strings.Contains(help, "show branch") || !strings.Contains(help, "show config") {
			t.Errorf("verb help missing its commands:\n%s", help)
		}
		if strings.Contains(help, "create branch") {
			t.Errorf("verb help leaked other verbs:\n%s", help)
		}
	})

	t.Run("object scoped", func(t *testing.T) {
		help := dispatcher.GenerateHelp("", ObjectBranch)
		if !strings.Contains(help, "create branch") || !strings.Contains(help, "list branch") {
			t.Errorf("object help missing its commands:\n%s", help)
		}
		if strings.Contains(help, "show config") {
			t.Errorf("object help leaked other objects:\n%s", help)
		}
	})

	t.Run("full catalog groups by category with general last", func(t *testing.T) {
		help := dispatcher.GenerateHelp("", "")
		repository := strings.Index(help, "repository:")
		general := strings.Index(help, "general:")
		if repository < 0 || general < 0 {
			t.Fatalf("catalog missing category headers:\n%s", help)
		}
		if general < repository {
			t.Errorf("general listed before named categories:\n%s", help)
		}
		if !strings.Contains(help, "(deprecated)") {
			t.Errorf("catalog missing the deprecated marker:\n%s", help)
		}
		if !strings.Contains(help, "Run 'quartz help <verb> <object>'") {
			t.Errorf("catalog missing the footer:\n%s", help)
		}
	})

	t.Run("unknown pair", func(t *testing.T) {
		help := dispatcher.GenerateHelp(VerbDelete, ObjectChangelog)
		if !strings.Contains(help, "no command registered") {
			t.Errorf("help = %q, want the not-registered notice", help)
		}
	})
}

func TestDispatcher_GetSuggestions(t *testing.T) {
	dispatcher, _ := dispatcherFixture(t)

	t.Run("empty lists every verb", func(t *testing.T) {
		got := dispatcher.GetSuggestions(nil)
		if len(got) != len(Verbs()) {
			t.Errorf("GetSuggestions(nil) = %v, want all %d verbs", got, len(Verbs()))
		}
	})

	t.Run("verb prefix", func(t *testing.T) {
		got := dispatcher.GetSuggestions([]string{"cr"})
		if !slices.Equal(got, []string{"create"}) {
			t.Errorf("GetSuggestions(cr) = %v, want [create]", got)
		}
	})

	t.Run("object prefix under a verb", func(t *testing.T) {
		got := dispatcher.GetSuggestions([]string{"create", "br"})
		if !slices.Equal(got, []string{"branch"}) {
			t.Errorf("GetSuggestions(create br) = %v, want [branch]", got)
		}
	})

	t.Run("invalid verb yields nothing", func(t *testing.T) {
		if got := dispatcher.GetSuggestions([]string{"explode", "br"}); got != nil {
			t.Errorf("GetSuggestions(explode br) = %v, want nil", got)
		}
	})

	t.Run("no matches yields nothing", func(t *testing.T) {
		if got := dispatcher.GetSuggestions([]string{"zz"}); len(got) != 0 {
			t.Errorf("GetSuggestions(zz) = %v, want empty", got)
		}
	})
}
