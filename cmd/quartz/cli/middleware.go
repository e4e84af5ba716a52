// Copyright 2026 The Quartz Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"strings"
	"time"
)

// SlowThreshold is the duration past which the slow-operation
// middleware logs a warning. Purely observational: nothing is
// pre-empted or cancelled.
const SlowThreshold = 5 * time.Second

// aiObjects are the objects whose handlers call the AI provider and
// therefore need the AI config section populated before running.
var aiObjects = map[Object]bool{
	ObjectReview:    true,
	ObjectChangelog: true,
}

// ConfirmFunc asks the user a yes/no question and reports the answer.
// Wired to the terminal prompt in lib/ui; tests substitute canned
// answers.
type ConfirmFunc func(prompt string) (bool, error)

// ValidateContext fails fast when the execution context lacks any of
// the capabilities every downstream stage assumes: the parsed command,
// the configuration snapshot, the logger, and the translator.
func ValidateContext() Middleware {
	return func(ctx context.Context, exec *ExecutionContext, next NextFunc) error {
		switch {
		case exec.Command == nil:
			return PreconditionErr("execution context is missing the parsed command")
		case exec.Config == nil:
			return PreconditionErr("execution context is missing the configuration")
		case exec.Logger == nil:
			return PreconditionErr("execution context is missing the logger")
		case exec.Translator == nil:
			return PreconditionErr("execution context is missing the translator")
		}
		return next(ctx)
	}
}

// RequireAIConfig blocks AI-generation objects until the AI provider
// key and model are configured. The error names the exact remediation
// command.
func RequireAIConfig() Middleware {
	return func(ctx context.Context, exec *ExecutionContext, next NextFunc) error {
		if !aiObjects[exec.Command.Object] {
			return next(ctx)
		}
		if exec.Config.AI.APIKey == "" {
			return PreconditionErr("AI provider key is not configured: run 'quartz set config --key=ai.apiKey --value=<your-key>'")
		}
		if exec.Config.AI.Model == "" {
			return PreconditionErr("AI model is not configured: run 'quartz set config --key=ai.model --value=<model>'")
		}
		return next(ctx)
	}
}

// Preconditions runs the context precondition hook attached to the
// command's object, if any. A hook failure (for example "not inside a
// recognized repository") is fatal to this invocation only.
func Preconditions(objects *ObjectResolver) Middleware {
	return func(ctx context.Context, exec *ExecutionContext, next NextFunc) error {
		if hook := objects.Precondition(exec.Command.Object); hook != nil {
			if err := hook(exec); err != nil {
				return PreconditionErr("%s %s: %v", exec.Command.Verb, exec.Command.Object, err)
			}
		}
		return next(ctx)
	}
}

// ConfirmDestructive prompts before commands with a destructive verb,
// unless a force flag is present. Declining short-circuits the chain:
// the handler never runs and no error is raised.
func ConfirmDestructive(confirm ConfirmFunc) Middleware {
	return func(ctx context.Context, exec *ExecutionContext, next NextFunc) error {
		command := exec.Command
		if !command.Verb.IsDestructive() || isTrue(command.Parameters["force"]) {
			return next(ctx)
		}

		prompt := exec.Translator.T("confirm.destructive", map[string]string{
			"verb":   string(command.Verb),
			"object": string(command.Object),
		})
		confirmed, err := confirm(prompt)
		if err != nil {
			return err
		}
		if !confirmed {
			exec.Logger.Info("%s", exec.Translator.T("confirm.aborted", nil))
			return nil
		}
		return next(ctx)
	}
}

// DryRun prints the intended action and short-circuits before the
// handler runs when a dry-run flag is present.
func DryRun() Middleware {
	return func(ctx context.Context, exec *ExecutionContext, next NextFunc) error {
		if !isTrue(exec.Command.Parameters["dry-run"]) {
			return next(ctx)
		}
		exec.Logger.Info("%s", exec.Translator.T("dryrun.notice", map[string]string{
			"verb":   string(exec.Command.Verb),
			"object": string(exec.Command.Object),
		}))
		return nil
	}
}

// TranslateErrors catches downstream errors, logs them, attaches a
// remediation hint when a known pattern matches, and re-raises the
// error unchanged.
func TranslateErrors() Middleware {
	return func(ctx context.Context, exec *ExecutionContext, next NextFunc) error {
		err := next(ctx)
		if err == nil {
			return nil
		}
		exec.Logger.Error("%v", err)
		if hint := remediationHint(err.Error()); hint != "" {
			exec.Logger.Info("hint: %s", hint)
		}
		return err
	}
}

// remediationHint pattern-matches known failure substrings to a hint.
// Returns "" when nothing matches; the raw message then stands alone.
func remediationHint(message string) string {
	lowered := strings.ToLower(message)
	switch {
	case strings.Contains(lowered, "no such file") || strings.Contains(lowered, "file not found"):
		return "check that the path exists and is spelled correctly"
	case strings.Contains(lowered, "permission denied"):
		return "check file permissions, or rerun with appropriate access"
	case strings.Contains(lowered, "network") || strings.Contains(lowered, "connection refused") || strings.Contains(lowered, "timeout"):
		return "check your network connection and retry"
	case strings.Contains(lowered, "unauthorized") || strings.Contains(lowered, "token") || strings.Contains(lowered, "auth"):
		return "check your credentials: run 'quartz show config' to inspect the configured tokens"
	}
	return ""
}

// LogExecution logs chain entry and completion with the elapsed
// duration from the monotonic clock.
func LogExecution() Middleware {
	return func(ctx context.Context, exec *ExecutionContext, next NextFunc) error {
		command := exec.Command
		exec.Logger.Debug("executing %s %s", command.Verb, command.Object)
		start := time.Now()
		err := next(ctx)
		exec.Logger.Debug("completed %s %s in %s", command.Verb, command.Object, time.Since(start))
		return err
	}
}

// WarnSlow logs a warning when the downstream chain took longer than
// [SlowThreshold]. It never pre-empts anything.
func WarnSlow() Middleware {
	return func(ctx context.Context, exec *ExecutionContext, next NextFunc) error {
		start := time.Now()
		err := next(ctx)
		if elapsed := time.Since(start); elapsed > SlowThreshold {
			exec.Logger.Warn("%s %s took %s", exec.Command.Verb, exec.Command.Object, elapsed.Round(time.Millisecond))
		}
		return err
	}
}

// DefaultChain composes the built-in middleware in their contractual
// order on a fresh executor.
func DefaultChain(objects *ObjectResolver, confirm ConfirmFunc) *Executor {
	executor := NewExecutor()
	executor.Use(ValidateContext())
	executor.Use(RequireAIConfig())
	executor.Use(Preconditions(objects))
	executor.Use(ConfirmDestructive(confirm))
	executor.Use(DryRun())
	executor.Use(TranslateErrors())
	executor.Use(LogExecution())
	executor.Use(WarnSlow())
	return executor
}

// isTrue reports whether a parameter value is boolean true.
func isTrue(value any) bool {
	b, ok := value.(bool)
	return ok && b
}
