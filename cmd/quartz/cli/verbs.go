// Copyright 2026 The Quartz Authors
// SPDX-License-Identifier: Apache-2.0

package cli

// Verb is an action token from the closed set of actions the CLI
// understands. The set is fixed at compile time; user input is checked
// against [Verbs] before routing.
type Verb string

const (
	VerbCreate   Verb = "create"
	VerbDelete   Verb = "delete"
	VerbList     Verb = "list"
	VerbShow     Verb = "show"
	VerbSet      Verb = "set"
	VerbGet      Verb = "get"
	VerbGenerate Verb = "generate"
	VerbUse      Verb = "use"
	VerbHelp     Verb = "help"
	VerbVersion  Verb = "version"
)

// Verbs lists every valid verb in display order. Help output and error
// messages enumerate this slice, so the order is stable.
func Verbs() []Verb {
	return []Verb{
		VerbCreate, VerbDelete, VerbList, VerbShow, VerbSet,
		VerbGet, VerbGenerate, VerbUse, VerbHelp, VerbVersion,
	}
}

// IsValidVerb reports whether token is a member of the closed verb set.
func IsValidVerb(token string) bool {
	for _, verb := range Verbs() {
		if string(verb) == token {
			return true
		}
	}
	return false
}

// IsDestructive reports whether the verb may irreversibly remove data.
// Destructive verbs require interactive confirmation unless a force
// flag is present.
func (v Verb) IsDestructive() bool {
	switch v {
	case VerbDelete:
		return true
	}
	return false
}

// IsObjectless reports whether the verb is typed without an object
// token. The parser substitutes [CanonicalObject] for these verbs
// before parameter parsing.
func (v Verb) IsObjectless() bool {
	return v == VerbHelp || v == VerbVersion
}

// CanonicalObject is the object substituted for object-less verbs:
// "quartz help" is routed as "quartz help project".
const CanonicalObject = ObjectProject
