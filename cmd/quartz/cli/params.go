// Copyright 2026 The Quartz Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ParameterParser tokenizes the arguments remaining after verb and
// object resolution into named parameters and positional operands.
//
// The grammar is scanned left to right:
//
//	--name=value   direct assignment (last write wins)
//	--name         true for a declared boolean parameter; other
//	               declared types consume the next token as their
//	               value; an undeclared name is an unmatched
//	               positional token
//	-x             alias lookup, same value rules as --name
//	anything else  unmatched positional token, order preserved
//
// This parse model is why the grammar is hand-written rather than
// built on a flag library: unknown flags and bare words must fold into
// ordered positional operands instead of failing the parse.
type ParameterParser struct{}

// NewParameterParser returns a parameter parser. The parser is
// stateless; one instance serves every command.
func NewParameterParser() *ParameterParser {
	return &ParameterParser{}
}

// ParameterParseOutput is the result of one scan: accumulated
// validation state, the name-to-value parameter map, and the ordered
// unmatched positional tokens.
type ParameterParseOutput struct {
	Validation ValidationResult
	Parameters map[string]any
	Remaining  []string
}

// Parse scans args against the parameter schema in defs. After the
// scan, defaults are applied and every required parameter still absent
// raises an error naming it.
func (p *ParameterParser) Parse(defs []ParameterDefinition, args []string) ParameterParseOutput {
	output := ParameterParseOutput{
		Validation: OK(),
		Parameters: make(map[string]any),
	}

	for i := 0; i < len(args); i++ {
		token := args[i]

		switch {
		case strings.HasPrefix(token, "--") && strings.Contains(token, "="):
			name, raw, _ := strings.Cut(strings.TrimPrefix(token, "--"), "=")
			p.assign(&output, findDefinition(defs, name), name, raw)

		case strings.HasPrefix(token, "--"):
			name := strings.TrimPrefix(token, "--")
			def := findDefinition(defs, name)
			switch {
			case def == nil:
				output.Remaining = append(output.Remaining, token)
			case def.Type == TypeBoolean:
				output.Parameters[def.Name] = true
			case i+1 < len(args) && !strings.HasPrefix(args[i+1], "-"):
				p.assign(&output, def, def.Name, args[i+1])
				i++
			default:
				output.Validation.AddError(fmt.Sprintf("parameter %q requires a value", def.Name))
			}

		case strings.HasPrefix(token, "-") && len(token) > 1:
			alias := strings.TrimPrefix(token, "-")
			def := findByAlias(defs, alias)
			if def == nil {
				output.Remaining = append(output.Remaining, token)
				continue
			}
			if def.Type == TypeBoolean {
				output.Parameters[def.Name] = true
				continue
			}
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				p.assign(&output, def, def.Name, args[i+1])
				i++
				continue
			}
			output.Validation.AddError(fmt.Sprintf("parameter %q requires a value", def.Name))

		default:
			output.Remaining = append(output.Remaining, token)
		}
	}

	for _, def := range defs {
		if _, present := output.Parameters[def.Name]; present {
			continue
		}
		if def.Default != nil {
			output.Parameters[def.Name] = def.Default
			continue
		}
		if def.Required {
			output.Validation.AddError(fmt.Sprintf("required parameter missing: %s", def.Name))
		}
	}

	return output
}

// assign coerces raw to the definition's type and stores it. Values
// for undeclared names are stored as raw strings. The definition's
// validator, when present, runs on the coerced value.
func (p *ParameterParser) assign(output *ParameterParseOutput, def *ParameterDefinition, name string, raw string) {
	if def == nil {
		output.Parameters[name] = raw
		return
	}

	value, err := coerce(def.Type, raw)
	if err != nil {
		output.Validation.AddError(fmt.Sprintf("parameter %q: %v", def.Name, err))
		return
	}

	if def.Validate != nil {
		if err := def.Validate(value); err != nil {
			output.Validation.AddError(fmt.Sprintf("parameter %q: %v", def.Name, err))
			return
		}
	}
	output.Parameters[def.Name] = value
}

// coerce converts the raw token to the parameter's declared type.
//
// Booleans assigned via --flag=value accept true/false/1/0/yes/no
// (case-insensitive); anything else is an error rather than a string
// that reads as truthy downstream.
func coerce(parameterType ParameterType, raw string) (any, error) {
	switch parameterType {
	case TypeString, "":
		return raw, nil

	case TypeNumber:
		number, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", raw)
		}
		return number, nil

	case TypeBoolean:
		switch strings.ToLower(raw) {
		case "true", "1", "yes":
			return true, nil
		case "false", "0", "no":
			return false, nil
		}
		return nil, fmt.Errorf("%q is not a boolean", raw)

	case TypeArray:
		return strings.Split(raw, ","), nil

	case TypeObject:
		var object map[string]any
		if err := json.Unmarshal([]byte(raw), &object); err != nil {
			return nil, fmt.Errorf("%q is not a JSON object", raw)
		}
		return object, nil
	}
	return nil, fmt.Errorf("unsupported parameter type %q", parameterType)
}

func findDefinition(defs []ParameterDefinition, name string) *ParameterDefinition {
	for i := range defs {
		if defs[i].Name == name {
			return &defs[i]
		}
	}
	return nil
}

func findByAlias(defs []ParameterDefinition, alias string) *ParameterDefinition {
	for i := range defs {
		for _, a := range defs[i].Aliases {
			if a == alias {
				return &defs[i]
			}
		}
	}
	return nil
}
