// Copyright 2026 The Quartz Authors
// SPDX-License-Identifier: Apache-2.0

// Package i18n provides the display-string tables for the quartz CLI.
// Locale tables are YAML files embedded in the binary; lookup is by
// dotted key with optional {name} interpolation. A missing key
// returns the key itself — lookup never fails, so callers can use
// keys inline without guarding.
package i18n

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFiles embed.FS

// DefaultLocale is used when the configured language has no table.
const DefaultLocale = "en"

// Translator resolves message keys against one locale table, falling
// back to the default locale and finally to the key itself.
type Translator struct {
	locale   string
	table    map[string]string
	fallback map[string]string
}

// New loads the table for the given locale. An unknown locale is not
// an error: lookups then resolve purely through the default table.
func New(locale string) (*Translator, error) {
	fallback, err := loadTable(DefaultLocale)
	if err != nil {
		return nil, fmt.Errorf("i18n: loading default locale: %w", err)
	}

	translator := &Translator{locale: locale, fallback: fallback}
	if locale == "" || locale == DefaultLocale {
		translator.table = fallback
		return translator, nil
	}

	table, err := loadTable(locale)
	if err != nil {
		translator.table = fallback
		return translator, nil
	}
	translator.table = table
	return translator, nil
}

// Locale returns the locale this translator was built for.
func (t *Translator) Locale() string {
	return t.locale
}

// T resolves key and interpolates {name} placeholders from vars. A
// key missing from both the locale and default tables is returned
// unchanged.
func (t *Translator) T(key string, vars map[string]string) string {
	message, ok := t.table[key]
	if !ok {
		message, ok = t.fallback[key]
	}
	if !ok {
		return key
	}

	for name, value := range vars {
		message = strings.ReplaceAll(message, "{"+name+"}", value)
	}
	return message
}

// loadTable reads and flattens one embedded locale file. Nested YAML
// mappings flatten to dotted keys ("confirm: {aborted: ...}" becomes
// "confirm.aborted").
func loadTable(locale string) (map[string]string, error) {
	data, err := localeFiles.ReadFile("locales/" + locale + ".yaml")
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing locale %s: %w", locale, err)
	}

	table := make(map[string]string)
	flatten("", raw, table)
	return table, nil
}

func flatten(prefix string, raw map[string]any, table map[string]string) {
	for key, value := range raw {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch v := value.(type) {
		case string:
			table[full] = v
		case map[string]any:
			flatten(full, v, table)
		}
	}
}
