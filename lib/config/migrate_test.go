// Copyright 2026 The Quartz Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/tidwall/gjson"
)

func TestMigrate_V1FlatKeys(t *testing.T) {
	v1 := []byte(`{
  "version": 1,
  "apiKey": "sk-old",
  "model": "gpt-4",
  "provider": "openai",
  "language": "ja"
}`)

	migrated, err := Migrate(v1)
	if err != nil {
		t.Fatalf("Migrate() = %v", err)
	}

	checks := map[string]string{
		"version":     "2",
		"ai.apiKey":   "sk-old",
		"ai.model":    "gpt-4",
		"ai.provider": "openai",
		"ui.language": "ja",
		"ui.color":    "true",
	}
	for path, want := range checks {
		if got := gjson.GetBytes(migrated, path).String(); got != want {
			t.Errorf("%s = %q, want %q", path, got, want)
		}
	}
	for _, gone := range []string{"apiKey", "model", "provider", "language"} {
		if gjson.GetBytes(migrated, gone).Exists() {
			t.Errorf("flat key %q survived the migration", gone)
		}
	}

	// The migrated document must unmarshal into the current layout.
	var cfg Config
	if err := json.Unmarshal(migrated, &cfg); err != nil {
		t.Fatalf("Unmarshal(migrated) = %v", err)
	}
	if cfg.AI.APIKey != "sk-old" || cfg.UI.Language != "ja" {
		t.Errorf("cfg = %+v, want the migrated values", cfg)
	}
}

func TestMigrate_UnversionedTreatedAsV1(t *testing.T) {
	migrated, err := Migrate([]byte(`{"model": "gpt-4"}`))
	if err != nil {
		t.Fatalf("Migrate() = %v", err)
	}
	if got := gjson.GetBytes(migrated, "ai.model").String(); got != "gpt-4" {
		t.Errorf("ai.model = %q, want gpt-4", got)
	}
	if got := gjson.GetBytes(migrated, "version").Int(); got != 2 {
		t.Errorf("version = %d, want 2", got)
	}
}

func TestMigrate_CurrentVersionPassesThrough(t *testing.T) {
	current := []byte(`{"version": 2, "ai": {"model": "gpt-4o"}}`)
	migrated, err := Migrate(current)
	if err != nil {
		t.Fatalf("Migrate() = %v", err)
	}
	if string(migrated) != string(current) {
		t.Errorf("Migrate() rewrote a current document:\n%s", migrated)
	}
}

func TestMigrate_NewerVersionRejected(t *testing.T) {
	_, err := Migrate([]byte(`{"version": 99}`))
	if err == nil {
		t.Fatal("Migrate() accepted a future version")
	}
	if !strings.Contains(err.Error(), "newer") {
		t.Errorf("err = %q, want a newer-than-supported message", err)
	}
}

func TestMigrate_NegativeVersionRejected(t *testing.T) {
	// Must return promptly: an unhandled past version once looped
	// forever instead of erroring.
	_, err := Migrate([]byte(`{"version": -1}`))
	if err == nil {
		t.Fatal("Migrate() accepted a negative version")
	}
	if !strings.Contains(err.Error(), "not recognized") {
		t.Errorf("err = %q, want an unrecognized-version message", err)
	}
}

func TestMigrate_InvalidJSON(t *testing.T) {
	if _, err := Migrate([]byte("{broken")); err == nil {
		t.Fatal("Migrate() accepted invalid JSON")
	}
}

func TestMigrate_V1ColorNotClobbered(t *testing.T) {
	migrated, err := Migrate([]byte(`{"version": 1, "ui": {"color": false}}`))
	if err != nil {
		t.Fatalf("Migrate() = %v", err)
	}
	if gjson.GetBytes(migrated, "ui.color").Bool() {
		t.Error("migration overwrote an explicit ui.color=false")
	}
}
