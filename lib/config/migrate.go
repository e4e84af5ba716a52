// Copyright 2026 The Quartz Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Migrate rewrites an older config document forward to
// [CurrentVersion], one version step at a time, and returns the
// migrated JSON. Documents already at the current version pass
// through unchanged. The input must be plain JSON (comments already
// stripped).
func Migrate(data []byte) ([]byte, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("config is not valid JSON")
	}

	version := int(gjson.GetBytes(data, "version").Int())
	if version > CurrentVersion {
		return nil, fmt.Errorf("config version %d is newer than this build supports (%d)", version, CurrentVersion)
	}

	var err error
	for version < CurrentVersion {
		switch version {
		case 0, 1:
			// v1 (and unversioned v0) kept AI and UI settings as flat
			// top-level keys. v2 moved them under "ai" and "ui"
			// sections.
			data, err = migrateV1(data)
			version = 2
		default:
			return nil, fmt.Errorf("config version %d is not recognized", version)
		}
		if err != nil {
			return nil, fmt.Errorf("migrating from version %d: %w", version, err)
		}
	}
	return data, nil
}

// migrateV1 lifts the flat v1 keys into their v2 sections.
func migrateV1(data []byte) ([]byte, error) {
	moves := map[string]string{
		"apiKey":   "ai.apiKey",
		"model":    "ai.model",
		"provider": "ai.provider",
		"baseUrl":  "ai.baseUrl",
		"language": "ui.language",
	}

	var err error
	for from, to := range moves {
		value := gjson.GetBytes(data, from)
		if !value.Exists() {
			continue
		}
		data, err = sjson.SetBytes(data, to, value.Value())
		if err != nil {
			return nil, err
		}
		data, err = sjson.DeleteBytes(data, from)
		if err != nil {
			return nil, err
		}
	}

	// v1 had no color setting; default it on rather than leaving the
	// zero value to disable color for migrated users.
	if !gjson.GetBytes(data, "ui.color").Exists() {
		data, err = sjson.SetBytes(data, "ui.color", true)
		if err != nil {
			return nil, err
		}
	}

	return sjson.SetBytes(data, "version", 2)
}
