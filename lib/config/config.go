// Copyright 2026 The Quartz Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
)

// CurrentVersion is the config layout version this build reads and
// writes. Older files are migrated forward on load.
const CurrentVersion = 2

// EnvVar names the environment variable that overrides the default
// config path.
const EnvVar = "QUARTZ_CONFIG"

// Config is the resolved configuration snapshot handed to every
// command invocation. Handlers and middleware only ever read it; the
// "set config" handler mutates a copy and calls [Save].
type Config struct {
	// Version is the layout version of the file this snapshot was
	// loaded from, after migration.
	Version int `json:"version"`

	// AI configures the model provider used by generation commands.
	AI AIConfig `json:"ai"`

	// UI configures presentation: language and color.
	UI UIConfig `json:"ui"`

	// Platforms lists the registered hosting platforms (github,
	// gitlab, ...) used by pr commands.
	Platforms []Platform `json:"platforms,omitempty"`

	// Profiles are named AI presets switched with "use profile".
	Profiles []Profile `json:"profiles,omitempty"`

	// ActiveProfile names the profile currently in use, or "".
	ActiveProfile string `json:"activeProfile,omitempty"`
}

// AIConfig holds the model provider credentials and selection.
type AIConfig struct {
	Provider string `json:"provider,omitempty"`
	APIKey   string `json:"apiKey,omitempty"`
	Model    string `json:"model,omitempty"`
	BaseURL  string `json:"baseUrl,omitempty"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Language string `json:"language,omitempty"`
	Color    bool   `json:"color"`
}

// Platform is one registered hosting platform entry.
type Platform struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Token   string `json:"token,omitempty"`
	BaseURL string `json:"baseUrl,omitempty"`
}

// Profile is a named AI preset.
type Profile struct {
	Name     string `json:"name"`
	Provider string `json:"provider,omitempty"`
	Model    string `json:"model,omitempty"`
}

// Default returns the configuration used when no file exists yet.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		AI:      AIConfig{Provider: "openai"},
		UI:      UIConfig{Language: "en", Color: true},
	}
}

// DefaultPath returns ~/.config/quartz/config.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".config", "quartz", "config.json"), nil
}

// ResolvePath picks the config path from the flag value, the
// environment, or the default location, in that order.
func ResolvePath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if env := os.Getenv(EnvVar); env != "" {
		return env, nil
	}
	return DefaultPath()
}

// Load reads, migrates, and unmarshals the config file at path. A
// missing file yields [Default] rather than an error; any other read
// or parse failure is returned.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	stripped := jsonc.ToJSON(data)
	migrated, err := Migrate(stripped)
	if err != nil {
		return nil, fmt.Errorf("migrating config %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(migrated, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.Version = CurrentVersion
	return &cfg, nil
}

// Save writes the config at the current layout version, creating the
// parent directory if needed. Comments from a hand-edited file are
// not preserved.
func Save(path string, cfg *Config) error {
	cfg.Version = CurrentVersion
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

// FindProfile returns the named profile, or nil.
func (c *Config) FindProfile(name string) *Profile {
	for i := range c.Profiles {
		if c.Profiles[i].Name == name {
			return &c.Profiles[i]
		}
	}
	return nil
}
