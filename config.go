package main

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const defaultConfigDir = ".transcript-writer"

// Embedded configuration files
//
//go:embed config/system-prompt.md
var defaultSystemPrompt string

//go:embed config/user-prompt.md
var defaultUserPrompt string

//go:embed config/settings.yaml
var defaultSettings string

// ConfigOverrides allows overriding embedded defaults with file paths
type ConfigOverrides struct {
	SystemPromptPath *string
	UserPromptPath   *string
	SettingsPath     *string
}

// Settings represents the YAML configuration structure
type Settings struct {
	OutputDirectory string `yaml:"output_directory"`
	Generation      struct {
		Model string `yaml:"model"`
	} `yaml:"generation"`
	Transcripts struct {
		Endpoint  string   `yaml:"endpoint"`
		Languages []string `yaml:"languages"`
	} `yaml:"transcripts"`
}

// Config holds configuration and overrides
type Config struct {
	Settings  *Settings
	Overrides *ConfigOverrides
}

// NewConfig creates a new Config with settings and overrides
func NewConfig(overrides *ConfigOverrides) (*Config, error) {
	if err := ensureConfigExists(); err != nil {
		return nil, fmt.Errorf("ensuring config files exist: %w", err)
	}

	settingsPath := getConfigPath("settings.yaml")
	if overrides != nil && overrides.SettingsPath != nil {
		settingsPath = *overrides.SettingsPath
	}

	settings, err := loadSettings(settingsPath)
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	return &Config{
		Settings:  settings,
		Overrides: overrides,
	}, nil
}

// GetSystemPrompt returns the system prompt template (from override file or embedded)
func (c *Config) GetSystemPrompt() string {
	if c.Overrides != nil && c.Overrides.SystemPromptPath != nil {
		if content, err := os.ReadFile(*c.Overrides.SystemPromptPath); err == nil {
			return string(content)
		}
	}
	return defaultSystemPrompt
}

// GetUserPrompt returns the user prompt template (from override file or embedded)
func (c *Config) GetUserPrompt() string {
	if c.Overrides != nil && c.Overrides.UserPromptPath != nil {
		if content, err := os.ReadFile(*c.Overrides.UserPromptPath); err == nil {
			return string(content)
		}
	}
	return defaultUserPrompt
}

// loadSettings loads settings from a YAML file, falling back to the embedded
// defaults when the file does not exist. Missing fields get defaults too so a
// partial settings file stays valid.
func loadSettings(settingsPath string) (*Settings, error) {
	data, err := os.ReadFile(settingsPath)
	if err != nil {
		data = []byte(defaultSettings)
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parsing settings YAML: %w", err)
	}

	if settings.OutputDirectory == "" {
		settings.OutputDirectory = "articles"
	}
	if settings.Generation.Model == "" {
		settings.Generation.Model = "gemini-3-pro-preview"
	}
	if settings.Transcripts.Endpoint == "" {
		settings.Transcripts.Endpoint = "https://www.youtube.com/api/timedtext"
	}
	if len(settings.Transcripts.Languages) == 0 {
		settings.Transcripts.Languages = []string{"en", "en-US", "en-GB"}
	}

	return &settings, nil
}

// getConfigPath returns the path to a config file in the .transcript-writer directory
func getConfigPath(filename string) string {
	return filepath.Join(defaultConfigDir, filename)
}

// ensureConfigExists creates the config directory and writes settings.yaml if needed
func ensureConfigExists() error {
	if err := os.MkdirAll(defaultConfigDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	// Write settings.yaml - this should be customized by users
	settingsFile := getConfigPath("settings.yaml")
	if _, err := os.Stat(settingsFile); os.IsNotExist(err) {
		if err := os.WriteFile(settingsFile, []byte(defaultSettings), 0644); err != nil {
			return fmt.Errorf("writing settings.yaml: %w", err)
		}
	}

	return nil
}
