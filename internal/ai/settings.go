package ai

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const settingsFileName = "settings.json"

// Settings holds the gateway configuration saved next to the connection
// profiles. The GEMINI_API_KEY environment variable always wins over the
// file so the key never has to be written to disk.
type Settings struct {
	APIKey    string `json:"api_key"`
	FastModel string `json:"fast_model"`
	DeepModel string `json:"deep_model"`
}

// DefaultSettings returns the model pair used when the settings file is
// absent or partial.
func DefaultSettings() *Settings {
	return &Settings{
		FastModel: "gemini-2.0-flash",
		DeepModel: "gemini-1.5-pro",
	}
}

// LoadSettings reads settings from ~/.config/adminforge/settings.json,
// creating the file with defaults when missing.
func LoadSettings() (*Settings, error) {
	path, err := settingsPath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		s := DefaultSettings()
		if err := SaveSettings(s); err != nil {
			return nil, fmt.Errorf("failed to create default settings: %v", err)
		}
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %v", err)
	}

	s := DefaultSettings()
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %v", err)
	}
	if s.FastModel == "" {
		s.FastModel = DefaultSettings().FastModel
	}
	if s.DeepModel == "" {
		s.DeepModel = DefaultSettings().DeepModel
	}
	return s, nil
}

// SaveSettings writes settings to the config directory.
func SaveSettings(s *Settings) error {
	path, err := settingsPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %v", err)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %v", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write settings file: %v", err)
	}
	return nil
}

// ResolveAPIKey prefers the environment over the settings file.
func (s *Settings) ResolveAPIKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return s.APIKey
}

func settingsPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %v", err)
	}
	return filepath.Join(homeDir, ".config", "adminforge", settingsFileName), nil
}
