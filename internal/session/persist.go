package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"adminforge/internal/models"
)

const (
	DefaultConfigDir      = ".config/adminforge"
	DefaultConfigFileName = "connections.json"
	defaultFilePerms      = 0600
)

// fileState is the on-disk shape of the store.
type fileState struct {
	Profiles []models.SessionConfig `json:"profiles"`
	ActiveID string                 `json:"activeId"`
}

// GetDefaultConfigPath returns ~/.config/adminforge/connections.json,
// creating the directory when needed.
func GetDefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not get home directory: %v", err)
	}

	configDir := filepath.Join(homeDir, DefaultConfigDir)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("could not create config directory: %v", err)
	}

	return filepath.Join(configDir, DefaultConfigFileName), nil
}

// Load reads saved profiles from path. A missing file leaves the seeded
// default in place and writes it out, so a cold start always persists
// exactly one profile.
func (s *Store) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s.Save(path)
		}
		return fmt.Errorf("failed to read config file: %v", err)
	}

	var state fileState
	if err := json.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("failed to parse config file: %v", err)
	}
	if len(state.Profiles) == 0 {
		// Never load an empty collection; keep the seeded default.
		return nil
	}

	s.profiles = state.Profiles
	s.active = state.Profiles[0]
	for _, p := range state.Profiles {
		if p.ID == state.ActiveID {
			s.active = p
			break
		}
	}
	return nil
}

// Save writes the profiles and active id to path.
func (s *Store) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %v", err)
	}

	state := fileState{Profiles: s.profiles, ActiveID: s.active.ID}
	data, err := json.MarshalIndent(state, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %v", err)
	}

	if err := os.WriteFile(path, data, defaultFilePerms); err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}
	return nil
}
