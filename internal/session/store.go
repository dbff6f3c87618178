// Package session owns the collection of connection profiles and the
// active profile.
package session

import (
	"strings"

	"adminforge/internal/models"

	"github.com/google/uuid"
)

// Store keeps profiles in insertion order. It is driven from the single
// UI goroutine, so no locking is needed.
type Store struct {
	profiles []models.SessionConfig
	active   models.SessionConfig
}

// NewStore seeds the store with the built-in default profile.
func NewStore() *Store {
	def := models.DefaultConfig()
	return &Store{
		profiles: []models.SessionConfig{def},
		active:   def,
	}
}

// List returns a copy of the profiles in insertion order.
func (s *Store) List() []models.SessionConfig {
	out := make([]models.SessionConfig, len(s.profiles))
	copy(out, s.profiles)
	return out
}

// Active returns the currently selected configuration.
func (s *Store) Active() models.SessionConfig {
	return s.active
}

// Create appends a fresh profile with default field values and a
// distinguishing name. The active profile does not change.
func (s *Store) Create() models.SessionConfig {
	cfg := models.DefaultConfig()
	cfg.ID = uuid.NewString()
	cfg.Name = "Koneksi Baru"
	s.profiles = append(s.profiles, cfg)
	return cfg
}

// Update replaces the profile matching cfg.ID. A missing id is a no-op and
// returns false. If the edited profile is the active one, the active
// configuration picks up the new values.
func (s *Store) Update(cfg models.SessionConfig) bool {
	for i := range s.profiles {
		if s.profiles[i].ID == cfg.ID {
			s.profiles[i] = cfg
			if s.active.ID == cfg.ID {
				s.active = cfg
			}
			return true
		}
	}
	return false
}

// Delete removes the profile with the given id. Deleting the last remaining
// profile is refused so the collection is never empty.
func (s *Store) Delete(id string) bool {
	if len(s.profiles) <= 1 {
		return false
	}
	for i := range s.profiles {
		if s.profiles[i].ID == id {
			s.profiles = append(s.profiles[:i], s.profiles[i+1:]...)
			return true
		}
	}
	return false
}

// Select makes cfg the active configuration. The value need not be a saved
// member; selecting an edited-but-unsaved draft is allowed.
func (s *Store) Select(cfg models.SessionConfig) {
	s.active = cfg
}

// Find returns the stored profile with the given id, or false.
func (s *Store) Find(id string) (models.SessionConfig, bool) {
	for i := range s.profiles {
		if s.profiles[i].ID == id {
			return s.profiles[i], true
		}
	}
	return models.SessionConfig{}, false
}

// ValidName reports whether a display name passes the form's required-field
// check. Kept here so the rule is shared by every edit surface.
func ValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}
