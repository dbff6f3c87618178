package session

import (
	"path/filepath"
	"testing"

	"adminforge/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStoreSeedsDefault(t *testing.T) {
	s := NewStore()
	require.Len(t, s.List(), 1)
	assert.Equal(t, "Server Utama", s.Active().Name)
	assert.Equal(t, 22, s.Active().Port)
}

func TestCreateAppendsWithFreshID(t *testing.T) {
	s := NewStore()
	before := s.List()

	created := s.Create()
	after := s.List()

	require.Len(t, after, len(before)+1)
	assert.Equal(t, "Koneksi Baru", created.Name)
	for _, p := range before {
		assert.NotEqual(t, p.ID, created.ID)
	}
	// Creating must not switch the active profile.
	assert.Equal(t, before[0].ID, s.Active().ID)
}

func TestUpdateEditsOnlyTarget(t *testing.T) {
	s := NewStore()
	created := s.Create()

	created.Domain = "example.org"
	require.True(t, s.Update(created))

	var hits int
	for _, p := range s.List() {
		if p.Domain == "example.org" {
			hits++
		}
	}
	assert.Equal(t, 1, hits)

	// The active profile was not the edited one and must be untouched.
	assert.Equal(t, "contoh.com", s.Active().Domain)
}

func TestUpdateRefreshesActive(t *testing.T) {
	s := NewStore()
	active := s.Active()
	active.Hostname = "db01"
	require.True(t, s.Update(active))
	assert.Equal(t, "db01", s.Active().Hostname)
}

func TestUpdateMissingIDIsNoop(t *testing.T) {
	s := NewStore()
	ghost := models.DefaultConfig()
	ghost.ID = "missing"
	assert.False(t, s.Update(ghost))
	assert.Len(t, s.List(), 1)
}

func TestDeleteRefusesLastProfile(t *testing.T) {
	s := NewStore()
	only := s.List()[0]

	assert.False(t, s.Delete(only.ID))
	got := s.List()
	require.Len(t, got, 1)
	assert.Equal(t, only.ID, got[0].ID)
}

func TestDeleteRemovesProfile(t *testing.T) {
	s := NewStore()
	created := s.Create()

	require.True(t, s.Delete(created.ID))
	assert.Len(t, s.List(), 1)

	_, found := s.Find(created.ID)
	assert.False(t, found)
}

func TestSelectAcceptsUnsavedDraft(t *testing.T) {
	s := NewStore()
	draft := models.DefaultConfig()
	draft.ID = "draft"
	draft.IPAddress = "10.1.1.1"

	s.Select(draft)
	assert.Equal(t, "10.1.1.1", s.Active().IPAddress)
}

func TestValidName(t *testing.T) {
	assert.True(t, ValidName("Server Utama"))
	assert.False(t, ValidName(""))
	assert.False(t, ValidName("   "))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "connections.json")

	s := NewStore()
	created := s.Create()
	created.Name = "Staging"
	created.IPAddress = "10.0.0.9"
	require.True(t, s.Update(created))
	s.Select(created)
	require.NoError(t, s.Save(path))

	loaded := NewStore()
	require.NoError(t, loaded.Load(path))

	require.Len(t, loaded.List(), 2)
	assert.Equal(t, created.ID, loaded.Active().ID)
	assert.Equal(t, "10.0.0.9", loaded.Active().IPAddress)
}

func TestLoadMissingFileKeepsSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "connections.json")

	s := NewStore()
	require.NoError(t, s.Load(path))
	require.Len(t, s.List(), 1)

	// The seed must have been written out for the next start.
	reloaded := NewStore()
	require.NoError(t, reloaded.Load(path))
	assert.Len(t, reloaded.List(), 1)
}
