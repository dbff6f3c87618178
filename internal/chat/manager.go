// Package chat owns the one live conversation with the assistant. The
// conversation is bound to the active connection profile; switching
// profiles discards it and starts over.
package chat

import (
	"context"

	"adminforge/internal/ai"
	"adminforge/internal/models"
)

// Conversation is one bound chat channel.
type Conversation interface {
	Send(ctx context.Context, message string) (string, error)
}

// Gateway creates conversations. Satisfied by *ai.Client.
type Gateway interface {
	NewConversation(systemInstruction string) *ai.Conversation
}

// Manager tracks the transcript and the single in-flight send. It moves
// between two states: unbound (no conversation yet) and bound to a
// profile snapshot.
type Manager struct {
	newConversation func(models.SessionConfig) Conversation
	conv            Conversation
	cfg             models.SessionConfig
	gen             int
	busy            bool
	transcript      []models.ChatMessage
}

// NewManager builds an unbound manager over the given gateway.
func NewManager(gw Gateway) *Manager {
	return &Manager{
		newConversation: func(cfg models.SessionConfig) Conversation {
			return gw.NewConversation(ai.ChatSystemInstruction(cfg))
		},
	}
}

// newManagerFunc exists for tests that need to substitute the gateway.
func newManagerFunc(create func(models.SessionConfig) Conversation) *Manager {
	return &Manager{newConversation: create}
}

// Bound reports whether a conversation exists.
func (m *Manager) Bound() bool {
	return m.conv != nil
}

// Busy reports whether a send is in flight.
func (m *Manager) Busy() bool {
	return m.busy
}

// Generation identifies the current binding; replies carrying an older
// generation are stale and dropped.
func (m *Manager) Generation() int {
	return m.gen
}

// Transcript returns a copy of the messages in append order.
func (m *Manager) Transcript() []models.ChatMessage {
	out := make([]models.ChatMessage, len(m.transcript))
	copy(out, m.transcript)
	return out
}

// Rebind replaces any existing conversation with a fresh one built from
// cfg. The old transcript is discarded entirely; the new one opens with
// the greeting for the profile.
func (m *Manager) Rebind(cfg models.SessionConfig) {
	m.gen++
	m.cfg = cfg
	m.busy = false
	m.conv = m.newConversation(cfg)
	m.transcript = []models.ChatMessage{
		{Role: models.RoleModel, Text: ai.ChatGreeting(cfg)},
	}
}

// Send appends the user message optimistically and marks the manager
// busy. It hands back the bound conversation and the generation to attach
// to the async gateway call, or ok=false when the send is rejected
// (unbound, busy, or empty input). The caller runs conv.Send off the UI
// loop and feeds the outcome to Resolve.
func (m *Manager) Send(text string) (conv Conversation, gen int, ok bool) {
	if m.conv == nil || m.busy || text == "" {
		return nil, 0, false
	}
	m.transcript = append(m.transcript, models.ChatMessage{Role: models.RoleUser, Text: text})
	m.busy = true
	return m.conv, m.gen, true
}

// Resolve applies the outcome of a send. Replies from before the latest
// rebind are ignored. A failed send appends the fixed localized error
// line; there is no automatic retry.
func (m *Manager) Resolve(gen int, reply string, err error) {
	if gen != m.gen {
		return
	}
	m.busy = false
	if err != nil {
		m.transcript = append(m.transcript, models.ChatMessage{Role: models.RoleModel, Text: ai.MsgChatError})
		return
	}
	m.transcript = append(m.transcript, models.ChatMessage{Role: models.RoleModel, Text: reply})
}
