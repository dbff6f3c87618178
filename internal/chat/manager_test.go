package chat

import (
	"context"
	"errors"
	"testing"

	"adminforge/internal/ai"
	"adminforge/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConversation struct {
	reply string
	err   error
}

func (f *fakeConversation) Send(_ context.Context, _ string) (string, error) {
	return f.reply, f.err
}

func newTestManager(conv Conversation) *Manager {
	return newManagerFunc(func(models.SessionConfig) Conversation { return conv })
}

func TestRebindStartsFreshTranscript(t *testing.T) {
	m := newTestManager(&fakeConversation{reply: "ok"})
	assert.False(t, m.Bound())

	cfg := models.DefaultConfig()
	m.Rebind(cfg)
	require.True(t, m.Bound())

	msgs := m.Transcript()
	require.Len(t, msgs, 1)
	assert.Equal(t, models.RoleModel, msgs[0].Role)
	assert.Contains(t, msgs[0].Text, cfg.IPAddress)
}

func TestSendAndResolve(t *testing.T) {
	m := newTestManager(&fakeConversation{reply: "jalankan sudo apt update"})
	m.Rebind(models.DefaultConfig())

	conv, gen, ok := m.Send("bagaimana cara update?")
	require.True(t, ok)
	require.NotNil(t, conv)
	assert.True(t, m.Busy())

	reply, err := conv.Send(context.Background(), "bagaimana cara update?")
	m.Resolve(gen, reply, err)

	assert.False(t, m.Busy())
	msgs := m.Transcript()
	require.Len(t, msgs, 3)
	assert.Equal(t, models.RoleUser, msgs[1].Role)
	assert.Equal(t, "jalankan sudo apt update", msgs[2].Text)
}

func TestSendRejectedWhileBusy(t *testing.T) {
	m := newTestManager(&fakeConversation{reply: "ok"})
	m.Rebind(models.DefaultConfig())

	_, _, ok := m.Send("pertama")
	require.True(t, ok)

	_, _, ok = m.Send("kedua")
	assert.False(t, ok)

	// Only the first user message was appended.
	var users int
	for _, msg := range m.Transcript() {
		if msg.Role == models.RoleUser {
			users++
		}
	}
	assert.Equal(t, 1, users)
}

func TestSendRejectedWhenUnbound(t *testing.T) {
	m := newTestManager(&fakeConversation{})
	_, _, ok := m.Send("halo")
	assert.False(t, ok)
}

func TestResolveFailureAppendsFixedMessage(t *testing.T) {
	m := newTestManager(&fakeConversation{err: errors.New("quota exceeded")})
	m.Rebind(models.DefaultConfig())

	_, gen, ok := m.Send("halo")
	require.True(t, ok)

	m.Resolve(gen, "", errors.New("quota exceeded"))
	msgs := m.Transcript()
	assert.Equal(t, ai.MsgChatError, msgs[len(msgs)-1].Text)
	assert.False(t, m.Busy())
}

func TestStaleReplyAfterRebindIsDropped(t *testing.T) {
	m := newTestManager(&fakeConversation{reply: "stale"})
	m.Rebind(models.DefaultConfig())

	_, gen, ok := m.Send("pertanyaan lama")
	require.True(t, ok)

	// Profile switch invalidates the outstanding send.
	next := models.DefaultConfig()
	next.ID = "p2"
	next.IPAddress = "10.9.9.9"
	m.Rebind(next)

	m.Resolve(gen, "stale", nil)

	msgs := m.Transcript()
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0].Text, "10.9.9.9")
	assert.False(t, m.Busy())
}

func TestTranscriptIsACopy(t *testing.T) {
	m := newTestManager(&fakeConversation{reply: "ok"})
	m.Rebind(models.DefaultConfig())

	msgs := m.Transcript()
	msgs[0].Text = "mutated"
	assert.NotEqual(t, "mutated", m.Transcript()[0].Text)
}
