package probe

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyCleanHandshake(t *testing.T) {
	r := classify("SHA256:abc", nil)
	assert.True(t, r.Reachable)
	assert.Equal(t, "SHA256:abc", r.Fingerprint)
	assert.NoError(t, r.Err)
}

func TestClassifyAuthRejectionIsReachable(t *testing.T) {
	err := errors.New("ssh: handshake failed: ssh: unable to authenticate, attempted methods [none]")
	r := classify("SHA256:abc", err)
	assert.True(t, r.Reachable)
	assert.Equal(t, "SHA256:abc", r.Fingerprint)
}

func TestClassifyDialFailure(t *testing.T) {
	r := classify("", errors.New("dial tcp 192.0.2.1:22: i/o timeout"))
	assert.False(t, r.Reachable)
	assert.Empty(t, r.Fingerprint)
	assert.Error(t, r.Err)
}

func TestClassifyAuthErrorWithoutKeyIsUnreachable(t *testing.T) {
	// No host key captured means the handshake never completed.
	r := classify("", errors.New("ssh: unable to authenticate"))
	assert.False(t, r.Reachable)
}
