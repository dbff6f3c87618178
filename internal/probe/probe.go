// Package probe checks whether a connection profile points at a live SSH
// server. It performs the handshake only and never authenticates.
package probe

import (
	"fmt"
	"net"
	"strings"
	"time"

	"adminforge/internal/models"

	"golang.org/x/crypto/ssh"
)

const dialTimeout = 5 * time.Second

// Result describes the outcome of one probe.
type Result struct {
	Reachable   bool
	Fingerprint string
	Err         error
}

// Check dials cfg's address and runs the SSH handshake with no auth
// methods. Reaching the authentication stage proves the server is up, so
// an auth failure still counts as reachable; the host key fingerprint is
// captured from the handshake.
func Check(cfg models.SessionConfig) Result {
	var fingerprint string

	sshConfig := &ssh.ClientConfig{
		User: cfg.Username,
		HostKeyCallback: func(hostname string, remote net.Addr, key ssh.PublicKey) error {
			fingerprint = ssh.FingerprintSHA256(key)
			return nil
		},
		Timeout: dialTimeout,
	}

	addr := fmt.Sprintf("%s:%d", cfg.IPAddress, cfg.Port)
	client, err := ssh.Dial("tcp", addr, sshConfig)
	if err == nil {
		// A server that accepts "none" auth; nothing to do with the session.
		client.Close()
	}

	return classify(fingerprint, err)
}

// classify turns the handshake outcome into a Result. Split out so the
// decision logic is testable without a network.
func classify(fingerprint string, err error) Result {
	if err == nil {
		return Result{Reachable: true, Fingerprint: fingerprint}
	}
	// The handshake got far enough to exchange keys and reject our empty
	// auth attempt, which is all the probe needs to know.
	if fingerprint != "" && strings.Contains(err.Error(), "unable to authenticate") {
		return Result{Reachable: true, Fingerprint: fingerprint, Err: err}
	}
	return Result{Reachable: false, Fingerprint: fingerprint, Err: err}
}
