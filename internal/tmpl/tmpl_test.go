package tmpl

import (
	"testing"

	"adminforge/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestApplyNoTokens(t *testing.T) {
	cfg := models.DefaultConfig()
	in := "sudo apt update && sudo apt upgrade -y"
	assert.Equal(t, in, Apply(in, cfg))
}

func TestApplyAllTokens(t *testing.T) {
	cfg := models.SessionConfig{
		IPAddress: "10.0.0.5",
		Hostname:  "web01",
		Username:  "deploy",
		Domain:    "example.org",
		Port:      2222,
	}

	got := Apply("ssh -p {{PORT}} {{USERNAME}}@{{IP}} # {{HOSTNAME}}.{{DOMAIN}}", cfg)
	assert.Equal(t, "ssh -p 2222 deploy@10.0.0.5 # web01.example.org", got)
}

func TestApplyDefaultProfileScenario(t *testing.T) {
	got := Apply("ssh -p {{PORT}} {{USERNAME}}@{{IP}}", models.DefaultConfig())
	assert.Equal(t, "ssh -p 22 admin@192.168.1.10", got)
}

func TestApplyGlobalReplacement(t *testing.T) {
	cfg := models.DefaultConfig()
	got := Apply("{{IP}}-{{PORT}} and again {{IP}}", cfg)
	assert.Equal(t, "192.168.1.10-22 and again 192.168.1.10", got)
}

func TestApplyUnknownTokensPassThrough(t *testing.T) {
	cfg := models.DefaultConfig()
	assert.Equal(t, "echo {{NOPE}} {{ip}}", Apply("echo {{NOPE}} {{ip}}", cfg))
}

func TestApplyNonRecursive(t *testing.T) {
	cfg := models.DefaultConfig()
	cfg.Domain = "{{IP}}"

	// The substituted value must be inserted literally, not expanded.
	assert.Equal(t, "host {{IP}}", Apply("host {{DOMAIN}}", cfg))
}

func TestApplyIdempotentWithoutTokens(t *testing.T) {
	cfg := models.DefaultConfig()
	once := Apply("curl http://{{DOMAIN}}:{{PORT}}/", cfg)
	assert.Equal(t, once, Apply(once, cfg))
}
