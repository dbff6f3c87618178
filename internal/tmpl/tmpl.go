// Package tmpl substitutes connection parameters into command templates.
package tmpl

import (
	"strconv"
	"strings"

	"adminforge/internal/models"
)

// The recognized tokens. Anything else wrapped in {{...}} passes through
// untouched.
const (
	TokenIP       = "{{IP}}"
	TokenHostname = "{{HOSTNAME}}"
	TokenUsername = "{{USERNAME}}"
	TokenDomain   = "{{DOMAIN}}"
	TokenPort     = "{{PORT}}"
)

// Placeholders returns the token set in the order the editor toolbar
// presents it.
func Placeholders() []string {
	return []string{TokenIP, TokenDomain, TokenUsername, TokenHostname, TokenPort}
}

// Apply replaces every occurrence of the recognized tokens with the matching
// profile field. Replacement is case-sensitive and single-pass: substituted
// values are never re-scanned, so a field value containing a token-like
// substring is inserted literally.
func Apply(template string, cfg models.SessionConfig) string {
	r := strings.NewReplacer(
		TokenIP, cfg.IPAddress,
		TokenHostname, cfg.Hostname,
		TokenUsername, cfg.Username,
		TokenDomain, cfg.Domain,
		TokenPort, strconv.Itoa(cfg.Port),
	)
	return r.Replace(template)
}
