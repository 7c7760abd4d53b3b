// Package auth implements the static bearer-token gate for uploads.
package auth

import (
	"crypto/subtle"
	"strings"
)

const bearerPrefix = "Bearer "

// Gate authorizes requests against a single shared access token.
// When enabled without a configured token it fails closed.
type Gate struct {
	enabled bool
	token   string
}

// NewGate creates a gate from the resolved auth configuration.
func NewGate(enabled bool, token string) *Gate {
	return &Gate{enabled: enabled, token: token}
}

// Enabled reports whether the gate performs any checking at all.
func (g *Gate) Enabled() bool {
	return g.enabled
}

// Allows reports whether the given Authorization header value is acceptable.
// The header must carry the "Bearer " prefix; the remainder is trimmed and
// compared in constant time against the configured token.
func (g *Gate) Allows(authHeader string) bool {
	if !g.enabled {
		return true
	}
	if strings.TrimSpace(g.token) == "" {
		return false
	}
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return false
	}
	presented := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
	return subtle.ConstantTimeCompare([]byte(presented), []byte(g.token)) == 1
}
