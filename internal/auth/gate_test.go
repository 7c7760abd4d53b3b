package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisabledGateAllowsEverything(t *testing.T) {
	g := NewGate(false, "")

	assert.True(t, g.Allows(""))
	assert.True(t, g.Allows("Bearer anything"))
	assert.True(t, g.Allows("garbage"))
}

func TestEnabledGateWithoutTokenFailsClosed(t *testing.T) {
	g := NewGate(true, "")

	assert.False(t, g.Allows(""))
	assert.False(t, g.Allows("Bearer "))
	assert.False(t, g.Allows("Bearer secret"))
}

func TestEnabledGateMatchesToken(t *testing.T) {
	g := NewGate(true, "secret")

	assert.True(t, g.Allows("Bearer secret"))
	assert.False(t, g.Allows("Bearer wrong"))
	assert.False(t, g.Allows(""))
	assert.False(t, g.Allows("secret"))
	assert.False(t, g.Allows("bearer secret"))
	assert.False(t, g.Allows("Basic secret"))
}

func TestTokenWhitespaceIsTrimmed(t *testing.T) {
	g := NewGate(true, "secret")

	assert.True(t, g.Allows("Bearer   secret  "))
	assert.False(t, g.Allows("Bearer sec ret"))
}
