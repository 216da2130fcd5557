package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRevokeAndCheck(t *testing.T) {
	store := NewRevokedTokens()

	assert.False(t, store.IsRevoked("tok"))

	store.Revoke("tok", time.Hour)
	assert.True(t, store.IsRevoked("tok"))
	assert.False(t, store.IsRevoked("other"))
}

func TestExpiredRevocationForgotten(t *testing.T) {
	store := NewRevokedTokens()

	store.Revoke("tok", -time.Second)
	assert.False(t, store.IsRevoked("tok"))
}
