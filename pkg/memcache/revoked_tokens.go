package mem

import (
	"sync"
	"time"
)

// RevokedTokenStore backs sign-out: a token added here is refused by the auth
// middleware until it would have expired anyway. Adding never fails, so
// sign-out always succeeds from the caller's point of view.
type RevokedTokenStore interface {
	Revoke(token string, ttl time.Duration)
	IsRevoked(token string) bool
}

type entry struct {
	expiresAt time.Time
}

type RevokedTokens struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewRevokedTokens() *RevokedTokens {
	return &RevokedTokens{
		data: make(map[string]entry),
	}
}

func (s *RevokedTokens) Revoke(token string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[token] = entry{
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *RevokedTokens) IsRevoked(token string) bool {
	s.mu.RLock()
	e, ok := s.data[token]
	s.mu.RUnlock()

	if !ok {
		return false
	}
	if time.Now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.data, token) // cleanup expired
		s.mu.Unlock()
		return false
	}
	return true
}
