package store

import (
	"strconv"
	"sync"
	"time"

	"bundle-invoice-demo/internal/model"

	"github.com/google/uuid"
)

// TokenTTL is how long an issued verification token stays redeemable.
const TokenTTL = time.Hour

type tokenEntry struct {
	bundle    model.Bundle
	expiresAt time.Time
}

// TokenStore holds pending bundles keyed by single-use opaque tokens.
type TokenStore struct {
	mu      sync.Mutex
	entries map[string]tokenEntry
	now     func() time.Time
}

func NewTokenStore() *TokenStore {
	return &TokenStore{
		entries: make(map[string]tokenEntry),
		now:     time.Now,
	}
}

// Put stores the bundle under a fresh token and returns the token. Expired
// entries are swept on every call; there is no background timer.
func (s *TokenStore) Put(bundle model.Bundle) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked()

	token := uuid.NewString() + strconv.FormatInt(s.now().UnixNano(), 36)
	s.entries[token] = tokenEntry{
		bundle:    bundle,
		expiresAt: s.now().Add(TokenTTL),
	}
	return token
}

// Take atomically reads and deletes the entry for token. A second Take of the
// same token misses, as does an expired entry the sweep has not reached yet.
func (s *TokenStore) Take(token string) (model.Bundle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[token]
	if !ok {
		return model.Bundle{}, false
	}
	delete(s.entries, token)

	if entry.expiresAt.Before(s.now()) {
		return model.Bundle{}, false
	}
	return entry.bundle, true
}

func (s *TokenStore) sweepLocked() {
	now := s.now()
	for token, entry := range s.entries {
		if entry.expiresAt.Before(now) {
			delete(s.entries, token)
		}
	}
}
