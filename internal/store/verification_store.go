package store

import (
	"sync"
	"time"

	"bundle-invoice-demo/internal/model"
)

type verificationRecord struct {
	verified   bool
	bundle     model.Bundle
	verifiedAt time.Time
}

// VerificationStore tracks which customer emails completed email verification.
type VerificationStore struct {
	mu      sync.Mutex
	records map[string]verificationRecord
}

func NewVerificationStore() *VerificationStore {
	return &VerificationStore{
		records: make(map[string]verificationRecord),
	}
}

// MarkVerified overwrites any existing record for email.
func (s *VerificationStore) MarkVerified(email string, bundle model.Bundle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[email] = verificationRecord{
		verified:   true,
		bundle:     bundle,
		verifiedAt: time.Now(),
	}
}

// Poll delivers the bundle exactly once after verification. A verified record
// is deleted on read; absent or unverified records leave the store untouched,
// so a poller cannot tell "never submitted" from "pending".
func (s *VerificationStore) Poll(email string) (model.Bundle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[email]
	if !ok || !record.verified {
		return model.Bundle{}, false
	}
	delete(s.records, email)
	return record.bundle, true
}
