package store

import (
	"testing"
)

func TestPollBeforeMarkVerified(t *testing.T) {
	s := NewVerificationStore()

	if _, ok := s.Poll("a@b.com"); ok {
		t.Error("expected poll before verification to report not verified")
	}
}

func TestPollConsumesRecord(t *testing.T) {
	s := NewVerificationStore()
	s.MarkVerified("a@b.com", testBundle("a@b.com"))

	bundle, ok := s.Poll("a@b.com")
	if !ok {
		t.Fatal("expected first poll after verification to succeed")
	}
	if bundle.CustomerEmail != "a@b.com" {
		t.Errorf("got bundle for %q, want a@b.com", bundle.CustomerEmail)
	}

	if _, ok := s.Poll("a@b.com"); ok {
		t.Error("expected second poll to report not verified")
	}
}

func TestMarkVerifiedOverwrites(t *testing.T) {
	s := NewVerificationStore()

	first := testBundle("a@b.com")
	second := testBundle("a@b.com")
	second.SelectedProducts = append(second.SelectedProducts, second.SelectedProducts[0])

	s.MarkVerified("a@b.com", first)
	s.MarkVerified("a@b.com", second)

	bundle, ok := s.Poll("a@b.com")
	if !ok {
		t.Fatal("expected poll to succeed")
	}
	if len(bundle.SelectedProducts) != 2 {
		t.Errorf("expected the later record to win, got %d products", len(bundle.SelectedProducts))
	}
}
