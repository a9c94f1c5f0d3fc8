package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"bundle-invoice-demo/internal/model"
	"bundle-invoice-demo/internal/store"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testBundle(email string) *model.Bundle {
	return &model.Bundle{
		CustomerEmail: email,
		SelectedProducts: []model.Product{
			{Name: "Levitate", Price: 10},
			{Name: "Ripples", Price: 10},
		},
	}
}

func newBundleService() BundleService {
	return NewBundleService(store.NewTokenStore(), store.NewVerificationStore(), testLogger())
}

func TestStoreBundleValidation(t *testing.T) {
	svc := newBundleService()
	ctx := context.Background()

	tests := []struct {
		name      string
		bundle    *model.Bundle
		wantField string
	}{
		{"nil bundle", nil, "bundleData"},
		{"missing email", &model.Bundle{SelectedProducts: []model.Product{{Name: "Levitate", Price: 10}}}, "customerEmail"},
		{"empty products", &model.Bundle{CustomerEmail: "a@b.com"}, "selectedProducts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.StoreBundle(ctx, tt.bundle)

			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if validationErr.Field != tt.wantField {
				t.Errorf("got field %q, want %q", validationErr.Field, tt.wantField)
			}
		})
	}
}

func TestStoreBundleIssuesDistinctTokens(t *testing.T) {
	svc := newBundleService()
	ctx := context.Background()

	first, err := svc.StoreBundle(ctx, testBundle("a@b.com"))
	if err != nil {
		t.Fatalf("store bundle: %v", err)
	}
	second, err := svc.StoreBundle(ctx, testBundle("a@b.com"))
	if err != nil {
		t.Fatalf("store bundle: %v", err)
	}

	if first == "" || first == second {
		t.Errorf("expected distinct non-empty tokens, got %q and %q", first, second)
	}
}

func TestMarkVerifiedUnknownToken(t *testing.T) {
	svc := newBundleService()

	err := svc.MarkVerified(context.Background(), "no-such-token", "a@b.com")
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestMarkVerifiedEmailMismatchConsumesToken(t *testing.T) {
	svc := newBundleService()
	ctx := context.Background()

	token, err := svc.StoreBundle(ctx, testBundle("a@b.com"))
	if err != nil {
		t.Fatalf("store bundle: %v", err)
	}

	if err := svc.MarkVerified(ctx, token, "other@b.com"); !errors.Is(err, ErrEmailMismatch) {
		t.Fatalf("expected ErrEmailMismatch, got %v", err)
	}

	// the token was consumed by the mismatched attempt
	if err := svc.MarkVerified(ctx, token, "a@b.com"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken on retry, got %v", err)
	}
}

func TestVerificationRoundTrip(t *testing.T) {
	svc := newBundleService()
	ctx := context.Background()

	token, err := svc.StoreBundle(ctx, testBundle("a@b.com"))
	if err != nil {
		t.Fatalf("store bundle: %v", err)
	}

	if _, verified, err := svc.CheckVerification(ctx, "a@b.com"); err != nil || verified {
		t.Fatalf("expected not verified before completion, got verified=%v err=%v", verified, err)
	}

	if err := svc.MarkVerified(ctx, token, "a@b.com"); err != nil {
		t.Fatalf("mark verified: %v", err)
	}

	bundle, verified, err := svc.CheckVerification(ctx, "a@b.com")
	if err != nil || !verified {
		t.Fatalf("expected verified, got verified=%v err=%v", verified, err)
	}
	if got := bundle.Subtotal(); got != 20 {
		t.Errorf("got subtotal %v, want 20", got)
	}

	// single delivery: the record is gone after the first successful poll
	if _, verified, _ := svc.CheckVerification(ctx, "a@b.com"); verified {
		t.Error("expected second poll to report not verified")
	}
}

func TestCheckVerificationMissingEmail(t *testing.T) {
	svc := newBundleService()

	_, _, err := svc.CheckVerification(context.Background(), "")
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) || validationErr.Field != "email" {
		t.Errorf("expected ValidationError for email, got %v", err)
	}
}
