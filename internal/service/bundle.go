package service

import (
	"context"
	"log/slog"

	"bundle-invoice-demo/internal/model"
	"bundle-invoice-demo/internal/store"
)

type BundleService interface {
	StoreBundle(ctx context.Context, bundle *model.Bundle) (string, error)
	MarkVerified(ctx context.Context, token, email string) error
	CheckVerification(ctx context.Context, email string) (*model.Bundle, bool, error)
}

type bundleServiceImpl struct {
	tokens        *store.TokenStore
	verifications *store.VerificationStore
	logger        *slog.Logger
}

func NewBundleService(
	tokens *store.TokenStore,
	verifications *store.VerificationStore,
	logger *slog.Logger,
) BundleService {
	return &bundleServiceImpl{
		tokens:        tokens,
		verifications: verifications,
		logger:        logger,
	}
}

func validateBundle(bundle *model.Bundle) error {
	if bundle == nil {
		return &ValidationError{Field: "bundleData"}
	}
	if bundle.CustomerEmail == "" {
		return &ValidationError{Field: "customerEmail"}
	}
	if len(bundle.SelectedProducts) == 0 {
		return &ValidationError{Field: "selectedProducts"}
	}
	return nil
}

func (s *bundleServiceImpl) StoreBundle(ctx context.Context, bundle *model.Bundle) (string, error) {
	if err := validateBundle(bundle); err != nil {
		return "", err
	}

	token := s.tokens.Put(*bundle)
	s.logger.Info("stored bundle",
		"customer", bundle.CustomerEmail,
		"products", len(bundle.SelectedProducts),
	)
	return token, nil
}

func (s *bundleServiceImpl) MarkVerified(ctx context.Context, token, email string) error {
	if token == "" {
		return &ValidationError{Field: "token"}
	}
	if email == "" {
		return &ValidationError{Field: "email"}
	}

	bundle, ok := s.tokens.Take(token)
	if !ok {
		return ErrInvalidToken
	}
	if bundle.CustomerEmail != email {
		return ErrEmailMismatch
	}

	s.verifications.MarkVerified(email, bundle)
	s.logger.Info("verification complete", "customer", email)
	return nil
}

func (s *bundleServiceImpl) CheckVerification(ctx context.Context, email string) (*model.Bundle, bool, error) {
	if email == "" {
		return nil, false, &ValidationError{Field: "email"}
	}

	bundle, ok := s.verifications.Poll(email)
	if !ok {
		return nil, false, nil
	}
	return &bundle, true, nil
}
