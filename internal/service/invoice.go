package service

import (
	"context"
	"fmt"
	"log/slog"

	"bundle-invoice-demo/internal/client"
	"bundle-invoice-demo/internal/model"
	"bundle-invoice-demo/internal/pricing"
	"bundle-invoice-demo/internal/repository"
	"bundle-invoice-demo/internal/store"
)

type InvoiceResult struct {
	InvoiceID       string
	InvoiceURL      string
	Total           string
	DiscountPercent int
}

type InvoiceService interface {
	CreateInvoice(ctx context.Context, bundle *model.Bundle) (*InvoiceResult, error)
	CreateInvoiceFromToken(ctx context.Context, token string) (*InvoiceResult, error)
}

type invoiceServiceImpl struct {
	stripeClient client.StripeClient
	tokens       *store.TokenStore
	invoiceRepo  repository.InvoiceRepository
	logger       *slog.Logger
}

func NewInvoiceService(
	stripeClient client.StripeClient,
	tokens *store.TokenStore,
	invoiceRepo repository.InvoiceRepository,
	logger *slog.Logger,
) InvoiceService {
	return &invoiceServiceImpl{
		stripeClient: stripeClient,
		tokens:       tokens,
		invoiceRepo:  invoiceRepo,
		logger:       logger,
	}
}

func (s *invoiceServiceImpl) CreateInvoiceFromToken(ctx context.Context, token string) (*InvoiceResult, error) {
	bundle, ok := s.tokens.Take(token)
	if !ok {
		return nil, ErrInvalidToken
	}
	return s.CreateInvoice(ctx, &bundle)
}

func (s *invoiceServiceImpl) CreateInvoice(ctx context.Context, bundle *model.Bundle) (*InvoiceResult, error) {
	if err := validateBundle(bundle); err != nil {
		return nil, err
	}

	products := make([]model.Product, len(bundle.SelectedProducts))
	for i, product := range bundle.SelectedProducts {
		priceID, ok := pricing.ResolvePriceID(product.Name)
		if !ok {
			return nil, &UnknownProductError{Name: product.Name}
		}
		product.PriceID = priceID
		products[i] = product
	}

	subtotal := bundle.Subtotal()
	// recomputed server-side; any discount the caller submitted is ignored
	discountPercent := pricing.DiscountPercent(subtotal)

	customerName := bundle.CustomerName
	if customerName == "" {
		customerName = "Customer"
	}

	s.logger.Info("creating invoice",
		"customer", bundle.CustomerEmail,
		"products", len(products),
		"subtotal", subtotal,
		"discount_percent", discountPercent,
	)

	customerID, err := s.stripeClient.FindOrCreateCustomer(ctx, bundle.CustomerEmail, customerName)
	if err != nil {
		return nil, fmt.Errorf("find or create customer: %w", err)
	}

	invoiceID, err := s.stripeClient.CreateDraftInvoice(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("create draft invoice: %w", err)
	}

	for _, product := range products {
		if err := s.stripeClient.AddInvoiceItem(ctx, customerID, invoiceID, product.PriceID); err != nil {
			return nil, fmt.Errorf("add line item %q: %w", product.Name, err)
		}
	}

	if discountPercent > 0 {
		couponID, err := s.stripeClient.CreateCoupon(ctx, discountPercent)
		if err != nil {
			return nil, fmt.Errorf("create coupon: %w", err)
		}
		if err := s.stripeClient.AttachDiscount(ctx, invoiceID, couponID); err != nil {
			return nil, fmt.Errorf("attach discount: %w", err)
		}
	}

	finalized, err := s.stripeClient.FinalizeInvoice(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("finalize invoice: %w", err)
	}

	if err := s.invoiceRepo.Create(ctx, &model.InvoiceRecord{
		InvoiceID:       finalized.ID,
		CustomerEmail:   bundle.CustomerEmail,
		Subtotal:        subtotal,
		DiscountPercent: discountPercent,
		Total:           finalized.Total,
		HostedURL:       finalized.HostedURL,
	}); err != nil {
		// the invoice already exists on stripe; losing the audit row must
		// not fail the request
		s.logger.Warn("record invoice", "invoice_id", finalized.ID, "error", err)
	}

	s.logger.Info("invoice finalized", "invoice_id", finalized.ID, "total", finalized.Total)

	return &InvoiceResult{
		InvoiceID:       finalized.ID,
		InvoiceURL:      finalized.HostedURL,
		Total:           finalized.Total,
		DiscountPercent: discountPercent,
	}, nil
}
