package dto

import "bundle-invoice-demo/internal/model"

type StoreBundleRequest struct {
	CustomerEmail    string          `json:"customerEmail"`
	CustomerName     string          `json:"customerName"`
	SelectedProducts []model.Product `json:"selectedProducts"`
}

type StoreBundleResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

type MarkVerifiedRequest struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type CheckVerificationRequest struct {
	Email string `json:"email"`
}

type CheckVerificationResponse struct {
	Verified   bool          `json:"verified"`
	BundleData *model.Bundle `json:"bundleData,omitempty"`
	Error      string        `json:"error,omitempty"`
}

type CreateInvoiceRequest struct {
	BundleData        *model.Bundle `json:"bundleData"`
	VerificationToken string        `json:"verificationToken"`
}

type CreateInvoiceResponse struct {
	Success         bool   `json:"success"`
	InvoiceID       string `json:"invoiceId"`
	InvoiceURL      string `json:"invoiceUrl"`
	Total           string `json:"total"`
	DiscountPercent int    `json:"discountPercent"`
}
