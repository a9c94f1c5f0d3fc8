package handler

import (
	"net/http"

	"bundle-invoice-demo/internal/dto"
	"bundle-invoice-demo/internal/service"

	"github.com/labstack/echo/v4"
)

type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
	}
}

func (h *InvoiceHandler) CreateInvoice(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreateInvoiceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
	}

	var (
		result *service.InvoiceResult
		err    error
	)
	switch {
	case req.VerificationToken != "":
		result, err = h.invoiceService.CreateInvoiceFromToken(ctx, req.VerificationToken)
	case req.BundleData != nil:
		result, err = h.invoiceService.CreateInvoice(ctx, req.BundleData)
	default:
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "no bundle data or verification token provided",
		})
	}
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, dto.CreateInvoiceResponse{
		Success:         true,
		InvoiceID:       result.InvoiceID,
		InvoiceURL:      result.InvoiceURL,
		Total:           result.Total,
		DiscountPercent: result.DiscountPercent,
	})
}
