package handler

import (
	"errors"
	"net/http"

	"bundle-invoice-demo/internal/dto"
	"bundle-invoice-demo/internal/model"
	"bundle-invoice-demo/internal/service"

	"github.com/labstack/echo/v4"
)

type BundleHandler struct {
	bundleService service.BundleService
}

func NewBundleHandler(bundleService service.BundleService) *BundleHandler {
	return &BundleHandler{
		bundleService: bundleService,
	}
}

func (h *BundleHandler) StoreBundle(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.StoreBundleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
	}

	bundle := &model.Bundle{
		CustomerEmail:    req.CustomerEmail,
		CustomerName:     req.CustomerName,
		SelectedProducts: req.SelectedProducts,
	}

	token, err := h.bundleService.StoreBundle(ctx, bundle)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, dto.StoreBundleResponse{
		Success: true,
		Token:   token,
	})
}

func (h *BundleHandler) MarkVerified(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.MarkVerifiedRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
	}

	if err := h.bundleService.MarkVerified(ctx, req.Token, req.Email); err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func (h *BundleHandler) CheckVerification(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CheckVerificationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.CheckVerificationResponse{Error: "invalid request body"})
	}

	bundle, verified, err := h.bundleService.CheckVerification(ctx, req.Email)
	if err != nil {
		// this endpoint reports errors on the verified:false shape
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			return c.JSON(http.StatusBadRequest, dto.CheckVerificationResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, dto.CheckVerificationResponse{Error: err.Error()})
	}

	if !verified {
		return c.JSON(http.StatusOK, dto.CheckVerificationResponse{Verified: false})
	}

	return c.JSON(http.StatusOK, dto.CheckVerificationResponse{
		Verified:   true,
		BundleData: bundle,
	})
}
