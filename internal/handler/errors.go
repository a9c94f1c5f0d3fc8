package handler

import (
	"errors"
	"net/http"

	"bundle-invoice-demo/internal/dto"
	"bundle-invoice-demo/internal/service"

	"github.com/labstack/echo/v4"
)

// statusForError maps service error kinds onto the response contract:
// validation problems and token misses are the caller's fault, unknown
// products and billing failures are ours.
func statusForError(err error) int {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidToken), errors.Is(err, service.ErrEmailMismatch):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func errorJSON(c echo.Context, err error) error {
	return c.JSON(statusForError(err), dto.ErrorResponse{
		Success: false,
		Error:   err.Error(),
	})
}
