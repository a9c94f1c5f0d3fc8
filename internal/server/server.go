package server

import (
	"context"
	"log/slog"
	"net/http"

	"bundle-invoice-demo/internal/handler"
	"bundle-invoice-demo/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo           *echo.Echo
	bundleHandler  *handler.BundleHandler
	invoiceHandler *handler.InvoiceHandler
}

func NewServer(bundleService service.BundleService, invoiceService service.InvoiceService, logger *slog.Logger) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error != nil {
				logger.Error("request", "method", v.Method, "uri", v.URI, "status", v.Status, "error", v.Error)
			} else {
				logger.Info("request", "method", v.Method, "uri", v.URI, "status", v.Status)
			}
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS()) // the storefront calls these endpoints cross-origin

	s := &Server{
		echo:           e,
		bundleHandler:  handler.NewBundleHandler(bundleService),
		invoiceHandler: handler.NewInvoiceHandler(invoiceService),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api.POST("/store-bundle", s.bundleHandler.StoreBundle)
	api.POST("/mark-verified", s.bundleHandler.MarkVerified)
	api.POST("/check-verification", s.bundleHandler.CheckVerification)
	api.POST("/create-invoice", s.invoiceHandler.CreateInvoice)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
