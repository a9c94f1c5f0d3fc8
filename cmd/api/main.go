package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bundle-invoice-demo/internal/client"
	"bundle-invoice-demo/internal/config"
	"bundle-invoice-demo/internal/logging"
	"bundle-invoice-demo/internal/repository"
	"bundle-invoice-demo/internal/server"
	"bundle-invoice-demo/internal/service"
	"bundle-invoice-demo/internal/store"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Log)

	db := client.InitSqliteClient(cfg.DatabasePath)
	stripeClient := client.NewStripeClient(&cfg.Stripe)

	tokenStore := store.NewTokenStore()
	verificationStore := store.NewVerificationStore()
	invoiceRepo := repository.NewInvoiceRepository(db)

	bundleService := service.NewBundleService(tokenStore, verificationStore, logger)
	invoiceService := service.NewInvoiceService(stripeClient, tokenStore, invoiceRepo, logger)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	srv := server.NewServer(bundleService, invoiceService, logger)

	logger.Info("starting http server", "addr", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			logger.Error("http server error", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	logger.Info("signal received, starting graceful shutdown")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
		os.Exit(1)
	}
}
