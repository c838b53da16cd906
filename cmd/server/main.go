package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/journeyman-se/vargar-vatten-shop/internal/config"
	"github.com/journeyman-se/vargar-vatten-shop/internal/handlers"
	"github.com/journeyman-se/vargar-vatten-shop/internal/mail"
	"github.com/journeyman-se/vargar-vatten-shop/internal/middleware"
	"github.com/journeyman-se/vargar-vatten-shop/internal/web"
	"github.com/journeyman-se/vargar-vatten-shop/pkg/logger"
)

func main() {
	// Load .env if present, then configuration from environment
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting vargar & vatten order server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
		"mail_configured", cfg.Mail.APIKey != "",
	)

	// Delivery provider client; the API key is read once here and never again
	sender := mail.NewSendGridSender(cfg.Mail.APIKey)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log)
	sendMailHandler := handlers.NewSendMailHandler(sender, cfg.Mail.To, cfg.Mail.From, log)
	validateHandler := handlers.NewValidateHandler(log)
	paymentHandler := handlers.NewPaymentHandler(cfg.Payment, log)

	webHandler, err := web.New(cfg.Payment.UnitPrice, log)
	if err != nil {
		log.Error("failed to load order form templates", "error", err)
		os.Exit(1)
	}

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Order form page and assets
	r.Get("/", webHandler.Page)
	r.Handle("/static/*", webHandler.Static())

	// Register health check endpoint
	r.Get("/health", healthHandler.ServeHTTP)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Post("/sendmail", sendMailHandler.SendMail)
		r.Post("/validate", validateHandler.Validate)
		r.Get("/payment", paymentHandler.Request)
		r.Get("/qr", paymentHandler.QRCode)
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
