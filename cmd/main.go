package main

import (
	"context"
	"html/template"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/twintalk/twin-talk/internal/ai"
	"github.com/twintalk/twin-talk/internal/chat"
	"github.com/twintalk/twin-talk/internal/config"
	"github.com/twintalk/twin-talk/internal/delivery"
	"github.com/twintalk/twin-talk/internal/eventlog"
	"github.com/twintalk/twin-talk/internal/speech"
)

func main() {

	// =========================================================================
	// ENV / CONFIG
	// =========================================================================

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := logger.NewZapLogger(baseLogger.Sugar())

	events, err := eventlog.Open(cfg.EventLogPath)
	if err != nil {
		log.Fatalf("event log: %v", err)
	}
	defer events.Close()

	tmpl, err := template.ParseGlob(filepath.Join(cfg.TemplateDir, "*.html"))
	if err != nil {
		log.Fatalf("templates: %v", err)
	}

	// =========================================================================
	// CLIENTS (single long-lived handles, shared by all requests)
	// =========================================================================

	completionClient := ai.NewOpenAIClient(cfg.OpenAIKey, cfg.GPTModel, cfg.GPTTimeout)
	audioClient := speech.NewOpenAIClient(cfg.OpenAIKey, cfg.WhisperModel, cfg.TTSModel, cfg.WhisperTimeout, cfg.TTSTimeout)

	// =========================================================================
	// SERVICES
	// =========================================================================

	speechService := speech.NewService(audioClient, audioClient)
	chatService := chat.NewService(speechService, completionClient, events)

	// =========================================================================
	// HTTP ROUTER
	// =========================================================================

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	handler := delivery.NewHandler(chatService, speechService, events, tmpl, zl)
	delivery.RegisterRoutes(r, handler, cfg.StaticDir)

	// =========================================================================
	// START SERVER
	// =========================================================================

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		zl.Log(logger.LogEntry{
			Level:   "info",
			Message: "listening at " + cfg.Addr,
			Service: "twin-talk",
		})
		serverErrors <- server.ListenAndServe()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	case sig := <-sigChan:
		zl.Log(logger.LogEntry{
			Level:   "info",
			Message: "shutdown signal received: " + sig.String(),
			Service: "twin-talk",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		zl.Log(logger.LogEntry{Level: "error", Message: "graceful shutdown failed", Error: err})
		_ = server.Close()
	}
}
