package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"doc-text-extractor/internal/config"
	"doc-text-extractor/internal/handler"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}
	// Wiring
	container := config.NewContainer()

	if container.Config.GetGeminiAPIKey() == "" {
		container.Logger.Warn("GEMINI_API_KEY not set; extraction requests will fail until configured")
	}

	// Handlers
	extractHandler := handler.NewExtractHandler(
		container.ExtractionService,
		container.Logger,
	)

	// Router
	router := handler.NewRouter(
		extractHandler,
		container.Logger,
		container.Config.GetAllowedOrigins(),
	)

	// start server
	server := &http.Server{
		Addr:    ":" + container.Config.GetServerPort(),
		Handler: router,
	}

	// Run server
	go func() {
		container.Logger.Info("Server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			container.Logger.Error("Server failed to start", err)
			os.Exit(1)
		}
	}()
	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	container.Logger.Info("Shutting down server...")
	_ = server.Close()

	container.Logger.Info("Server exited")
}
