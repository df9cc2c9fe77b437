package config

import (
	"time"

	"doc-text-extractor/internal/domain"
	"doc-text-extractor/internal/extractor"
	"doc-text-extractor/internal/service"
	"doc-text-extractor/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config            domain.Config
	Logger            domain.Logger
	TextExtractor     domain.TextExtractor
	ExtractionService domain.ExtractionService
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	config := NewConfig()
	appLogger := logger.NewLogger(config.GetLogLevel())

	// Initialize the Gemini client
	geminiClient := extractor.NewGeminiClient(
		config.GetGeminiAPIKey(),
		extractor.WithModel(config.GetGeminiModel()),
		extractor.WithBaseURL(config.GetGeminiBaseURL()),
		extractor.WithTimeout(time.Duration(config.GetRequestTimeout())*time.Second),
	)

	// Initialize services
	extractionService := service.NewExtractionService(geminiClient, config, appLogger)

	return &Container{
		Config:            config,
		Logger:            appLogger,
		TextExtractor:     geminiClient,
		ExtractionService: extractionService,
	}
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}

// GetExtractionService returns the extraction service instance
func (c *Container) GetExtractionService() domain.ExtractionService {
	return c.ExtractionService
}
