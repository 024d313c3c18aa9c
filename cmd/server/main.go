package main

import (
	"mailpilot/internal/analyzer"
	"mailpilot/internal/config"
	"mailpilot/internal/server"
	"mailpilot/internal/store"
	"mailpilot/internal/summarize"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Setup logger
	logger := cfg.SetupLogger()

	// Build the summarization strategy
	summarizer, err := summarize.New(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Invalid summarizer configuration")
	}
	logger.Info().Str("strategy", cfg.SummaryStrategy).Msg("Summarizer configured")

	// Open the calendar store
	calendar, err := store.New(cfg.CalendarFile, cfg.CalendarColumns, cfg.Deduplicate, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Invalid calendar store configuration")
	}

	// Create and initialize server
	pipeline := analyzer.New(cfg, summarizer)
	srv := server.New(cfg, pipeline, calendar, logger)
	srv.Initialize()

	// Start server
	if err := srv.Start(); err != nil {
		logger.Fatal().Err(err).Msg("Server failed to start")
	}
}
