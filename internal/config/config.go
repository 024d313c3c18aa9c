package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds all configuration for the application
type Config struct {
	Port     string
	Version  string
	LogLevel string

	// Analyzer behavior
	DateStrategy          string // "month-day" (default) or "by-phrase"
	TagVocabulary         string // "base" (default) or "extended"
	KeepAngleBracketEmail bool   // keep the <email> suffix when extracting the sender

	// Summarizer
	SummaryStrategy        string // "truncate" (default), "rules", "openai" or "extractive"
	OpenAIKey              string
	OpenAITimeout          int // OpenAI API timeout in seconds
	SummaryCacheTTLMinutes int // How long delegated summaries stay cached

	// Calendar store
	CalendarFile    string
	CalendarColumns []string // Column subset persisted to the calendar file
	Deduplicate     bool     // Suppress exact duplicate rows on append

	// Reply delivery
	SendGridAPIKey string // SendGrid API key for sending suggested replies
	ReplyFromEmail string // Address the suggested reply is sent from
}

// Load initializes and returns application configuration
func Load() *Config {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Port:     getEnv("PORT", "8080"),
		Version:  getEnv("VERSION", "1.0.0"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		DateStrategy:          getEnv("DATE_STRATEGY", "month-day"),
		TagVocabulary:         getEnv("TAG_VOCABULARY", "base"),
		KeepAngleBracketEmail: getEnvBool("KEEP_ANGLE_BRACKET_EMAIL", true),

		SummaryStrategy:        getEnv("SUMMARY_STRATEGY", "truncate"),
		OpenAIKey:              os.Getenv("OPENAI_API_KEY"),
		OpenAITimeout:          getEnvInt("OPENAI_TIMEOUT", 30),
		SummaryCacheTTLMinutes: getEnvInt("SUMMARY_CACHE_TTL_MINUTES", 60),

		CalendarFile:    getEnv("CALENDAR_FILE", "calendar.csv"),
		CalendarColumns: getEnvList("CALENDAR_COLUMNS", []string{"Date", "Tags", "From", "Priority"}),
		Deduplicate:     getEnvBool("DEDUPLICATE", true),

		SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
		ReplyFromEmail: getEnv("REPLY_FROM_EMAIL", "noreply@mailpilot.local"),
	}

	return config
}

// getEnv gets an environment variable with a default fallback
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as integer with a default fallback
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as boolean with a default fallback
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvList gets a comma-separated environment variable with a default fallback
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}

// SetupLogger configures zerolog with JSON output and single-line format
func (c *Config) SetupLogger() zerolog.Logger {
	// Configure zerolog to output JSON without newlines
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Create logger with JSON output to stdout
	logger := zerolog.New(os.Stdout).With().
		Timestamp().
		Str("service", "mailpilot").
		Str("version", c.Version).
		Logger()

	// Set log level based on configuration
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger = logger.Level(level)

	return logger
}
