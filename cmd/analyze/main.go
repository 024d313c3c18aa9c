package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"mailpilot/internal/analyzer"
	"mailpilot/internal/config"
	"mailpilot/internal/models"
	"mailpilot/internal/store"
	"mailpilot/internal/summarize"
)

func main() {
	// Parse command line flags
	inputPath := flag.String("file", "", "Path to a text file with the pasted email (default: stdin)")
	save := flag.Bool("save", true, "Append to the calendar when a deadline is found")
	flag.Parse()

	// Read the pasted email text
	var raw []byte
	var err error
	if *inputPath != "" {
		raw, err = os.ReadFile(*inputPath)
	} else {
		raw, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}

	text := string(raw)
	if strings.TrimSpace(text) == "" {
		fmt.Println("Usage:")
		fmt.Println("  Analyze from stdin:  analyze < email.txt")
		fmt.Println("  Analyze a file:      analyze -file email.txt")
		fmt.Println("  Skip persistence:    analyze -file email.txt -save=false")
		os.Exit(1)
	}

	// Load configuration
	cfg := config.Load()
	logger := cfg.SetupLogger()

	summarizer, err := summarize.New(cfg)
	if err != nil {
		log.Fatalf("Invalid summarizer configuration: %v", err)
	}

	pipeline := analyzer.New(cfg, summarizer)
	result := pipeline.Analyze(context.Background(), text)

	fmt.Printf("Deadline:   %s\n", result.Deadline)
	fmt.Printf("Tags:       %s\n", strings.Join(result.Tags, ", "))
	fmt.Printf("From:       %s\n", result.Sender)
	fmt.Printf("Priority:   %d (%s)\n", result.Priority, result.Badge)
	fmt.Printf("Auto-Reply: %s\n", result.Reply)
	fmt.Printf("Summary:    %s\n", result.Summary)

	if !*save {
		return
	}
	if !result.HasDeadline() {
		fmt.Println("No deadline found, nothing saved.")
		return
	}

	calendar, err := store.New(cfg.CalendarFile, cfg.CalendarColumns, cfg.Deduplicate, logger)
	if err != nil {
		log.Fatalf("Invalid calendar store configuration: %v", err)
	}

	outcome, err := calendar.AppendIfNew(models.NewCalendarRecord(result))
	if err != nil {
		log.Fatalf("Failed to persist record: %v", err)
	}
	if outcome == store.Duplicate {
		fmt.Println("Already on the calendar, skipped.")
	} else {
		fmt.Printf("Saved to %s.\n", cfg.CalendarFile)
	}
}
