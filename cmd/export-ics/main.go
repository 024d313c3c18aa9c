package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"mailpilot/internal/config"
	"mailpilot/internal/ics"
	"mailpilot/internal/store"
)

func main() {
	// Parse command line flags
	outPath := flag.String("out", "calendar.ics", "Path to write the iCalendar file")
	flag.Parse()

	// Load configuration
	cfg := config.Load()
	logger := cfg.SetupLogger()

	calendar, err := store.New(cfg.CalendarFile, cfg.CalendarColumns, cfg.Deduplicate, logger)
	if err != nil {
		log.Fatalf("Invalid calendar store configuration: %v", err)
	}

	records, err := calendar.Load()
	if err != nil {
		log.Fatalf("Failed to load calendar: %v", err)
	}
	if len(records) == 0 {
		fmt.Println("No calendar entries yet.")
		return
	}

	data := ics.Export(records, time.Now())
	if err := os.WriteFile(*outPath, []byte(data), 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *outPath, err)
	}

	fmt.Printf("Exported %d record(s) to %s\n", len(records), *outPath)
}
