// Package ics renders persisted calendar records as an iCalendar file.
package ics

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"mailpilot/internal/models"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

// Events start at a fixed time of day and run for a fixed duration, since
// extracted deadlines carry no time component.
const (
	eventStartHour = 9
	eventDuration  = time.Hour
)

var ordinalSuffix = regexp.MustCompile(`(?i)(\d{1,2})(st|nd|rd|th)\b`)

// dateLayouts are tried in order against the normalized deadline phrase.
// Layouts without a year resolve to the current year.
var dateLayouts = []struct {
	layout  string
	hasYear bool
}{
	{layout: "January 2, 2006", hasYear: true},
	{layout: "January 2 2006", hasYear: true},
	{layout: "2 January 2006", hasYear: true},
	{layout: "January 2", hasYear: false},
	{layout: "2 January", hasYear: false},
}

// ResolveDate turns a deadline phrase like "June 21st, 2025" or "21st June"
// into a calendar date. Phrases without a 4-digit year fall in the current
// year. Day phrases from the by-phrase extractor ("Friday") do not resolve.
func ResolveDate(deadline string, now time.Time) (time.Time, error) {
	normalized := ordinalSuffix.ReplaceAllString(deadline, "$1")
	normalized = strings.Join(strings.Fields(normalized), " ")

	for _, candidate := range dateLayouts {
		parsed, err := time.Parse(candidate.layout, normalized)
		if err != nil {
			continue
		}
		year := parsed.Year()
		if !candidate.hasYear {
			year = now.Year()
		}
		return time.Date(year, parsed.Month(), parsed.Day(), eventStartHour, 0, 0, 0, now.Location()), nil
	}
	return time.Time{}, fmt.Errorf("unrecognized date phrase: %q", deadline)
}

// Export renders one VEVENT per record whose deadline resolves to a date.
// Title is the tags string, description the sender. Unresolvable deadlines
// are skipped, not errors.
func Export(records []models.CalendarRecord, now time.Time) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//mailpilot//calendar//EN")

	for _, record := range records {
		start, err := ResolveDate(record.Deadline, now)
		if err != nil {
			continue
		}

		event := cal.AddEvent(uuid.NewString())
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetStartAt(start)
		event.SetEndAt(start.Add(eventDuration))
		event.SetSummary(record.Tags)
		event.SetDescription(record.Sender)
	}

	return cal.Serialize()
}
