// Package store persists calendar records to a flat CSV table. The whole
// table is re-read and rewritten on every append; a mutex serializes the
// read-modify-write so concurrent requests cannot lose updates.
package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"sync"

	"mailpilot/internal/models"

	"github.com/rs/zerolog"
)

// Outcome reports what AppendIfNew did with a record.
type Outcome string

const (
	Appended  Outcome = "appended"
	Duplicate Outcome = "duplicate"
)

// CalendarStore is a CSV-backed, insertion-ordered record log. The column
// subset is fixed at construction; Date and Tags are always included.
type CalendarStore struct {
	path        string
	columns     []string
	deduplicate bool
	logger      zerolog.Logger
	mutex       sync.Mutex
}

// New creates a calendar store writing the given column subset. Columns
// outside the known calendar set are rejected; Date and Tags are enforced.
func New(path string, columns []string, deduplicate bool, logger zerolog.Logger) (*CalendarStore, error) {
	known := map[string]bool{
		models.ColumnDate:     true,
		models.ColumnTags:     true,
		models.ColumnFrom:     true,
		models.ColumnPriority: true,
		models.ColumnReply:    true,
		models.ColumnSummary:  true,
	}

	seen := map[string]bool{}
	for _, column := range columns {
		if !known[column] {
			return nil, fmt.Errorf("unknown calendar column %q", column)
		}
		seen[column] = true
	}
	if !seen[models.ColumnDate] || !seen[models.ColumnTags] {
		return nil, fmt.Errorf("calendar columns must include %s and %s", models.ColumnDate, models.ColumnTags)
	}

	return &CalendarStore{
		path:        path,
		columns:     columns,
		deduplicate: deduplicate,
		logger:      logger,
	}, nil
}

// Columns returns the configured column subset.
func (s *CalendarStore) Columns() []string {
	return s.columns
}

// Load reads all persisted records. A missing file is a normal empty state.
// A header from a prior configuration degrades to an empty table rather
// than an error.
func (s *CalendarStore) Load() ([]models.CalendarRecord, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.load()
}

// AppendIfNew appends the record and rewrites the table. Under
// deduplication an exact match on every persisted column makes the call a
// no-op reporting Duplicate.
func (s *CalendarStore) AppendIfNew(record models.CalendarRecord) (Outcome, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	records, err := s.load()
	if err != nil {
		return "", err
	}

	if s.deduplicate {
		for _, existing := range records {
			if s.equal(existing, record) {
				return Duplicate, nil
			}
		}
	}

	records = append(records, record)
	if err := s.write(records); err != nil {
		return "", err
	}
	return Appended, nil
}

// load reads the table without locking; callers hold the mutex.
func (s *CalendarStore) load() ([]models.CalendarRecord, error) {
	file, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open calendar file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			s.logger.Warn().Err(err).Msg("Error closing calendar file")
		}
	}()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		s.logger.Warn().Err(err).Str("path", s.path).Msg("Calendar file unreadable, treating as empty")
		return nil, nil
	}
	if len(rows) == 0 {
		return nil, nil
	}

	if !s.headerMatches(rows[0]) {
		s.logger.Warn().Strs("header", rows[0]).Strs("expected", s.columns).
			Msg("Calendar file header does not match configured columns, treating as empty")
		return nil, nil
	}

	var records []models.CalendarRecord
	for _, row := range rows[1:] {
		if len(row) != len(s.columns) {
			continue
		}
		var record models.CalendarRecord
		for i, column := range s.columns {
			setField(&record, column, row[i])
		}
		records = append(records, record)
	}
	return records, nil
}

// write rewrites the whole table with the configured header.
func (s *CalendarStore) write(records []models.CalendarRecord) error {
	file, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("failed to create calendar file: %w", err)
	}

	writer := csv.NewWriter(file)
	if err := writer.Write(s.columns); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to write calendar header: %w", err)
	}
	for _, record := range records {
		row := make([]string, len(s.columns))
		for i, column := range s.columns {
			row[i] = record.Field(column)
		}
		if err := writer.Write(row); err != nil {
			_ = file.Close()
			return fmt.Errorf("failed to write calendar row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to flush calendar file: %w", err)
	}
	return file.Close()
}

// equal compares two records over the persisted columns only.
func (s *CalendarStore) equal(a, b models.CalendarRecord) bool {
	for _, column := range s.columns {
		if a.Field(column) != b.Field(column) {
			return false
		}
	}
	return true
}

func (s *CalendarStore) headerMatches(header []string) bool {
	if len(header) != len(s.columns) {
		return false
	}
	for i, column := range s.columns {
		if header[i] != column {
			return false
		}
	}
	return true
}

func setField(record *models.CalendarRecord, column, value string) {
	switch column {
	case models.ColumnDate:
		record.Deadline = value
	case models.ColumnTags:
		record.Tags = value
	case models.ColumnFrom:
		record.Sender = value
	case models.ColumnPriority:
		record.Priority = value
	case models.ColumnReply:
		record.Reply = value
	case models.ColumnSummary:
		record.Summary = value
	}
}
