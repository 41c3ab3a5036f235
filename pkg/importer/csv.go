// Package importer parses bulk CSV drink logs into normalized entries. The
// importer is a producer for the same entry-creation path used by manual
// logging; it never talks to storage itself.
package importer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/multierr"
)

// ParsedEntry is one validated CSV row, ready to hand to the storage
// collaborator's create operation together with a period id.
type ParsedEntry struct {
	DrinkName      string
	CaffeineAmount int64
	Timestamp      time.Time
}

const columnsPerRow = 4

var (
	ErrEmptyInput    = errors.New("csv must have at least a header row and one data row")
	ErrInvalidHeader = errors.New("csv must have headers: drinkName, caffeineAmount, date, time")
	ErrNoEntries     = errors.New("no valid entries found")
)

// acceptedHeaders are the recognised header spellings, compared with
// whitespace stripped and case folded.
var acceptedHeaders = []string{
	"drinkname,caffeineamount,date,time",
	"drink,caffeine,date,time",
}

// Parse converts CSV text into entries. Row failures are collected with
// multierr and reported together so the caller can surface every bad line at
// once; any failed row rejects the whole import.
func Parse(text string) ([]ParsedEntry, error) {
	lines := strings.Split(text, "\n")
	if len(lines) < 2 {
		return nil, ErrEmptyInput
	}

	if !headerValid(lines[0]) {
		return nil, ErrInvalidHeader
	}

	var (
		entries []ParsedEntry
		errs    error
	)

	for number, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		entry, err := parseRow(line)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("line %d: %w", number+2, err))

			continue
		}

		entries = append(entries, entry)
	}

	if errs != nil {
		return nil, errs
	}

	if len(entries) == 0 {
		return nil, ErrNoEntries
	}

	return entries, nil
}

func headerValid(header string) bool {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(header)), " ", "")

	for _, accepted := range acceptedHeaders {
		if strings.Contains(normalized, accepted) {
			return true
		}
	}

	return false
}

func parseRow(line string) (ParsedEntry, error) {
	parts := strings.Split(line, ",")
	if len(parts) < columnsPerRow {
		return ParsedEntry{}, errors.New("not enough columns")
	}

	for index := range parts {
		parts[index] = strings.TrimSpace(parts[index])
	}

	name, caffeine, date, clock := parts[0], parts[1], parts[2], parts[3]

	if name == "" {
		return ParsedEntry{}, errors.New("missing drink name")
	}

	amount, err := strconv.ParseInt(caffeine, 10, 64)
	if err != nil || amount <= 0 {
		return ParsedEntry{}, errors.New("invalid caffeine amount")
	}

	timestamp, err := time.Parse("2006-01-02T15:04", date+"T"+clock)
	if err != nil {
		return ParsedEntry{}, errors.New("invalid date/time format")
	}

	return ParsedEntry{DrinkName: name, CaffeineAmount: amount, Timestamp: timestamp}, nil
}
