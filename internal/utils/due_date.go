package utils

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidDueDate = errors.New("due_date must be an ISO-8601 timestamp or date")

// dueDateLayouts are tried in order. Layouts without a zone are read as UTC.
var dueDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDueDate parses a client supplied due date and normalizes it to UTC.
func ParseDueDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrInvalidDueDate
	}

	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, ErrInvalidDueDate
}
