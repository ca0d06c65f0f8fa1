package utils

import (
	"errors"
	"strings"
	"time"

	"github.com/jinzhu/now"
)

var ErrInvalidDeadline = errors.New("deadline must be an ISO 8601 date or timestamp")

// ParseDeadline accepts RFC 3339 timestamps and ISO dates such as
// "2030-01-01". Values without a zone are taken as UTC.
func ParseDeadline(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrInvalidDeadline
	}

	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}

	// now resolves bare times ("15:04") and years against today's date,
	// so only input with a date part is handed to it.
	if !strings.Contains(value, "-") {
		return time.Time{}, ErrInvalidDeadline
	}

	t, err := now.ParseInLocation(time.UTC, value)
	if err != nil {
		return time.Time{}, ErrInvalidDeadline
	}
	return t, nil
}
