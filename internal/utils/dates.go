package utils

import (
	"fmt"
	"time"

	"github.com/skillboard/skillboard-api/internal/constants"
)

// ParseDate parses an ISO 8601 calendar date (YYYY-MM-DD).
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(constants.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", value)
	}
	return t, nil
}

// ParseOptionalDate parses a date string, mapping "" to nil.
func ParseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := ParseDate(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatDate renders a time as an ISO 8601 calendar date.
func FormatDate(t time.Time) string {
	return t.Format(constants.DateLayout)
}

// FormatOptionalDate renders a nullable time, mapping nil to "".
func FormatOptionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return FormatDate(*t)
}
