package model

import (
	"time"
)

const iso8601 = "2006-01-02T15:04:05.000000-07:00"

// ParseTimestamp parses an ISO8601 timestamp as Discord formats them.
func ParseTimestamp(timestamp string) (time.Time, error) {
	t, err := time.Parse(iso8601, timestamp)
	if err == nil {
		return t, nil
	}

	// Some payloads omit the fractional seconds.
	return time.Parse(time.RFC3339, timestamp)
}
