package utils

import "time"

// TimestampLayout is the ISO-8601 layout used in responses and the access
// log: UTC with millisecond precision, e.g. 2026-10-15T09:30:00.000Z.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// FormatTimestamp renders t in UTC using [TimestampLayout].
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
