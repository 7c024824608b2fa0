package utils

import (
	"time"
)

// TimeNowUTC returns the current time in UTC, truncated to microseconds so it
// survives a round trip through Firestore timestamps and Postgres.
func TimeNowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// ToPointer returns a pointer to a copy of v.
func ToPointer[T any](v T) *T {
	return &v
}
