package shared

import "time"

// Clock supplies the current time. Staleness and overdue computations take a
// Clock rather than reading the wall clock so they stay testable.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall-clock implementation used in production
type SystemClock struct{}

// Now returns the current time
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant. Intended for tests.
type FixedClock struct {
	Instant time.Time
}

// Now returns the fixed instant
func (c FixedClock) Now() time.Time {
	return c.Instant
}
