package core

import "time"

// TimeProvider abstracts the clock so entry timestamps can be fixed in tests
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}
