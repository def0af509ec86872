package clock

import "time"

// Clock provides wall-clock functions that can be mocked for testing
type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}

// RealClock implements Clock using actual system time
type RealClock struct{}

// Now returns the current system time
func (RealClock) Now() time.Time {
	return time.Now()
}

// Since returns the time elapsed since t
func (RealClock) Since(t time.Time) time.Duration {
	return time.Since(t)
}
