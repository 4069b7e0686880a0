package clock

import "time"

// Clock provides the current time so round durations can be controlled in tests
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock using the system clock
type SystemClock struct{}

// New creates a new SystemClock
func New() *SystemClock {
	return &SystemClock{}
}

// Now returns the current time
func (c *SystemClock) Now() time.Time {
	return time.Now()
}

// Since returns the time elapsed on clk since t
func Since(clk Clock, t time.Time) time.Duration {
	return clk.Now().Sub(t)
}
