package mocks

import (
	"time"

	"github.com/mcoot/hangman/internal/dependencies/clock"
)

// MockClock is a mock implementation of Clock for testing.
// If Step is set, every call to Now advances the clock by Step afterwards.
type MockClock struct {
	CurrentTime time.Time
	Step        time.Duration
}

// Ensure MockClock implements Clock
var _ clock.Clock = (*MockClock)(nil)

// NewMockClock creates a MockClock set to the given time
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{CurrentTime: t}
}

// Now returns the mocked current time
func (c *MockClock) Now() time.Time {
	now := c.CurrentTime
	c.CurrentTime = c.CurrentTime.Add(c.Step)
	return now
}
