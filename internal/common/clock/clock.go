package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/lootwheel/internal/common/clock Clock
type Clock interface {
	Now() time.Time
}

// DefaultClock implements the Clock interface using the system clock
type DefaultClock struct{}

// Now returns the current time in UTC
func (c *DefaultClock) Now() time.Time {
	return time.Now().UTC()
}

// Fixed is a clock that always returns the same instant
type Fixed time.Time

// Now returns the fixed time
func (f Fixed) Now() time.Time {
	return time.Time(f)
}
