package state

import (
	"fmt"

	"github.com/leonelquinteros/gotext"
)

// Clock is the in-game time. Every session starts on day 1 at 08:00.
type Clock struct {
	Day    int
	Hour   int
	Minute int
}

// NewClock returns the starting time.
func NewClock() Clock {
	return Clock{Day: 1, Hour: 8}
}

// AdvanceMinute moves the clock one minute forward.
func (c *Clock) AdvanceMinute() {
	c.Minute++
	if c.Minute > 59 {
		c.Minute = 0
		c.AdvanceHour()
	}
}

// AdvanceHour moves the clock one hour forward.
func (c *Clock) AdvanceHour() {
	c.Hour++
	if c.Hour > 23 {
		c.Hour = 0
		c.Day++
	}
}

// Time returns the time of day as HH:MM.
func (c Clock) Time() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// String returns the day and time, e.g. "Day 1, 08:00".
func (c Clock) String() string {
	return gotext.Get("Day %d, %s", c.Day, c.Time())
}
