package engine

import "github.com/lixenwraith/ascii-portrait/parameter"

// Clock is the animation clock, advanced by a fixed step per frame rather than wall time
// Never reset; a new session gets a new Clock
type Clock struct {
	step float64
	now  float64
}

// NewClock creates a clock at zero, non-positive step falls back to parameter.ClockStep
func NewClock(step float64) *Clock {
	if step <= 0 {
		step = parameter.ClockStep
	}
	return &Clock{step: step}
}

// Advance moves the clock forward one step and returns the new time
func (c *Clock) Advance() float64 {
	c.now += c.step
	return c.now
}

func (c *Clock) Time() float64 {
	return c.now
}

func (c *Clock) Step() float64 {
	return c.step
}
