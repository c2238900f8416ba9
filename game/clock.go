package game

import (
	"math"
	"time"
)

// FrameInterval is the render cadence.
const FrameInterval = time.Second / FrameRate

// Clock decides when the snake moves. Moves only happen on frames, so the
// movement interval is a whole number of frames: the base step rounded to
// the nearest frame, and the boosted step that count divided by the boost
// factor, rounded again.
type Clock struct {
	Base  time.Duration
	Boost float64

	last    time.Time
	boosted bool
}

func NewClock(base time.Duration) *Clock {
	return &Clock{Base: base, Boost: BoostFactor}
}

// Frames is the number of frames between moves.
func (c *Clock) Frames(boosted bool) int {
	n := int(math.Round(float64(c.Base) / float64(FrameInterval)))
	if boosted && c.Boost > 0 {
		n = int(math.Round(float64(n) / c.Boost))
	}
	if n < 1 {
		n = 1
	}
	return n
}

// Interval is the movement interval with or without the speed boost.
func (c *Clock) Interval(boosted bool) time.Duration {
	return time.Duration(c.Frames(boosted)) * FrameInterval
}

func (c *Clock) SetBoost(on bool) { c.boosted = on }
func (c *Clock) Boosted() bool    { return c.boosted }

// Reset starts timing from now.
func (c *Clock) Reset(now time.Time) {
	c.last = now
}

// Due reports whether a move is due at now. A frame up to half a frame
// early still counts, so ticker jitter can't push a move to the next frame.
// When a move is due the next interval starts at now; leftover time is
// dropped rather than carried.
func (c *Clock) Due(now time.Time) bool {
	if now.Sub(c.last) < c.Interval(c.boosted)-FrameInterval/2 {
		return false
	}
	c.last = now
	return true
}
