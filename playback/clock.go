// SPDX-License-Identifier: EPL-2.0

package playback

import "time"

// Clock supplies the seconds elapsed since its previous Delta call.
type Clock interface {
	Delta() float64
}

// WallClock measures real time between frames. The first Delta returns 0.
type WallClock struct {
	now     func() time.Time
	last    time.Time
	started bool
}

// NewWallClock returns a clock reading now, or time.Now when now is nil.
func NewWallClock(now func() time.Time) *WallClock {
	if now == nil {
		now = time.Now
	}
	return &WallClock{now: now}
}

func (c *WallClock) Delta() float64 {
	t := c.now()
	if !c.started {
		c.started = true
		c.last = t
		return 0
	}

	d := t.Sub(c.last).Seconds()
	c.last = t

	// a clock stepping backwards must not rewind voices
	return max(d, 0)
}

// ManualClock replays queued deltas, then falls back to a fixed Step.
type ManualClock struct {
	Step    float64
	pending []float64
}

// Push queues deltas to be returned before Step.
func (c *ManualClock) Push(d ...float64) {
	c.pending = append(c.pending, d...)
}

func (c *ManualClock) Delta() float64 {
	if len(c.pending) > 0 {
		d := c.pending[0]
		c.pending = c.pending[1:]
		return d
	}
	return c.Step
}
