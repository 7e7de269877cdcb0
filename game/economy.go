package game

import (
	"math"
	"time"
)

// DecayTracker implements idle shrink: standing still for the decay delay
// costs the player a fixed amount of size per interval, down to the
// player floor. Movement pays the decay off by resetting the timer.
type DecayTracker struct {
	lastReset time.Time
}

// NewDecayTracker starts the decay window at now
func NewDecayTracker(now time.Time) *DecayTracker {
	return &DecayTracker{lastReset: now}
}

// Note records whether the player moved this tick and reports whether an
// idle decay step is due. Any nonzero movement resets the window; a due
// decay also resets it so the next step needs a full interval again.
func (d *DecayTracker) Note(moved bool, now time.Time) bool {
	if moved {
		d.lastReset = now
		return false
	}
	if now.Sub(d.lastReset) >= IdleDecayDelayMs*time.Millisecond {
		d.lastReset = now
		return true
	}
	return false
}

// Defer shifts the decay window forward by d, so paused time does not
// count toward idle decay.
func (d *DecayTracker) Defer(dur time.Duration) {
	d.lastReset = d.lastReset.Add(dur)
}

// PlayerSpeed returns the per-tick movement speed for a player of the
// given size. Speed falls off with size, floored at 30% of base; the
// speed-boost upgrade raises the base.
func PlayerSpeed(size float64, speedBoost bool) float64 {
	base := PlayerBaseSpeed
	if speedBoost {
		base = BoostedBaseSpeed
	}
	factor := math.Max(0.3, 1-(size-20)/200)
	return base * factor
}
