package game

import (
	"math"
	"testing"
	"time"
)

func TestIdleDecayFiresAfterDelay(t *testing.T) {
	t0 := time.Now()
	d := NewDecayTracker(t0)

	if d.Note(false, t0.Add(1900*time.Millisecond)) {
		t.Fatalf("decay fired before the 2000ms delay")
	}
	if !d.Note(false, t0.Add(2000*time.Millisecond)) {
		t.Fatalf("decay did not fire at the 2000ms delay")
	}
	// The window resets after a decay step.
	if d.Note(false, t0.Add(2100*time.Millisecond)) {
		t.Fatalf("decay fired again without a full interval")
	}
}

func TestMovementResetsDecayWindow(t *testing.T) {
	t0 := time.Now()
	d := NewDecayTracker(t0)

	if d.Note(true, t0.Add(1900*time.Millisecond)) {
		t.Fatalf("decay fired on a moving tick")
	}
	// 1.9s of idling after the move is still inside the window.
	if d.Note(false, t0.Add(3800*time.Millisecond)) {
		t.Fatalf("movement did not reset the decay window")
	}
	if !d.Note(false, t0.Add(3900*time.Millisecond)) {
		t.Fatalf("decay did not fire a full interval after the last move")
	}
}

func TestPlayerSpeedFallsWithSize(t *testing.T) {
	if got := PlayerSpeed(20, false); math.Abs(got-2.5) > 1e-9 {
		t.Fatalf("speed at size 20 = %f, want 2.5", got)
	}
	if got := PlayerSpeed(20, true); math.Abs(got-3.5) > 1e-9 {
		t.Fatalf("boosted speed at size 20 = %f, want 3.5", got)
	}
	// Factor floors at 0.3 for huge blobs.
	if got := PlayerSpeed(500, false); math.Abs(got-0.75) > 1e-9 {
		t.Fatalf("speed at size 500 = %f, want 2.5 * 0.3", got)
	}
}
