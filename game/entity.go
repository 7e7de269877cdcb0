package game

import (
	"image/color"
	"math"
)

// Team identifies a side in team mode
type Team int

const (
	TeamNone Team = iota
	TeamRed
	TeamBlue
)

// String returns the team name
func (t Team) String() string {
	switch t {
	case TeamRed:
		return "red"
	case TeamBlue:
		return "blue"
	default:
		return "none"
	}
}

// BlobKind distinguishes the player blob from AI bots
type BlobKind int

const (
	KindPlayer BlobKind = iota
	KindBot
)

// Blob is a circular entity with a position and a size. Size is the
// diameter and doubles as the mass proxy: strictly larger eats strictly
// smaller.
type Blob struct {
	ID   int
	Kind BlobKind

	// Position in world coordinates
	X, Y float64

	// Size is the diameter in world units
	Size float64

	Color color.RGBA

	// Wander velocity, bots only. Re-rolled occasionally by the AI and
	// axis-negated on wall bounce.
	VX, VY float64

	// Team tag, TeamNone outside team mode
	Team Team
}

// MinSize returns the size floor for this blob's kind
func (b *Blob) MinSize() float64 {
	if b.Kind == KindPlayer {
		return PlayerMinSize
	}
	return BotAbsoluteFloor
}

// SetSize assigns the size, clamped to the kind's floor. Every size
// mutation goes through here so the floor invariant holds after any tick.
func (b *Blob) SetSize(s float64) {
	b.Size = math.Max(s, b.MinSize())
}

// Grow increases the size by delta
func (b *Blob) Grow(delta float64) {
	b.SetSize(b.Size + delta)
}

// Radius returns half the diameter
func (b *Blob) Radius() float64 {
	return b.Size / 2
}

// Overlaps reports whether this blob overlaps a circle at (x, y) with the
// given diameter. Overlap means center distance below the sum of radii.
func (b *Blob) Overlaps(x, y, size float64) bool {
	r := (b.Size + size) / 2
	return DistSq(b.X, b.Y, x, y) < r*r
}

// Food is a static pickup
type Food struct {
	ID    int
	X, Y  float64
	Size  float64
	Color color.RGBA
}
