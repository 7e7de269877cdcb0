package game

import "math"

// Camera is the scrolling viewport into the world. The offset keeps the
// player centered but is clamped to world bounds so the view never shows
// outside the arena.
type Camera struct {
	X, Y          float64 // top-left offset in world coordinates
	Width, Height float64 // viewport size
}

// NewCamera creates a camera with the given viewport size
func NewCamera(width, height float64) *Camera {
	return &Camera{Width: width, Height: height}
}

// Follow recenters the viewport on (x, y), clamped to the world. A world
// smaller than the viewport pins the offset to zero on that axis.
func (c *Camera) Follow(x, y, worldW, worldH float64) {
	c.X = Clamp(x-c.Width/2, 0, math.Max(0, worldW-c.Width))
	c.Y = Clamp(y-c.Height/2, 0, math.Max(0, worldH-c.Height))
}

// WorldToScreen converts world coordinates to screen coordinates
func (c *Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	return wx - c.X, wy - c.Y
}

// ScreenToWorld converts screen coordinates to world coordinates
func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	return sx + c.X, sy + c.Y
}

// Visible reports whether a circle at world (x, y) with the given radius
// intersects the viewport, with a small margin.
func (c *Camera) Visible(x, y, radius float64) bool {
	const margin = 50.0
	return x+radius >= c.X-margin && x-radius <= c.X+c.Width+margin &&
		y+radius >= c.Y-margin && y-radius <= c.Y+c.Height+margin
}
