package game

import "math"

// Dist returns the Euclidean distance between two points
func Dist(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// DistSq returns the squared distance between two points. Nearest-target
// scans compare squared distances to avoid the sqrt.
func DistSq(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// Clamp limits v to the range [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Normalize returns the unit vector of (x, y), or (0, 0) for the zero vector
func Normalize(x, y float64) (float64, float64) {
	d := math.Sqrt(x*x + y*y)
	if d == 0 {
		return 0, 0
	}
	return x / d, y / d
}
