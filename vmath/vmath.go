package vmath

import "math"

// --- Clamping ---

// Clamp limits v to [lo, hi], NaN maps to lo
func Clamp(v, lo, hi float64) float64 {
	if v < lo || math.IsNaN(v) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to [0, 1]
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// ClampInt limits v to [lo, hi]
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RoundClamp rounds half away from zero and clamps to [lo, hi]
// NaN maps to lo so a degenerate input never indexes out of range
func RoundClamp(v float64, lo, hi int) int {
	if math.IsNaN(v) {
		return lo
	}
	r := math.Round(v)
	if r < float64(lo) {
		return lo
	}
	if r > float64(hi) {
		return hi
	}
	return int(r)
}

// --- Distance ---

// Dist returns the euclidean distance between (x1, y1) and (x2, y2)
func Dist(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x1-x2, y1-y2)
}

// Falloff maps distance to a linear weight: 1 at d=0, 0 at d>=radius
func Falloff(d, radius float64) float64 {
	if radius <= 0 || d >= radius {
		return 0
	}
	return 1 - d/radius
}
