package vmath

import "math"

// Tau is one full turn in radians
const Tau = 2 * math.Pi

// NormalizeAngle wraps a into [0, 2π)
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, Tau)
	if a < 0 {
		a += Tau
	}
	// Mod of a tiny negative can round up to exactly Tau
	if a >= Tau {
		a = 0
	}
	return a
}

// SignedAngleDiff returns the shortest signed rotation from 'from' to 'to', in [-π, π]
// Positive is the direction of increasing angle (clockwise on a y-down screen)
func SignedAngleDiff(from, to float64) float64 {
	diff := NormalizeAngle(to) - NormalizeAngle(from)
	if diff > math.Pi {
		diff -= Tau
	} else if diff < -math.Pi {
		diff += Tau
	}
	return diff
}

// BearingTo returns the angle of the vector from a to b, normalized to [0, 2π)
func BearingTo(a, b Vec2F) float64 {
	return NormalizeAngle(math.Atan2(b.Y-a.Y, b.X-a.X))
}

// Radians converts degrees to radians
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
