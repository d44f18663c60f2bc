package vmath

import (
	"math"
)

// Vec2F is a float64 2D position or offset in map units (1.0 = one grid cell)
type Vec2F struct {
	X, Y float64
}

func V2F(x, y float64) Vec2F {
	return Vec2F{X: x, Y: y}
}

func V2FAdd(a, b Vec2F) Vec2F {
	return Vec2F{a.X + b.X, a.Y + b.Y}
}

func V2FSub(a, b Vec2F) Vec2F {
	return Vec2F{a.X - b.X, a.Y - b.Y}
}

func V2FScale(v Vec2F, s float64) Vec2F {
	return Vec2F{v.X * s, v.Y * s}
}

func V2FMag(v Vec2F) float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// V2FDist returns the Euclidean distance between a and b
func V2FDist(a, b Vec2F) float64 {
	return V2FMag(V2FSub(b, a))
}

// V2FStepToward moves from by exactly step along the direction to target
// Returns from unchanged when the two coincide
func V2FStepToward(from, to Vec2F, step float64) Vec2F {
	d := V2FSub(to, from)
	mag := V2FMag(d)
	if mag == 0 {
		return from
	}
	return V2FAdd(from, V2FScale(d, step/mag))
}

// Cell truncates both coordinates toward zero, the grid cell a position occupies
func (v Vec2F) Cell() (x, y int) {
	return int(v.X), int(v.Y)
}

// Round returns the nearest integer lattice point, halves rounded away from zero
func (v Vec2F) Round() (x, y int) {
	return int(math.Round(v.X)), int(math.Round(v.Y))
}
