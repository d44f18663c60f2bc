// Package raycast renders the first-person wall view by grid-step ray marching
// and answers line-of-sight queries over the same grid.
package raycast

import (
	"math"

	"github.com/lixenwraith/vi-raycaster/grid"
	"github.com/lixenwraith/vi-raycaster/parameter"
	"github.com/lixenwraith/vi-raycaster/vmath"
)

// HitKind records which family of grid lines stopped the ray
type HitKind uint8

const (
	HitNone       HitKind = iota // ray left the map without touching a wall
	HitHorizontal                // wall face along y = integer
	HitVertical                  // wall face along x = integer
)

func (k HitKind) String() string {
	switch k {
	case HitHorizontal:
		return "horizontal"
	case HitVertical:
		return "vertical"
	default:
		return "none"
	}
}

// Pose is a continuous position plus heading in [0, 2π)
type Pose struct {
	X, Y  float64
	Angle float64
}

// Pos returns the position part of the pose
func (p Pose) Pos() vmath.Vec2F {
	return vmath.V2F(p.X, p.Y)
}

// Hit is the nearest wall intersection of one ray
type Hit struct {
	X, Y     float64
	Kind     HitKind
	Distance float64 // Euclidean, +Inf when Kind is HitNone
}

// Column is one rendered screen column
type Column struct {
	Index    int
	Height   int // wall slice rows, 0 when nothing was hit
	Top      int // first slice row
	Kind     HitKind
	Distance float64 // fisheye-corrected
}

// Caster projects rays for a fixed screen size and field of view
type Caster struct {
	Width  int
	Height int
	FOV    float64
}

// NewCaster creates a caster; non-positive FOV falls back to the reference 60°
func NewCaster(width, height int, fov float64) *Caster {
	if fov <= 0 {
		fov = parameter.FOV
	}
	return &Caster{Width: width, Height: height, FOV: fov}
}

// RayAngle returns the normalized angle of a screen column's ray
func (c *Caster) RayAngle(heading float64, column int) float64 {
	return vmath.NormalizeAngle(heading - c.FOV/2 + float64(column)*(c.FOV/float64(c.Width)))
}

// CastFrame casts one ray per screen column
func (c *Caster) CastFrame(g *grid.Grid, pose Pose) []Column {
	cols := make([]Column, c.Width)
	for i := range cols {
		cols[i] = c.CastColumn(g, pose, i)
	}
	return cols
}

// CastColumn casts a single column's ray and projects the wall slice
func (c *Caster) CastColumn(g *grid.Grid, pose Pose, column int) Column {
	ra := c.RayAngle(pose.Angle, column)
	hit := CastRay(g, pose.X, pose.Y, ra)

	// Fisheye: measure perpendicular to the view plane, not along the ray
	dist := hit.Distance * math.Cos(vmath.NormalizeAngle(pose.Angle-ra))

	h := c.SliceHeight(dist)
	return Column{
		Index:    column,
		Height:   h,
		Top:      c.Height/2 - h/2,
		Kind:     hit.Kind,
		Distance: dist,
	}
}

// SliceHeight converts a corrected distance to wall rows: min(H, floor(H/d))
// d <= 0 is treated as touching the wall; infinite (no hit) projects to nothing
func (c *Caster) SliceHeight(dist float64) int {
	if math.IsNaN(dist) || math.IsInf(dist, 0) {
		return 0
	}
	if dist <= 0 {
		return c.Height
	}
	h := float64(c.Height) / dist
	if h >= float64(c.Height) {
		return c.Height
	}
	return int(h)
}

// CastRay marches a ray from (px, py) at angle ra and returns the nearer of the
// horizontal-edge and vertical-edge hits
func CastRay(g *grid.Grid, px, py, ra float64) Hit {
	ra = vmath.NormalizeAngle(ra)
	limit := max(g.Width(), g.Height())

	hx, hy, hd := marchHorizontal(g, px, py, ra, limit)
	vx, vy, vd := marchVertical(g, px, py, ra, limit)

	if vd < hd {
		return Hit{X: vx, Y: vy, Kind: HitVertical, Distance: vd}
	}
	if math.IsInf(hd, 1) {
		return Hit{X: math.Inf(1), Y: math.Inf(1), Kind: HitNone, Distance: hd}
	}
	return Hit{X: hx, Y: hy, Kind: HitHorizontal, Distance: hd}
}

// marchHorizontal steps along y = integer lines using the cotangent relation
func marchHorizontal(g *grid.Grid, px, py, ra float64, limit int) (float64, float64, float64) {
	var rx, ry, xo, yo float64

	switch {
	case ra > math.Pi:
		// Facing up (decreasing y); nudge into the cell above the line
		ctg := 1 / math.Tan(ra)
		ry = math.Floor(py) - parameter.RayEdgeEpsilon
		rx = (ry-py)*ctg + px
		yo = -1
		xo = yo * ctg
	case ra > 0 && ra < math.Pi:
		ctg := 1 / math.Tan(ra)
		ry = math.Floor(py) + 1
		rx = (ry-py)*ctg + px
		yo = 1
		xo = yo * ctg
	default:
		// Parallel to horizontal lines (0 or π)
		return 0, 0, math.Inf(1)
	}

	return march(g, px, py, rx, ry, xo, yo, limit)
}

// marchVertical steps along x = integer lines using the tangent relation
func marchVertical(g *grid.Grid, px, py, ra float64, limit int) (float64, float64, float64) {
	var rx, ry, xo, yo float64

	switch {
	case ra > math.Pi/2 && ra < 3*math.Pi/2:
		// Facing left (decreasing x)
		tan := math.Tan(ra)
		rx = math.Floor(px) - parameter.RayEdgeEpsilon
		ry = (rx-px)*tan + py
		xo = -1
		yo = xo * tan
	case ra < math.Pi/2 || ra > 3*math.Pi/2:
		tan := math.Tan(ra)
		rx = math.Floor(px) + 1
		ry = (rx-px)*tan + py
		xo = 1
		yo = xo * tan
	default:
		// Parallel to vertical lines (π/2 or 3π/2)
		return 0, 0, math.Inf(1)
	}

	return march(g, px, py, rx, ry, xo, yo, limit)
}

// march tests successive edge crossings until a Wall cell or the step limit
// Crossings outside the grid are skipped, not treated as hits
func march(g *grid.Grid, px, py, rx, ry, xo, yo float64, limit int) (float64, float64, float64) {
	w, h := float64(g.Width()), float64(g.Height())
	for dof := 0; dof < limit; dof++ {
		// Range test before truncation: int() of (-1, 0) would alias column/row 0
		if rx >= 0 && ry >= 0 && rx < w && ry < h && g.IsWall(int(rx), int(ry)) {
			return rx, ry, math.Hypot(rx-px, ry-py)
		}
		rx += xo
		ry += yo
	}
	return 0, 0, math.Inf(1)
}
