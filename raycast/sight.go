package raycast

import (
	"github.com/lixenwraith/vi-raycaster/grid"
	"github.com/lixenwraith/vi-raycaster/vmath"
)

// IsVisible reports whether the rasterized line between the rounded cells of
// from and to crosses no Wall cell
// Cell-based approximation for sprite gating, not physics; the target cell itself is not tested
func IsVisible(g *grid.Grid, from, to vmath.Vec2F) bool {
	x0, y0 := from.Round()
	x1, y1 := to.Round()

	t := vmath.NewLineTraverser(x0, y0, x1, y1)
	for t.Next() {
		x, y := t.Pos()
		// Out-of-bounds cells are skipped, never occluding
		if g.IsWall(x, y) {
			return false
		}
	}
	return true
}
