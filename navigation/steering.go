package navigation

import (
	"github.com/lixenwraith/vi-raycaster/grid"
	"github.com/lixenwraith/vi-raycaster/parameter"
	"github.com/lixenwraith/vi-raycaster/vmath"
)

// SteerParams tunes the per-tick enemy controller
type SteerParams struct {
	ChaseStep     float64 // step toward the player when sharing a cell
	PathStep      float64 // step toward the next waypoint center
	ArrivalRadius float64 // snap distance to a waypoint center
}

// DefaultSteerParams returns the reference tuning
func DefaultSteerParams() SteerParams {
	return SteerParams{
		ChaseStep:     parameter.EnemyChaseStep,
		PathStep:      parameter.EnemyPathStep,
		ArrivalRadius: parameter.EnemyArrivalRadius,
	}
}

// Steer advances the enemy one tick
//
// Same cell as the player: step straight at the player's continuous position.
// Otherwise: head for the center of path[1], snapping onto it inside ArrivalRadius.
// A step that would leave the grid or enter a Wall is dropped and the enemy holds.
// Paths shorter than two cells leave the enemy in place.
func Steer(g *grid.Grid, enemy, player vmath.Vec2F, path Path, p SteerParams) vmath.Vec2F {
	ex, ey := enemy.Cell()
	px, py := player.Cell()

	if ex == px && ey == py {
		return tryStep(g, enemy, vmath.V2FStepToward(enemy, player, p.ChaseStep))
	}

	next, ok := path.Next()
	if !ok {
		return enemy
	}

	center := vmath.V2F(float64(next.X)+0.5, float64(next.Y)+0.5)
	if vmath.V2FDist(enemy, center) < p.ArrivalRadius {
		return tryStep(g, enemy, center)
	}
	return tryStep(g, enemy, vmath.V2FStepToward(enemy, center, p.PathStep))
}

// tryStep commits the move only onto a walkable position
func tryStep(g *grid.Grid, from, to vmath.Vec2F) vmath.Vec2F {
	if g.Walkable(to.X, to.Y) {
		return to
	}
	return from
}
