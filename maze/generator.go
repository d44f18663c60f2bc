package maze

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/vi-raycaster/grid"
	"github.com/lixenwraith/vi-raycaster/navigation"
	"github.com/lixenwraith/vi-raycaster/parameter"
)

// Config controls procedural level generation
type Config struct {
	Width, Height int // rounded down to odd, minimum parameter.MazeMinDimension

	// Braiding: 0.0 (perfect maze, single route) to 1.0 (no dead ends)
	// Higher values add cycles, giving the player escape loops
	Braiding float64

	Seed int64 // 0 = time-based
}

// Result is a generated level layout
// Start and End sit in opposite corners; SolutionPath joins them
type Result struct {
	Grid         *grid.Grid
	Start, End   grid.Point
	SolutionPath navigation.Path
	Seed         int64
}

// carver holds generation state; true = wall
type carver struct {
	walls [][]bool
	rows  int
	cols  int
	rng   *rand.Rand
}

var (
	jumpDirs  = [4]grid.Point{{X: 0, Y: -2}, {X: 0, Y: 2}, {X: -2, Y: 0}, {X: 2, Y: 0}}
	orthoDirs = [4]grid.Point{{X: 0, Y: -1}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 1, Y: 0}}
)

// Generate carves a bordered maze with a recursive backtracker, then braids dead ends
func Generate(cfg Config) Result {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	c := &carver{
		rows: oddAtLeast(cfg.Height, parameter.MazeMinDimension),
		cols: oddAtLeast(cfg.Width, parameter.MazeMinDimension),
		rng:  rand.New(rand.NewSource(seed)),
	}
	c.walls = make([][]bool, c.rows)
	for y := range c.walls {
		c.walls[y] = make([]bool, c.cols)
		for x := range c.walls[y] {
			c.walls[y][x] = true
		}
	}

	start := grid.Point{X: 1, Y: 1}
	end := grid.Point{X: c.cols - 2, Y: c.rows - 2}

	c.backtrack(start)
	if cfg.Braiding > 0 {
		c.braid(cfg.Braiding)
	}

	// Border and odd-cell layout guarantee FromCells succeeds
	g, _ := grid.FromCells(c.walls)
	path := navigation.FindPath(navigation.BuildGraph(g), start, end)

	return Result{
		Grid:         g,
		Start:        start,
		End:          end,
		SolutionPath: path,
		Seed:         seed,
	}
}

// backtrack carves a uniform spanning tree over odd cells
func (c *carver) backtrack(start grid.Point) {
	stack := []grid.Point{start}
	c.walls[start.Y][start.X] = false

	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		candidates := make([]grid.Point, 0, 4)

		for _, d := range jumpDirs {
			nx, ny := curr.X+d.X, curr.Y+d.Y
			// Keep a one-cell wall border
			if nx > 0 && nx < c.cols-1 && ny > 0 && ny < c.rows-1 && c.walls[ny][nx] {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[c.rng.Intn(len(candidates))]
		c.walls[curr.Y+d.Y/2][curr.X+d.X/2] = false
		next := grid.Point{X: curr.X + d.X, Y: curr.Y + d.Y}
		c.walls[next.Y][next.X] = false
		stack = append(stack, next)
	}
}

// braid opens one wall at each dead end with the given probability,
// skipping removals that would create 2x2 open plazas or free-standing pillars
func (c *carver) braid(probability float64) {
	for y := 1; y < c.rows-1; y += 2 {
		for x := 1; x < c.cols-1; x += 2 {
			if c.walls[y][x] || c.exits(x, y) != 1 || c.rng.Float64() >= probability {
				continue
			}

			candidates := make([]grid.Point, 0, 4)
			for _, d := range jumpDirs {
				nx, ny := x+d.X, y+d.Y
				wx, wy := x+d.X/2, y+d.Y/2
				if c.isOpen(nx, ny) && c.walls[wy][wx] && c.canOpen(wx, wy) {
					candidates = append(candidates, grid.Point{X: wx, Y: wy})
				}
			}

			if len(candidates) > 0 {
				w := candidates[c.rng.Intn(len(candidates))]
				c.walls[w.Y][w.X] = false
			}
		}
	}
}

func (c *carver) exits(x, y int) int {
	n := 0
	for _, d := range orthoDirs {
		if c.isOpen(x+d.X, y+d.Y) {
			n++
		}
	}
	return n
}

// isOpen treats out of bounds as wall
func (c *carver) isOpen(x, y int) bool {
	return x >= 0 && x < c.cols && y >= 0 && y < c.rows && !c.walls[y][x]
}

func (c *carver) isWall(x, y int) bool {
	return x >= 0 && x < c.cols && y >= 0 && y < c.rows && c.walls[y][x]
}

// canOpen reports whether clearing (x, y) keeps the layout free of plazas and pillars
func (c *carver) canOpen(x, y int) bool {
	// Any 2x2 quadrant around (x, y) already 3/4 open would become a plaza
	quads := [4][3]grid.Point{
		{{X: -1, Y: -1}, {X: 0, Y: -1}, {X: -1, Y: 0}},
		{{X: 0, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 0}},
		{{X: -1, Y: 0}, {X: -1, Y: 1}, {X: 0, Y: 1}},
		{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
	}
	for _, q := range quads {
		if c.isOpen(x+q[0].X, y+q[0].Y) && c.isOpen(x+q[1].X, y+q[1].Y) && c.isOpen(x+q[2].X, y+q[2].Y) {
			return false
		}
	}

	// A neighboring wall left with no other wall neighbor would become a pillar
	for _, d := range orthoDirs {
		nx, ny := x+d.X, y+d.Y
		if !c.isWall(nx, ny) {
			continue
		}
		links := 0
		for _, d2 := range orthoDirs {
			ax, ay := nx+d2.X, ny+d2.Y
			if ax == x && ay == y {
				continue
			}
			if c.isWall(ax, ay) {
				links++
			}
		}
		if links == 0 {
			return false
		}
	}
	return true
}

// oddAtLeast rounds n down to odd, with a lower bound of floor
func oddAtLeast(n, floor int) int {
	if n < floor {
		return floor
	}
	if n%2 == 0 {
		return n - 1
	}
	return n
}
