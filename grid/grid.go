// Package grid holds the static occupancy map shared read-only by navigation,
// ray casting and steering.
package grid

import (
	"errors"
	"fmt"
	"strings"
)

// Cell is the occupancy state of one map square
type Cell uint8

const (
	Free Cell = iota
	Wall
)

// Rune glyphs used by FromRows and String
const (
	RuneWall = '#'
	RuneFree = '.'
)

var (
	ErrEmptyGrid   = errors.New("grid: no rows")
	ErrRaggedRows  = errors.New("grid: rows differ in width")
	ErrUnknownRune = errors.New("grid: unknown cell rune")
)

// Point addresses a cell by column (X) and row (Y)
type Point struct {
	X, Y int
}

// Grid is a fixed-size Free/Wall occupancy map, row-major
// Immutable after construction; safe to share between components
type Grid struct {
	width, height int
	cells         []Cell
}

// New creates a width×height grid with every cell Free
func New(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// NewBordered creates a grid with a solid outer ring and a Free interior
func NewBordered(width, height int) *Grid {
	g := New(width, height)
	for x := 0; x < width; x++ {
		g.set(x, 0, Wall)
		g.set(x, height-1, Wall)
	}
	for y := 0; y < height; y++ {
		g.set(0, y, Wall)
		g.set(width-1, y, Wall)
	}
	return g
}

// FromRows parses one string per row: '#' is Wall, '.' or ' ' is Free
func FromRows(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	width := len(rows[0])
	g := New(width, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrRaggedRows, y, len(row), width)
		}
		for x := 0; x < width; x++ {
			switch row[x] {
			case RuneWall:
				g.set(x, y, Wall)
			case RuneFree, ' ':
			default:
				return nil, fmt.Errorf("%w: %q at row %d col %d", ErrUnknownRune, row[x], y, x)
			}
		}
	}
	return g, nil
}

// FromCells builds a grid from a [row][col] wall mask
func FromCells(walls [][]bool) (*Grid, error) {
	if len(walls) == 0 || len(walls[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	width := len(walls[0])
	g := New(width, len(walls))
	for y, row := range walls {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrRaggedRows, y, len(row), width)
		}
		for x, wall := range row {
			if wall {
				g.set(x, y, Wall)
			}
		}
	}
	return g, nil
}

// Reference returns the 8×8 bordered map with two pairs of interior pillars
func Reference() *Grid {
	g, _ := FromRows(ReferenceRows)
	return g
}

// ReferenceRows is the textual form of Reference
var ReferenceRows = []string{
	"########",
	"#......#",
	"#.#..#.#",
	"#......#",
	"#......#",
	"#.#..#.#",
	"#......#",
	"########",
}

func (g *Grid) set(x, y int, c Cell) {
	if g.InBounds(x, y) {
		g.cells[y*g.width+x] = c
	}
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x, y) addresses a cell of the grid
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the cell at (x, y); out-of-bounds reads return Wall without touching memory
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Wall
	}
	return g.cells[y*g.width+x]
}

// IsWall reports an in-bounds Wall cell; out-of-bounds is not a wall hit
func (g *Grid) IsWall(x, y int) bool {
	return g.InBounds(x, y) && g.cells[y*g.width+x] == Wall
}

// IsFree reports an in-bounds Free cell
func (g *Grid) IsFree(x, y int) bool {
	return g.InBounds(x, y) && g.cells[y*g.width+x] == Free
}

// Walkable reports whether a continuous position lies inside the map on a Free cell
func (g *Grid) Walkable(x, y float64) bool {
	// Written as a positive range test so NaN falls out as not walkable
	if !(x >= 0 && y >= 0 && x < float64(g.width) && y < float64(g.height)) {
		return false
	}
	return g.cells[int(y)*g.width+int(x)] == Free
}

// FreeCells lists Free cells in row-major order
func (g *Grid) FreeCells() []Point {
	out := make([]Point, 0, len(g.cells))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y*g.width+x] == Free {
				out = append(out, Point{x, y})
			}
		}
	}
	return out
}

// Rows renders the grid back to its textual form
func (g *Grid) Rows() []string {
	rows := make([]string, g.height)
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		sb.Reset()
		for x := 0; x < g.width; x++ {
			if g.cells[y*g.width+x] == Wall {
				sb.WriteByte(RuneWall)
			} else {
				sb.WriteByte(RuneFree)
			}
		}
		rows[y] = sb.String()
	}
	return rows
}

func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}
