// Package navigation builds the free-cell adjacency graph of a grid.Grid and
// routes the enemy across it: hop-shortest BFS paths and a greedy per-tick
// steering controller that follows them.
package navigation

import (
	"github.com/lixenwraith/vi-raycaster/grid"
)

// Direction order for adjacency lists: up, down, left, right
// BFS tie-breaking follows this order
var DirVectors = [4]grid.Point{
	{X: 0, Y: -1},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
	{X: 1, Y: 0},
}

// Graph maps every Free cell to its orthogonal Free neighbors
// Read-only after BuildGraph
type Graph struct {
	adjacency map[grid.Point][]grid.Point
}

// BuildGraph derives the 4-connected visibility graph of the grid's Free cells
func BuildGraph(g *grid.Grid) *Graph {
	adj := make(map[grid.Point][]grid.Point)
	for _, p := range g.FreeCells() {
		neighbors := make([]grid.Point, 0, len(DirVectors))
		for _, d := range DirVectors {
			nx, ny := p.X+d.X, p.Y+d.Y
			if g.IsFree(nx, ny) {
				neighbors = append(neighbors, grid.Point{X: nx, Y: ny})
			}
		}
		adj[p] = neighbors
	}
	return &Graph{adjacency: adj}
}

// Neighbors returns the ordered neighbor list of p, nil if p is not a graph node
// The returned slice is shared; callers must not modify it
func (gr *Graph) Neighbors(p grid.Point) []grid.Point {
	return gr.adjacency[p]
}

// Contains reports whether p is a Free cell of the source grid
func (gr *Graph) Contains(p grid.Point) bool {
	_, ok := gr.adjacency[p]
	return ok
}

// Len returns the node count
func (gr *Graph) Len() int {
	return len(gr.adjacency)
}

// Adjacent reports whether b is in a's neighbor list
func (gr *Graph) Adjacent(a, b grid.Point) bool {
	for _, n := range gr.adjacency[a] {
		if n == b {
			return true
		}
	}
	return false
}
