package navigation

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"github.com/lixenwraith/vi-raycaster/grid"
)

// Path is an ordered cell sequence from start to goal, both inclusive
// Empty means no route
type Path []grid.Point

// Hops returns the edge count of the path, -1 for an empty path
func (p Path) Hops() int {
	return len(p) - 1
}

// Next returns the waypoint after the start cell, false when the path has fewer than two cells
func (p Path) Next() (grid.Point, bool) {
	if len(p) < 2 {
		return grid.Point{}, false
	}
	return p[1], true
}

// FindPath returns a hop-shortest path from start to goal by breadth-first search
// Ties between equal-length routes resolve by adjacency order (up, down, left, right)
// start == goal yields [start]; an unreachable goal, or either end outside the graph, yields an empty path
func FindPath(gr *Graph, start, goal grid.Point) Path {
	if !gr.Contains(start) || !gr.Contains(goal) {
		return Path{}
	}
	if start == goal {
		return Path{start}
	}

	frontier := queue.New[grid.Point]()
	visited := mapset.New[grid.Point]()
	cameFrom := make(map[grid.Point]grid.Point)

	frontier.Enqueue(start)
	visited.Put(start)

	found := false
	for !frontier.Empty() {
		curr := frontier.Dequeue()
		if curr == goal {
			found = true
			break
		}
		for _, next := range gr.Neighbors(curr) {
			if visited.Has(next) {
				continue
			}
			visited.Put(next)
			cameFrom[next] = curr
			frontier.Enqueue(next)
		}
	}
	if !found {
		return Path{}
	}

	// Walk predecessors back to start, then reverse in place
	path := Path{goal}
	for curr := goal; curr != start; {
		curr = cameFrom[curr]
		path = append(path, curr)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
