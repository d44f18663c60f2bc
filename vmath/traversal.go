package vmath

// LineTraverser is a zero-allocation iterator over the cells of an integer line (Bresenham)
// It yields the start cell and every intermediate cell, stopping before the target cell
type LineTraverser struct {
	currX, currY     int
	targetX, targetY int
	stepX, stepY     int

	dx, dy int // dy is stored negated
	err    int

	started bool
	done    bool
}

// NewLineTraverser creates an iterator from (x0, y0) toward (x1, y1)
func NewLineTraverser(x0, y0, x1, y1 int) LineTraverser {
	t := LineTraverser{
		currX: x0, currY: y0,
		targetX: x1, targetY: y1,
		stepX: 1, stepY: 1,
	}

	t.dx = x1 - x0
	if t.dx < 0 {
		t.dx = -t.dx
	}
	t.dy = y1 - y0
	if t.dy > 0 {
		t.dy = -t.dy
	}
	if x0 >= x1 {
		t.stepX = -1
	}
	if y0 >= y1 {
		t.stepY = -1
	}
	t.err = t.dx + t.dy

	return t
}

// Next advances the traverser to the next cell
// Returns true if a cell is available via Pos(), false once the target is reached
func (t *LineTraverser) Next() bool {
	if t.done {
		return false
	}
	if !t.started {
		t.started = true
	} else {
		e2 := 2 * t.err
		if e2 >= t.dy {
			t.err += t.dy
			t.currX += t.stepX
		}
		if e2 <= t.dx {
			t.err += t.dx
			t.currY += t.stepY
		}
	}

	if t.currX == t.targetX && t.currY == t.targetY {
		t.done = true
		return false
	}
	return true
}

// Pos returns the current grid coordinates
func (t *LineTraverser) Pos() (int, int) {
	return t.currX, t.currY
}

// TraverseLine visits every cell LineTraverser yields, stopping early when callback returns false
func TraverseLine(x0, y0, x1, y1 int, callback func(x, y int) bool) {
	t := NewLineTraverser(x0, y0, x1, y1)
	for t.Next() {
		if !callback(t.Pos()) {
			return
		}
	}
}
