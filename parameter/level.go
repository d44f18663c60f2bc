package parameter

// Procedural level defaults
const (
	MazeDefaultWidth  = 15
	MazeDefaultHeight = 15
	MazeMinDimension  = 5

	// Some loops, not too many dead ends
	MazeBraiding = 0.3
)
