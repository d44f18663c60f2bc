package parameter

// Ray marching
const (
	// RayEdgeEpsilon nudges a ray off a grid line when stepping toward decreasing coordinates,
	// so the truncated cell is the one being entered rather than the one being left
	RayEdgeEpsilon = 0.0001
)
