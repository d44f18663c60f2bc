package parameter

import "math"

// Player kinematics
const (
	// PlayerMoveStep is the distance covered by one forward/backward command (map units)
	PlayerMoveStep = 0.1

	// PlayerTurnStep is the heading change of one turn command (radians)
	PlayerTurnStep = 0.1
)

// Field of view
const (
	// FOVDegrees is the horizontal field of view
	FOVDegrees = 60.0

	// FOV is FOVDegrees in radians
	FOV = FOVDegrees * math.Pi / 180
)
