package parameter

// Enemy steering
const (
	// EnemyChaseStep is the per-tick step when enemy and player share a cell
	EnemyChaseStep = 0.05

	// EnemyPathStep is the per-tick step toward the next path waypoint
	EnemyPathStep = 0.03

	// EnemyArrivalRadius snaps the enemy onto a waypoint center once inside it
	EnemyArrivalRadius = 0.1

	// EnemyCatchRadius reports a catch when the enemy is this close to the player
	EnemyCatchRadius = 0.25
)
