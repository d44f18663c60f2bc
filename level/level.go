package level

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/vi-raycaster/asset"
	"github.com/lixenwraith/vi-raycaster/grid"
	"github.com/lixenwraith/vi-raycaster/maze"
	"github.com/lixenwraith/vi-raycaster/raycast"
	"github.com/lixenwraith/vi-raycaster/vmath"
)

// DefaultLevelPath is checked when no level is given on the command line
const DefaultLevelPath = "levels/default.yaml"

var (
	ErrSpawnBlocked = errors.New("spawn position is not walkable")
	ErrNotFound     = errors.New("level file not found")
)

// Spawn is a start position in grid units
type Spawn struct {
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Heading float64 `yaml:"heading,omitempty"` // degrees, player only
}

// Level is a map plus the two spawn points
type Level struct {
	Name   string   `yaml:"name"`
	Rows   []string `yaml:"rows"`
	Player Spawn    `yaml:"player"`
	Enemy  Spawn    `yaml:"enemy"`

	grid *grid.Grid
}

// Parse decodes and validates a YAML level
func Parse(data []byte) (*Level, error) {
	var l Level
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("failed to parse level: %w", err)
	}
	if err := l.compile(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Load reads a level file
func Load(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	l, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// LoadAuto loads a level with priority: customPath > DefaultLevelPath > embedded reference
func LoadAuto(customPath string) (*Level, error) {
	if customPath != "" {
		return Load(customPath)
	}
	if fileExists(DefaultLevelPath) {
		return Load(DefaultLevelPath)
	}
	return Default(), nil
}

// Default returns the embedded reference level
func Default() *Level {
	l, err := Parse([]byte(asset.DefaultLevelYAML))
	if err != nil {
		panic(fmt.Sprintf("embedded reference level is invalid: %v", err))
	}
	return l
}

// FromMaze wraps a generated maze; the player starts at the maze start facing +x,
// the enemy at the far end
func FromMaze(res maze.Result) *Level {
	l := &Level{
		Name:   fmt.Sprintf("maze-%d", res.Seed),
		Rows:   res.Grid.Rows(),
		Player: Spawn{X: float64(res.Start.X) + 0.5, Y: float64(res.Start.Y) + 0.5},
		Enemy:  Spawn{X: float64(res.End.X) + 0.5, Y: float64(res.End.Y) + 0.5},
		grid:   res.Grid,
	}
	return l
}

// compile builds the grid and checks both spawns
func (l *Level) compile() error {
	g, err := grid.FromRows(l.Rows)
	if err != nil {
		return fmt.Errorf("level %q: %w", l.Name, err)
	}
	l.grid = g
	return l.Validate()
}

// Validate checks that both spawns stand on walkable cells
func (l *Level) Validate() error {
	if l.grid == nil {
		return l.compile()
	}
	if !l.grid.Walkable(l.Player.X, l.Player.Y) {
		return fmt.Errorf("%w: player at (%.2f, %.2f)", ErrSpawnBlocked, l.Player.X, l.Player.Y)
	}
	if !l.grid.Walkable(l.Enemy.X, l.Enemy.Y) {
		return fmt.Errorf("%w: enemy at (%.2f, %.2f)", ErrSpawnBlocked, l.Enemy.X, l.Enemy.Y)
	}
	return nil
}

// Grid returns the compiled map
func (l *Level) Grid() *grid.Grid {
	return l.grid
}

// PlayerPose returns the player spawn with heading in radians
func (l *Level) PlayerPose() raycast.Pose {
	return raycast.Pose{
		X:     l.Player.X,
		Y:     l.Player.Y,
		Angle: vmath.NormalizeAngle(vmath.Radians(l.Player.Heading)),
	}
}

// EnemyPos returns the enemy spawn
func (l *Level) EnemyPos() vmath.Vec2F {
	return vmath.V2F(l.Enemy.X, l.Enemy.Y)
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
