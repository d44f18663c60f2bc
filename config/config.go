package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/vi-raycaster/navigation"
	"github.com/lixenwraith/vi-raycaster/parameter"
	"github.com/lixenwraith/vi-raycaster/vmath"
)

// DefaultConfigPath is checked when no -config flag is given
const DefaultConfigPath = "config/vi-raycaster.yaml"

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Config holds all runtime tunables; zero-valued sections fall back to Default
type Config struct {
	Screen ScreenConfig `yaml:"screen"`
	Player PlayerConfig `yaml:"player"`
	Enemy  EnemyConfig  `yaml:"enemy"`
	Timing TimingConfig `yaml:"timing"`
	Audio  AudioConfig  `yaml:"audio"`
	Maze   MazeConfig   `yaml:"maze"`
	Keys   KeysConfig   `yaml:"keys"`
}

type ScreenConfig struct {
	Width      int     `yaml:"width"`  // 0 = terminal width
	Height     int     `yaml:"height"` // 0 = terminal height minus status line
	FOVDegrees float64 `yaml:"fov_degrees"`
}

type PlayerConfig struct {
	MoveStep float64 `yaml:"move_step"`
	TurnStep float64 `yaml:"turn_step"` // radians
}

type EnemyConfig struct {
	ChaseStep     float64 `yaml:"chase_step"`
	PathStep      float64 `yaml:"path_step"`
	ArrivalRadius float64 `yaml:"arrival_radius"`
	CatchRadius   float64 `yaml:"catch_radius"`
}

type TimingConfig struct {
	Tick time.Duration `yaml:"tick"`
	Poll time.Duration `yaml:"poll"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

type MazeConfig struct {
	Enabled  bool    `yaml:"enabled"`
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	Braiding float64 `yaml:"braiding"`
	Seed     int64   `yaml:"seed"`
}

// KeysConfig overrides default bindings; values are command names, "none" unbinds
type KeysConfig struct {
	Runes   map[string]string `yaml:"runes"`   // single characters or aliases (space, backslash)
	Special map[string]string `yaml:"special"` // up, down, left, right, esc, tab, enter, ctrl+c, ...
}

// Default returns the reference tunables
func Default() *Config {
	return &Config{
		Screen: ScreenConfig{
			FOVDegrees: parameter.FOVDegrees,
		},
		Player: PlayerConfig{
			MoveStep: parameter.PlayerMoveStep,
			TurnStep: parameter.PlayerTurnStep,
		},
		Enemy: EnemyConfig{
			ChaseStep:     parameter.EnemyChaseStep,
			PathStep:      parameter.EnemyPathStep,
			ArrivalRadius: parameter.EnemyArrivalRadius,
			CatchRadius:   parameter.EnemyCatchRadius,
		},
		Timing: TimingConfig{
			Tick: parameter.TickInterval,
			Poll: parameter.PollTimeout,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  parameter.AudioDefaultVolume,
		},
		Maze: MazeConfig{
			Width:    parameter.MazeDefaultWidth,
			Height:   parameter.MazeDefaultHeight,
			Braiding: parameter.MazeBraiding,
		},
	}
}

// Parse decodes YAML over the defaults and validates the result
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads a config file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadAuto loads config with priority: customPath > DefaultConfigPath > defaults
func LoadAuto(customPath string) (*Config, error) {
	if customPath != "" {
		return Load(customPath)
	}
	if info, err := os.Stat(DefaultConfigPath); err == nil && !info.IsDir() {
		return Load(DefaultConfigPath)
	}
	return Default(), nil
}

// Validate rejects values the simulation cannot run with
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Screen.Width >= 0, "screen.width must be >= 0, got %d", c.Screen.Width)
	check(c.Screen.Height >= 0, "screen.height must be >= 0, got %d", c.Screen.Height)
	check(c.Screen.FOVDegrees > 0 && c.Screen.FOVDegrees < 180, "screen.fov_degrees must be in (0, 180), got %g", c.Screen.FOVDegrees)
	check(c.Player.MoveStep > 0 && c.Player.MoveStep < 1, "player.move_step must be in (0, 1), got %g", c.Player.MoveStep)
	check(c.Player.TurnStep > 0, "player.turn_step must be > 0, got %g", c.Player.TurnStep)
	check(c.Enemy.ChaseStep > 0 && c.Enemy.ChaseStep < 1, "enemy.chase_step must be in (0, 1), got %g", c.Enemy.ChaseStep)
	check(c.Enemy.PathStep > 0 && c.Enemy.PathStep < 1, "enemy.path_step must be in (0, 1), got %g", c.Enemy.PathStep)
	check(c.Enemy.ArrivalRadius >= c.Enemy.PathStep, "enemy.arrival_radius must be >= path_step, got %g", c.Enemy.ArrivalRadius)
	check(c.Enemy.CatchRadius >= 0, "enemy.catch_radius must be >= 0, got %g", c.Enemy.CatchRadius)
	check(c.Timing.Tick > 0, "timing.tick must be > 0, got %v", c.Timing.Tick)
	check(c.Timing.Poll > 0 && c.Timing.Poll <= c.Timing.Tick, "timing.poll must be in (0, tick], got %v", c.Timing.Poll)
	check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio.volume must be in [0, 1], got %g", c.Audio.Volume)
	check(!c.Maze.Enabled || (c.Maze.Width >= parameter.MazeMinDimension && c.Maze.Height >= parameter.MazeMinDimension),
		"maze dimensions must be >= %d, got %dx%d", parameter.MazeMinDimension, c.Maze.Width, c.Maze.Height)
	check(c.Maze.Braiding >= 0 && c.Maze.Braiding <= 1, "maze.braiding must be in [0, 1], got %g", c.Maze.Braiding)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}

// FOV returns the field of view in radians
func (c *Config) FOV() float64 {
	return vmath.Radians(c.Screen.FOVDegrees)
}

// SteerParams returns enemy steering steps
func (c *Config) SteerParams() navigation.SteerParams {
	return navigation.SteerParams{
		ChaseStep:     c.Enemy.ChaseStep,
		PathStep:      c.Enemy.PathStep,
		ArrivalRadius: c.Enemy.ArrivalRadius,
	}
}
