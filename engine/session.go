package engine

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-raycaster/config"
	"github.com/lixenwraith/vi-raycaster/grid"
	"github.com/lixenwraith/vi-raycaster/input"
	"github.com/lixenwraith/vi-raycaster/level"
	"github.com/lixenwraith/vi-raycaster/navigation"
	"github.com/lixenwraith/vi-raycaster/parameter"
	"github.com/lixenwraith/vi-raycaster/raycast"
	"github.com/lixenwraith/vi-raycaster/render"
	"github.com/lixenwraith/vi-raycaster/vmath"
)

// TickResult reports what happened during one tick
type TickResult struct {
	Tick    uint64
	Path    navigation.Path // enemy cell → player cell, computed before the enemy moved
	Visible bool            // enemy in line of sight after moving
	Spotted bool            // Visible became true this tick
	Caught  bool            // enemy entered the catch radius this tick
	Bumped  bool            // player movement rejected by a wall
	Quit    bool
}

// Session owns the complete simulation state for one level
// Grid and graph are read-only after construction; poses and the frame are mutated only by Tick
type Session struct {
	grid  *grid.Grid
	graph *navigation.Graph

	player raycast.Pose
	enemy  vmath.Vec2F

	frame    *render.FrameBuffer
	caster   *raycast.Caster
	composer *render.Composer

	steer       navigation.SteerParams
	moveStep    float64
	turnStep    float64
	catchRadius float64

	tick      uint64
	path      navigation.Path
	visible   bool
	inReach   bool
	caught    int
	levelName string

	log *logrus.Entry
}

// NewSession builds the graph and render pipeline for a level
// Frame size comes from cfg.Screen; zero dimensions fall back to the reference screen
func NewSession(lvl *level.Level, cfg *config.Config) (*Session, error) {
	if lvl == nil {
		return nil, fmt.Errorf("nil level")
	}
	if cfg == nil {
		cfg = config.Default()
	}
	if err := lvl.Validate(); err != nil {
		return nil, fmt.Errorf("level %q: %w", lvl.Name, err)
	}

	width, height := cfg.Screen.Width, cfg.Screen.Height
	if width <= 0 {
		width = parameter.ScreenWidth
	}
	if height <= 0 {
		height = parameter.ScreenHeight
	}

	g := lvl.Grid()
	s := &Session{
		grid:        g,
		graph:       navigation.BuildGraph(g),
		player:      lvl.PlayerPose(),
		enemy:       lvl.EnemyPos(),
		frame:       render.NewFrameBuffer(width, height),
		caster:      raycast.NewCaster(width, height, cfg.FOV()),
		composer:    render.NewComposer(cfg.FOV(), height),
		steer:       cfg.SteerParams(),
		moveStep:    cfg.Player.MoveStep,
		turnStep:    cfg.Player.TurnStep,
		catchRadius: cfg.Enemy.CatchRadius,
		levelName:   lvl.Name,
	}
	s.log = logrus.WithFields(logrus.Fields{
		"component": "session",
		"level":     lvl.Name,
	})
	s.inReach = s.withinReach()

	s.log.WithFields(logrus.Fields{
		"grid":   fmt.Sprintf("%dx%d", g.Width(), g.Height()),
		"frame":  fmt.Sprintf("%dx%d", width, height),
		"nodes":  s.graph.Len(),
		"player": s.player,
		"enemy":  s.enemy,
	}).Info("session created")

	return s, nil
}

// Apply moves or turns the player for one command
// Returns true when a forward/backward step was rejected by a wall or the map edge
func (s *Session) Apply(cmd input.Command) (bumped bool) {
	switch cmd {
	case input.CommandForward:
		return !s.step(s.moveStep)
	case input.CommandBackward:
		return !s.step(-s.moveStep)
	case input.CommandTurnLeft:
		s.player.Angle = vmath.NormalizeAngle(s.player.Angle - s.turnStep)
	case input.CommandTurnRight:
		s.player.Angle = vmath.NormalizeAngle(s.player.Angle + s.turnStep)
	}
	return false
}

// step moves the player along the heading; the pose is unchanged when the target is not walkable
func (s *Session) step(dist float64) bool {
	nx := s.player.X + math.Cos(s.player.Angle)*dist
	ny := s.player.Y + math.Sin(s.player.Angle)*dist
	if !s.grid.Walkable(nx, ny) {
		return false
	}
	s.player.X, s.player.Y = nx, ny
	return true
}

// Tick advances the simulation by one step and recomposes the frame
// Order: input → path → steering → walls → line of sight → sprite
func (s *Session) Tick(cmd input.Command) TickResult {
	s.tick++
	res := TickResult{Tick: s.tick}

	if cmd == input.CommandQuit {
		res.Quit = true
		return res
	}

	res.Bumped = s.Apply(cmd)
	if res.Bumped {
		s.log.WithField("player", s.player).Debug("move blocked")
	}

	ex, ey := s.enemy.Cell()
	px, py := s.player.Pos().Cell()
	s.path = navigation.FindPath(s.graph, grid.Point{X: ex, Y: ey}, grid.Point{X: px, Y: py})
	res.Path = s.path

	s.enemy = navigation.Steer(s.grid, s.enemy, s.player.Pos(), s.path, s.steer)

	columns := s.caster.CastFrame(s.grid, s.player)
	visible := raycast.IsVisible(s.grid, s.player.Pos(), s.enemy)
	s.composer.Compose(s.frame, columns, s.player, s.enemy, visible)

	res.Visible = visible
	res.Spotted = visible && !s.visible
	s.visible = visible
	if res.Spotted {
		s.log.WithFields(logrus.Fields{"tick": s.tick, "distance": s.EnemyDistance()}).Info("enemy spotted")
	}

	inReach := s.withinReach()
	res.Caught = inReach && !s.inReach
	s.inReach = inReach
	if res.Caught {
		s.caught++
		s.log.WithFields(logrus.Fields{"tick": s.tick, "count": s.caught}).Info("player caught")
	}

	return res
}

func (s *Session) withinReach() bool {
	return s.EnemyDistance() <= s.catchRadius
}

// EnemyDistance is the Euclidean distance between player and enemy
func (s *Session) EnemyDistance() float64 {
	return vmath.V2FDist(s.player.Pos(), s.enemy)
}

func (s *Session) Grid() *grid.Grid           { return s.grid }
func (s *Session) Frame() *render.FrameBuffer { return s.frame }
func (s *Session) Player() raycast.Pose       { return s.player }
func (s *Session) Enemy() vmath.Vec2F         { return s.enemy }
func (s *Session) Path() navigation.Path      { return s.path }
func (s *Session) Visible() bool              { return s.visible }
func (s *Session) CaughtCount() int           { return s.caught }
func (s *Session) TickCount() uint64          { return s.tick }
func (s *Session) LevelName() string          { return s.levelName }

// Status snapshots the HUD content
func (s *Session) Status(muted bool) render.Status {
	return render.Status{
		Player:        s.player,
		EnemyDistance: s.EnemyDistance(),
		PathHops:      s.path.Hops(),
		Visible:       s.visible,
		Caught:        s.caught,
		Muted:         muted,
		Tick:          s.tick,
	}
}

// Minimap snapshots the overlay content
func (s *Session) Minimap() *render.Minimap {
	return &render.Minimap{
		Grid:   s.grid,
		Player: s.player,
		Enemy:  s.enemy,
		Path:   s.path,
	}
}
