package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-raycaster/grid"
	"github.com/lixenwraith/vi-raycaster/navigation"
	"github.com/lixenwraith/vi-raycaster/parameter"
	"github.com/lixenwraith/vi-raycaster/raycast"
	"github.com/lixenwraith/vi-raycaster/vmath"
)

// Status is the per-tick HUD content
type Status struct {
	Player        raycast.Pose
	EnemyDistance float64
	PathHops      int
	Visible       bool
	Caught        int
	Muted         bool
	Tick          uint64
}

// Minimap is the optional top-down overlay
type Minimap struct {
	Grid   *grid.Grid
	Player raycast.Pose
	Enemy  vmath.Vec2F
	Path   navigation.Path
}

// TerminalRenderer presents frames on a tcell screen
// The frame occupies the top rows; the HUD line sits below it
type TerminalRenderer struct {
	screen tcell.Screen

	base      tcell.Style
	wallH     tcell.Style
	wallV     tcell.Style
	enemy     tcell.Style
	status    tcell.Style
	alert     tcell.Style
	mapWall   tcell.Style
	mapFloor  tcell.Style
	mapPlayer tcell.Style
	mapEnemy  tcell.Style
	mapPath   tcell.Style
}

// NewTerminalRenderer creates a renderer bound to an initialized screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	base := tcell.StyleDefault.Background(RgbBackground)
	return &TerminalRenderer{
		screen:    screen,
		base:      base,
		wallH:     base.Foreground(RgbWallHorizontal),
		wallV:     base.Foreground(RgbWallVertical),
		enemy:     base.Foreground(RgbEnemy).Background(RgbEnemyHighlight).Bold(true),
		status:    base.Foreground(RgbStatusText),
		alert:     base.Foreground(RgbStatusAlert).Bold(true),
		mapWall:   base.Background(RgbMapWall),
		mapFloor:  base.Background(RgbMapFloor),
		mapPlayer: base.Foreground(RgbMapPlayer).Background(RgbMapFloor).Bold(true),
		mapEnemy:  base.Foreground(RgbEnemy).Background(RgbMapFloor).Bold(true),
		mapPath:   base.Foreground(RgbMapPath).Background(RgbMapFloor),
	}
}

// ViewSize returns the frame dimensions that fit the screen above the HUD
func (r *TerminalRenderer) ViewSize() (int, int) {
	w, h := r.screen.Size()
	return w, max(h-parameter.HUDRows, 1)
}

// Present draws the frame, the HUD and, when non-nil, the minimap, then shows the screen
// The frame is only read for the duration of the call
func (r *TerminalRenderer) Present(f *FrameBuffer, s Status, m *Minimap) {
	r.screen.SetStyle(r.base)
	r.screen.Clear()

	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			ch, style := r.cellContent(f.At(x, y))
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}

	r.drawStatus(f.Height(), s)
	if m != nil {
		r.drawMinimap(m)
	}

	r.screen.Show()
}

// cellContent maps an abstract glyph to rune and style
func (r *TerminalRenderer) cellContent(c Cell) (rune, tcell.Style) {
	switch c.Glyph {
	case GlyphWallHorizontal:
		return RuneWallHorizontal, r.wallH
	case GlyphWallVertical:
		return RuneWallVertical, r.wallV
	case GlyphEnemy:
		if c.Highlight {
			return RuneEnemy, r.enemy
		}
		return RuneEnemy, r.base.Foreground(RgbEnemy)
	default:
		return RuneEmpty, r.base
	}
}

// StatusLine formats the HUD text
func StatusLine(s Status) string {
	vis := "hidden"
	if s.Visible {
		vis = "VISIBLE"
	}
	hops := "-"
	if s.PathHops >= 0 {
		hops = fmt.Sprintf("%d", s.PathHops)
	}
	line := fmt.Sprintf(" px:%.2f py:%.2f pa:%.0f° | enemy %.2f away, %s hops, %s | caught %d",
		s.Player.X, s.Player.Y, vmath.Degrees(s.Player.Angle), s.EnemyDistance, hops, vis, s.Caught)
	if s.Muted {
		line += " | muted"
	}
	return line
}

func (r *TerminalRenderer) drawStatus(row int, s Status) {
	style := r.status
	if s.Visible {
		style = r.alert
	}
	w, _ := r.screen.Size()
	x := 0
	for _, ch := range StatusLine(s) {
		if x >= w {
			break
		}
		r.screen.SetContent(x, row, ch, nil, style)
		x++
	}
}

// drawMinimap paints the grid top-left, two terminal columns per cell
func (r *TerminalRenderer) drawMinimap(m *Minimap) {
	onPath := make(map[grid.Point]bool, len(m.Path))
	for _, p := range m.Path {
		onPath[p] = true
	}
	px, py := m.Player.Pos().Cell()
	ex, ey := m.Enemy.Cell()
	cw := parameter.MinimapCellWidth

	for y := 0; y < m.Grid.Height(); y++ {
		for x := 0; x < m.Grid.Width(); x++ {
			ch, style := ' ', r.mapFloor
			switch {
			case m.Grid.IsWall(x, y):
				style = r.mapWall
			case x == px && y == py:
				ch, style = RunePlayer, r.mapPlayer
			case x == ex && y == ey:
				ch, style = RuneEnemy, r.mapEnemy
			case onPath[grid.Point{X: x, Y: y}]:
				ch, style = RunePath, r.mapPath
			}
			r.screen.SetContent(x*cw, y, ch, nil, style)
			for i := 1; i < cw; i++ {
				r.screen.SetContent(x*cw+i, y, ' ', nil, style)
			}
		}
	}
}

// Sync repaints the whole screen after a resize or corruption
func (r *TerminalRenderer) Sync() {
	r.screen.Sync()
}
