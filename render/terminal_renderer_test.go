package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-raycaster/grid"
	"github.com/lixenwraith/vi-raycaster/navigation"
	"github.com/lixenwraith/vi-raycaster/raycast"
	"github.com/lixenwraith/vi-raycaster/vmath"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func TestViewSizeReservesHUD(t *testing.T) {
	screen := newTestScreen(t, 80, 25)
	r := NewTerminalRenderer(screen)

	w, h := r.ViewSize()
	if w != 80 || h != 24 {
		t.Errorf("Expected view 80x24, got %dx%d", w, h)
	}
}

func TestPresentGlyphs(t *testing.T) {
	screen := newTestScreen(t, 10, 6)
	r := NewTerminalRenderer(screen)

	f := NewFrameBuffer(10, 5)
	f.DrawColumn(0, 0, 5, GlyphWallHorizontal)
	f.DrawColumn(1, 1, 3, GlyphWallVertical)
	f.Set(5, 2, Cell{Glyph: GlyphEnemy, Highlight: true})

	r.Present(f, Status{PathHops: -1}, nil)

	tests := []struct {
		x, y int
		want rune
	}{
		{0, 0, RuneWallHorizontal},
		{0, 4, RuneWallHorizontal},
		{1, 0, RuneEmpty},
		{1, 2, RuneWallVertical},
		{5, 2, RuneEnemy},
		{9, 4, RuneEmpty},
	}
	for _, tt := range tests {
		ch, _, _, _ := screen.GetContent(tt.x, tt.y)
		if ch != tt.want {
			t.Errorf("Expected %q at (%d,%d), got %q", tt.want, tt.x, tt.y, ch)
		}
	}

	_, _, style, _ := screen.GetContent(5, 2)
	fg, bg, attr := style.Decompose()
	if fg != RgbEnemy || bg != RgbEnemyHighlight {
		t.Errorf("Expected highlighted enemy colors, got fg=%v bg=%v", fg, bg)
	}
	if attr&tcell.AttrBold == 0 {
		t.Error("Expected highlighted enemy to be bold")
	}
}

func TestPresentStatusLine(t *testing.T) {
	screen := newTestScreen(t, 120, 4)
	r := NewTerminalRenderer(screen)
	f := NewFrameBuffer(120, 3)

	s := Status{
		Player:        raycast.Pose{X: 3, Y: 3, Angle: 0},
		EnemyDistance: 4.24,
		PathHops:      6,
	}
	r.Present(f, s, nil)

	var b strings.Builder
	for x := 0; x < 120; x++ {
		ch, _, _, _ := screen.GetContent(x, 3)
		b.WriteRune(ch)
	}
	got := strings.TrimRight(b.String(), " ")
	if got != StatusLine(s) {
		t.Errorf("Expected status row %q, got %q", StatusLine(s), got)
	}
}

func TestStatusLine(t *testing.T) {
	tests := []struct {
		name    string
		status  Status
		contain []string
		absent  []string
	}{
		{
			name:    "Hidden",
			status:  Status{Player: raycast.Pose{X: 1.5, Y: 2.25}, PathHops: 3},
			contain: []string{"px:1.50", "py:2.25", "pa:0°", "3 hops", "hidden"},
			absent:  []string{"VISIBLE", "muted"},
		},
		{
			name:    "Visible and muted",
			status:  Status{Visible: true, Muted: true, PathHops: 0},
			contain: []string{"VISIBLE", "muted", "0 hops"},
		},
		{
			name:    "Unreachable",
			status:  Status{PathHops: -1},
			contain: []string{"- hops"},
		},
		{
			name:    "Heading degrees",
			status:  Status{Player: raycast.Pose{Angle: vmath.Radians(90)}},
			contain: []string{"pa:90°"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := StatusLine(tt.status)
			for _, s := range tt.contain {
				if !strings.Contains(line, s) {
					t.Errorf("Expected %q in %q", s, line)
				}
			}
			for _, s := range tt.absent {
				if strings.Contains(line, s) {
					t.Errorf("Expected no %q in %q", s, line)
				}
			}
		})
	}
}

func TestPresentMinimap(t *testing.T) {
	screen := newTestScreen(t, 40, 12)
	r := NewTerminalRenderer(screen)
	f := NewFrameBuffer(40, 11)

	g := grid.Reference()
	path := navigation.FindPath(navigation.BuildGraph(g), grid.Point{X: 6, Y: 6}, grid.Point{X: 3, Y: 3})
	m := &Minimap{
		Grid:   g,
		Player: raycast.Pose{X: 3.5, Y: 3.5},
		Enemy:  vmath.V2F(6.5, 6.5),
		Path:   path,
	}
	r.Present(f, Status{}, m)

	ch, _, _, _ := screen.GetContent(3*2, 3)
	if ch != RunePlayer {
		t.Errorf("Expected player marker, got %q", ch)
	}
	ch, _, _, _ = screen.GetContent(6*2, 6)
	if ch != RuneEnemy {
		t.Errorf("Expected enemy marker, got %q", ch)
	}

	_, _, style, _ := screen.GetContent(0, 0)
	_, bg, _ := style.Decompose()
	if bg != RgbMapWall {
		t.Errorf("Expected wall background at map corner, got %v", bg)
	}

	pathCells := 0
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if ch, _, _, _ := screen.GetContent(x*2, y); ch == RunePath {
				pathCells++
			}
		}
	}
	if want := len(path) - 2; pathCells != want {
		t.Errorf("Expected %d path markers between enemy and player, got %d", want, pathCells)
	}
}
