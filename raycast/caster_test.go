package raycast

import (
	"math"
	"testing"

	"github.com/lixenwraith/vi-raycaster/grid"
)

func TestCastRayAxisAlignedOneUnit(t *testing.T) {
	g := grid.NewBordered(8, 8)
	c := NewCaster(320, 160, 0)

	tests := []struct {
		name  string
		x, y  float64
		angle float64
		kind  HitKind
	}{
		{"East", 6.0, 3.5, 0, HitVertical},
		{"South", 3.5, 6.0, math.Pi / 2, HitHorizontal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := CastRay(g, tt.x, tt.y, tt.angle)
			if hit.Kind != tt.kind {
				t.Errorf("Expected %v hit, got %v", tt.kind, hit.Kind)
			}
			if math.Abs(hit.Distance-1.0) > 1e-9 {
				t.Errorf("Expected distance 1.0, got %v", hit.Distance)
			}

			// Corrected distance along the heading is unchanged
			corrected := hit.Distance * math.Cos(0)
			if h := c.SliceHeight(corrected); h != c.Height {
				t.Errorf("Expected slice height %d, got %d", c.Height, h)
			}
		})
	}
}

func TestCastRayDecreasingDirections(t *testing.T) {
	g := grid.NewBordered(8, 8)

	tests := []struct {
		name  string
		x, y  float64
		angle float64
		kind  HitKind
	}{
		{"West", 2.0, 3.5, math.Pi, HitVertical},
		{"North", 3.5, 2.0, 3 * math.Pi / 2, HitHorizontal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := CastRay(g, tt.x, tt.y, tt.angle)
			if hit.Kind != tt.kind {
				t.Errorf("Expected %v hit, got %v", tt.kind, hit.Kind)
			}
			// Edge nudge adds at most the epsilon to the true distance
			if math.Abs(hit.Distance-1.0) > 1e-3 {
				t.Errorf("Expected distance ~1.0, got %v", hit.Distance)
			}
		})
	}
}

func TestCastRayAxisAnglesAreFinite(t *testing.T) {
	g := grid.Reference()
	for _, a := range []float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2} {
		hit := CastRay(g, 3.3, 3.7, a)
		if hit.Kind == HitNone || math.IsInf(hit.Distance, 0) || math.IsNaN(hit.Distance) {
			t.Errorf("Angle %v: expected a finite wall hit inside a bordered map, got %+v", a, hit)
		}
	}
}

func TestCastRayOpenMapMisses(t *testing.T) {
	// No walls anywhere: every ray leaves the map
	g := grid.New(6, 6)
	hit := CastRay(g, 3, 3, 0.7)
	if hit.Kind != HitNone {
		t.Errorf("Expected no hit, got %v", hit.Kind)
	}
	if !math.IsInf(hit.Distance, 1) {
		t.Errorf("Expected +Inf distance, got %v", hit.Distance)
	}

	c := NewCaster(10, 10, 0)
	col := c.CastColumn(g, Pose{X: 3, Y: 3}, 5)
	if col.Height != 0 {
		t.Errorf("Expected empty column, got height %d", col.Height)
	}
}

func TestCastRayPicksNearerPass(t *testing.T) {
	g, err := grid.FromRows([]string{
		"########",
		"#......#",
		"#......#",
		"#...#..#",
		"#......#",
		"########",
	})
	if err != nil {
		t.Fatal(err)
	}
	// Looking east along row 3, the pillar's west face is 1.5 away
	hit := CastRay(g, 2.5, 3.5, 0)
	if hit.Kind != HitVertical {
		t.Errorf("Expected vertical hit, got %v", hit.Kind)
	}
	if math.Abs(hit.Distance-1.5) > 1e-9 {
		t.Errorf("Expected distance 1.5, got %v", hit.Distance)
	}
	if int(hit.X) != 4 || int(hit.Y) != 3 {
		t.Errorf("Expected hit in cell (4,3), got (%v, %v)", hit.X, hit.Y)
	}
}

func TestSliceHeight(t *testing.T) {
	c := NewCaster(80, 40, 0)
	tests := []struct {
		name string
		dist float64
		want int
	}{
		{"Zero distance", 0, 40},
		{"Negative distance", -1, 40},
		{"Closer than one", 0.5, 40},
		{"One unit", 1, 40},
		{"Two units", 2, 20},
		{"Floors", 3, 13},
		{"No hit", math.Inf(1), 0},
		{"NaN", math.NaN(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.SliceHeight(tt.dist); got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestCastColumnCentersSlice(t *testing.T) {
	g := grid.NewBordered(8, 8)
	c := NewCaster(40, 20, 0)
	col := c.CastColumn(g, Pose{X: 4, Y: 4, Angle: 0}, 20)
	if col.Top != c.Height/2-col.Height/2 {
		t.Errorf("Expected top %d, got %d", c.Height/2-col.Height/2, col.Top)
	}
	if col.Top < 0 || col.Top+col.Height > c.Height {
		t.Errorf("Slice [%d, %d) outside screen", col.Top, col.Top+col.Height)
	}
}

func TestCastFrameFacingWallIsSymmetricAndFlat(t *testing.T) {
	g := grid.NewBordered(8, 8)
	c := NewCaster(64, 48, 0)
	cols := c.CastFrame(g, Pose{X: 4, Y: 4, Angle: 0})

	if len(cols) != c.Width {
		t.Fatalf("Expected %d columns, got %d", c.Width, len(cols))
	}
	center := cols[c.Width/2].Height
	for i := 1; i < c.Width; i++ {
		mirror := cols[c.Width-i].Height
		if d := cols[i].Height - mirror; d < -1 || d > 1 {
			t.Errorf("Column %d height %d vs mirror %d", i, cols[i].Height, mirror)
		}
		// Fisheye correction flattens a perpendicular wall
		if d := cols[i].Height - center; d < -1 || d > 1 {
			t.Errorf("Column %d height %d differs from center %d", i, cols[i].Height, center)
		}
	}
}

func TestCastFrameFacingCornerIsSymmetric(t *testing.T) {
	g := grid.NewBordered(8, 8)
	c := NewCaster(64, 48, 0)
	cols := c.CastFrame(g, Pose{X: 4, Y: 4, Angle: math.Pi / 4})

	center := cols[c.Width/2].Height
	for i := 1; i < c.Width; i++ {
		mirror := cols[c.Width-i].Height
		if d := cols[i].Height - mirror; d < -1 || d > 1 {
			t.Errorf("Column %d height %d vs mirror %d", i, cols[i].Height, mirror)
		}
		if cols[i].Height < center {
			t.Errorf("Column %d height %d below corner height %d", i, cols[i].Height, center)
		}
	}
	if cols[1].Height <= center {
		t.Errorf("Expected edge column taller than the far corner, got %d vs %d", cols[1].Height, center)
	}
}

func TestCastFrameHitKinds(t *testing.T) {
	g := grid.NewBordered(8, 8)
	c := NewCaster(64, 48, 0)

	// Facing east: every ray hits the east wall face, a vertical edge
	for _, col := range c.CastFrame(g, Pose{X: 4, Y: 4, Angle: 0}) {
		if col.Kind != HitVertical {
			t.Fatalf("Column %d: expected vertical hit, got %v", col.Index, col.Kind)
		}
	}
	// Facing south: horizontal edges
	for _, col := range c.CastFrame(g, Pose{X: 4, Y: 4, Angle: math.Pi / 2}) {
		if col.Kind != HitHorizontal {
			t.Fatalf("Column %d: expected horizontal hit, got %v", col.Index, col.Kind)
		}
	}
}

func TestRayAngleIsNormalized(t *testing.T) {
	c := NewCaster(100, 50, 0)
	for col := 0; col < c.Width; col++ {
		a := c.RayAngle(0.1, col)
		if a < 0 || a >= 2*math.Pi {
			t.Fatalf("Column %d: angle %v outside [0, 2π)", col, a)
		}
	}
}
