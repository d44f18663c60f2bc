package render

import (
	"math"

	"github.com/lixenwraith/vi-raycaster/parameter"
	"github.com/lixenwraith/vi-raycaster/raycast"
	"github.com/lixenwraith/vi-raycaster/vmath"
)

// Composer paints wall slices and the enemy billboard into a FrameBuffer
type Composer struct {
	FOV       float64
	MaxSprite int     // sprite edge cap in cells
	Falloff   float64 // size = MaxSprite / (d²/Falloff + 1)
}

// NewComposer sizes the sprite cap to the frame height
func NewComposer(fov float64, frameHeight int) *Composer {
	maxSprite := frameHeight * parameter.SpriteMaxNumerator / parameter.SpriteMaxDenominator
	return &Composer{
		FOV:       fov,
		MaxSprite: max(maxSprite, 1),
		Falloff:   parameter.SpriteFalloff,
	}
}

// SliceGlyph maps a hit kind to its wall glyph
func SliceGlyph(k raycast.HitKind) Glyph {
	if k == raycast.HitVertical {
		return GlyphWallVertical
	}
	return GlyphWallHorizontal
}

// Compose clears the frame, draws every column's slice, then the enemy sprite when visible
func (c *Composer) Compose(f *FrameBuffer, columns []raycast.Column, player raycast.Pose, enemy vmath.Vec2F, visible bool) {
	f.Clear()
	for _, col := range columns {
		if col.Height <= 0 {
			continue
		}
		f.DrawColumn(col.Index, col.Top, col.Height, SliceGlyph(col.Kind))
	}
	if visible {
		c.DrawSprite(f, player, enemy)
	}
}

// Sprite is the placement of the enemy billboard on screen
type Sprite struct {
	X, Y int // top-left
	Size int
}

// PlaceSprite computes the billboard square for an enemy seen from player
// Returns false when the enemy lies outside the field of view
func (c *Composer) PlaceSprite(frameW, frameH int, player raycast.Pose, enemy vmath.Vec2F) (Sprite, bool) {
	diff := vmath.SignedAngleDiff(player.Angle, vmath.BearingTo(player.Pos(), enemy))
	half := c.FOV / 2
	if math.Abs(diff) > half {
		return Sprite{}, false
	}

	d := vmath.V2FDist(player.Pos(), enemy)
	size := float64(c.MaxSprite) / (d*d/c.Falloff + 1)
	size = math.Min(math.Max(size, 1), float64(c.MaxSprite))
	n := int(size)

	centerX := int(math.Round((diff + half) * float64(frameW) / c.FOV))
	return Sprite{
		X:    centerX - n/2,
		Y:    frameH/2 - n/2,
		Size: n,
	}, true
}

// DrawSprite paints the enemy square, highlighted, clipped to the frame
func (c *Composer) DrawSprite(f *FrameBuffer, player raycast.Pose, enemy vmath.Vec2F) bool {
	s, ok := c.PlaceSprite(f.Width(), f.Height(), player, enemy)
	if !ok {
		return false
	}
	f.FillRect(s.X, s.Y, s.Size, s.Size, Cell{Glyph: GlyphEnemy, Highlight: true})
	return true
}
