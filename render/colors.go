package render

import (
	"github.com/gdamore/tcell/v2"
)

// Palette (Tokyo Night base)
var (
	RgbBackground     = tcell.NewRGBColor(26, 27, 38)
	RgbWallHorizontal = tcell.NewRGBColor(169, 177, 214) // lit faces
	RgbWallVertical   = tcell.NewRGBColor(86, 95, 137)   // shaded faces
	RgbEnemy          = tcell.NewRGBColor(247, 118, 142)
	RgbEnemyHighlight = tcell.NewRGBColor(80, 20, 30)
	RgbStatusText     = tcell.NewRGBColor(192, 202, 245)
	RgbStatusAlert    = tcell.NewRGBColor(255, 158, 100)
	RgbMapWall        = tcell.NewRGBColor(65, 72, 104)
	RgbMapFloor       = tcell.NewRGBColor(36, 40, 59)
	RgbMapPlayer      = tcell.NewRGBColor(158, 206, 106)
	RgbMapPath        = tcell.NewRGBColor(224, 175, 104)
)

// Runes for each glyph
const (
	RuneWallHorizontal = '-'
	RuneWallVertical   = '|'
	RuneEnemy          = 'E'
	RuneEmpty          = ' '
	RunePlayer         = '@'
	RunePath           = '·'
)
