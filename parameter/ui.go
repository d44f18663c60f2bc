package parameter

// Reference screen, used when the terminal size is not taken
const (
	ScreenWidth  = 320
	ScreenHeight = 160
)

// Billboard sprite
const (
	// SpriteMaxNumerator / SpriteMaxDenominator scales the sprite cap to screen height (140 of 160 rows)
	SpriteMaxNumerator   = 7
	SpriteMaxDenominator = 8

	// SpriteFalloff is the divisor in the size falloff: max / (d²/SpriteFalloff + 1)
	SpriteFalloff = 5.0
)

// HUD
const (
	// HUDRows is the number of terminal rows reserved under the 3-D view
	HUDRows = 1

	// MinimapCellWidth is the terminal columns per map cell in the minimap overlay
	MinimapCellWidth = 2
)
