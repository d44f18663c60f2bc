package input

// Command is one decoded player action, at most one per tick
type Command uint8

const (
	CommandNone Command = iota

	// Movement
	CommandForward   // w, Up
	CommandBackward  // s, Down
	CommandTurnLeft  // a, Left
	CommandTurnRight // d, Right

	// System
	CommandQuit       // q, Esc, Ctrl+C
	CommandToggleMute // m
	CommandToggleMap  // Tab
	CommandResize     // terminal resize
)

var commandNames = [...]string{
	CommandNone:       "none",
	CommandForward:    "forward",
	CommandBackward:   "backward",
	CommandTurnLeft:   "turn_left",
	CommandTurnRight:  "turn_right",
	CommandQuit:       "quit",
	CommandToggleMute: "toggle_mute",
	CommandToggleMap:  "toggle_map",
	CommandResize:     "resize",
}

func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return "unknown"
}

// IsMovement returns true for commands that change the player pose
func (c Command) IsMovement() bool {
	return c >= CommandForward && c <= CommandTurnRight
}
