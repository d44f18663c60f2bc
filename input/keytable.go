package input

import (
	"github.com/gdamore/tcell/v2"
)

// KeyTable maps keys to commands
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc, Tab)
	SpecialKeys map[tcell.Key]Command

	// Printable bindings, matched case-insensitively
	Runes map[rune]Command
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Command{
			tcell.KeyUp:     CommandForward,
			tcell.KeyDown:   CommandBackward,
			tcell.KeyLeft:   CommandTurnLeft,
			tcell.KeyRight:  CommandTurnRight,
			tcell.KeyEscape: CommandQuit,
			tcell.KeyCtrlC:  CommandQuit,
			tcell.KeyTab:    CommandToggleMap,
		},
		Runes: map[rune]Command{
			'w': CommandForward,
			's': CommandBackward,
			'a': CommandTurnLeft,
			'd': CommandTurnRight,
			'q': CommandQuit,
			'm': CommandToggleMute,
		},
	}
}

// Decode maps one terminal event to a command; unbound keys and other events yield CommandNone
func (kt *KeyTable) Decode(ev tcell.Event) Command {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return kt.decodeKey(ev)
	case *tcell.EventResize:
		return CommandResize
	default:
		return CommandNone
	}
}

func (kt *KeyTable) decodeKey(ev *tcell.EventKey) Command {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		return kt.Runes[r]
	}
	return kt.SpecialKeys[ev.Key()]
}
