package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestDecodeKeys(t *testing.T) {
	kt := DefaultKeyTable()

	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want Command
	}{
		{"w forward", tcell.KeyRune, 'w', CommandForward},
		{"W forward", tcell.KeyRune, 'W', CommandForward},
		{"s backward", tcell.KeyRune, 's', CommandBackward},
		{"a turn left", tcell.KeyRune, 'a', CommandTurnLeft},
		{"d turn right", tcell.KeyRune, 'd', CommandTurnRight},
		{"q quit", tcell.KeyRune, 'q', CommandQuit},
		{"m mute", tcell.KeyRune, 'm', CommandToggleMute},
		{"Unbound rune", tcell.KeyRune, 'x', CommandNone},
		{"Up arrow", tcell.KeyUp, 0, CommandForward},
		{"Down arrow", tcell.KeyDown, 0, CommandBackward},
		{"Left arrow", tcell.KeyLeft, 0, CommandTurnLeft},
		{"Right arrow", tcell.KeyRight, 0, CommandTurnRight},
		{"Escape", tcell.KeyEscape, 0, CommandQuit},
		{"Ctrl+C", tcell.KeyCtrlC, 0, CommandQuit},
		{"Tab", tcell.KeyTab, 0, CommandToggleMap},
		{"Unbound key", tcell.KeyF5, 0, CommandNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := tcell.NewEventKey(tt.key, tt.r, tcell.ModNone)
			if got := kt.Decode(ev); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestDecodeNonKeyEvents(t *testing.T) {
	kt := DefaultKeyTable()

	if got := kt.Decode(tcell.NewEventResize(80, 24)); got != CommandResize {
		t.Errorf("Expected resize command, got %v", got)
	}
	if got := kt.Decode(tcell.NewEventInterrupt(nil)); got != CommandNone {
		t.Errorf("Expected no command for interrupt, got %v", got)
	}
}

func TestCommandString(t *testing.T) {
	if CommandTurnLeft.String() != "turn_left" {
		t.Errorf("Expected turn_left, got %s", CommandTurnLeft)
	}
	if Command(200).String() != "unknown" {
		t.Errorf("Expected unknown, got %s", Command(200))
	}
}

func TestIsMovement(t *testing.T) {
	movement := []Command{CommandForward, CommandBackward, CommandTurnLeft, CommandTurnRight}
	for _, c := range movement {
		if !c.IsMovement() {
			t.Errorf("Expected %v to be movement", c)
		}
	}
	for _, c := range []Command{CommandNone, CommandQuit, CommandToggleMute, CommandToggleMap, CommandResize} {
		if c.IsMovement() {
			t.Errorf("Expected %v not to be movement", c)
		}
	}
}
