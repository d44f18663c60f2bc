package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(80, 24)
	return screen
}

// nextKeyCommand skips resize and empty polls until a key command arrives or the deadline passes
func nextKeyCommand(s *EventSource, deadline time.Duration) Command {
	end := time.Now().Add(deadline)
	for time.Now().Before(end) {
		c := s.Next(20 * time.Millisecond)
		if c != CommandNone && c != CommandResize {
			return c
		}
	}
	return CommandNone
}

func TestEventSourceDecodesInjectedKeys(t *testing.T) {
	screen := newSimScreen(t)
	defer screen.Fini()

	src := NewEventSource(screen, nil)
	defer src.Stop()

	screen.InjectKey(tcell.KeyRune, 'w', tcell.ModNone)
	if got := nextKeyCommand(src, time.Second); got != CommandForward {
		t.Errorf("Expected forward, got %v", got)
	}

	screen.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)
	if got := nextKeyCommand(src, time.Second); got != CommandTurnLeft {
		t.Errorf("Expected turn left, got %v", got)
	}
}

func TestEventSourceTimeout(t *testing.T) {
	screen := newSimScreen(t)
	defer screen.Fini()

	src := NewEventSource(screen, nil)
	defer src.Stop()

	// Drain anything posted during init
	for src.Next(20*time.Millisecond) != CommandNone {
	}

	start := time.Now()
	if got := src.Next(30 * time.Millisecond); got != CommandNone {
		t.Errorf("Expected no command, got %v", got)
	}
	if elapsed := time.Since(start); elapsed < 25*time.Millisecond {
		t.Errorf("Expected Next to wait for the timeout, returned after %v", elapsed)
	}
}

func TestEventSourceStop(t *testing.T) {
	screen := newSimScreen(t)
	defer screen.Fini()

	src := NewEventSource(screen, nil)
	src.Stop()
	src.Stop()

	if got := src.Next(time.Second); got != CommandNone {
		t.Errorf("Expected no command after stop, got %v", got)
	}
}
