package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsInteractive reports whether f is attached to a terminal
func IsInteractive(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// EmergencyReset writes the sequences that undo full-screen mode to w,
// then restores cooked mode on the controlling tty
// Safe to call from a deferred recover; all errors are ignored
func EmergencyReset(w io.Writer) {
	writeResetSequences(w)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}

func writeResetSequences(w io.Writer) {
	for _, seq := range [][]byte{
		csiMouseMotionOff,
		csiMouseDragOff,
		csiMouseClickOff,
		csiMouseSGROff,
		csiCursorShow,
		csiAltScreenExit,
		csiSGR0,
		csiAutoWrapOn,
		csiRIS,
	} {
		w.Write(seq)
	}
}
