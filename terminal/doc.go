// Package terminal restores the user's terminal when the game exits abnormally.
//
// Normal setup and teardown belong to tcell; this package covers the crash path
// (panic before or during Screen.Fini) and the interactivity check done at startup.
package terminal
