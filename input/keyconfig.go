package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char YAML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// Special key names accepted in keymap overrides
var keyNames = map[string]tcell.Key{
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"esc":       tcell.KeyEscape,
	"escape":    tcell.KeyEscape,
	"tab":       tcell.KeyTab,
	"enter":     tcell.KeyEnter,
	"backspace": tcell.KeyBackspace2,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"pgup":      tcell.KeyPgUp,
	"pgdn":      tcell.KeyPgDn,
	"ctrl+c":    tcell.KeyCtrlC,
	"ctrl+q":    tcell.KeyCtrlQ,
	"ctrl+m":    tcell.KeyCtrlM,
}

// ParseCommand resolves a canonical command name; "none" is the unbind sentinel
func ParseCommand(name string) (Command, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range commandNames {
		if n == name && Command(c) != CommandResize {
			return Command(c), nil
		}
	}
	return CommandNone, fmt.Errorf("unknown command: %q", name)
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	c := &KeyTable{
		SpecialKeys: make(map[tcell.Key]Command, len(kt.SpecialKeys)),
		Runes:       make(map[rune]Command, len(kt.Runes)),
	}
	for k, v := range kt.SpecialKeys {
		c.SpecialKeys[k] = v
	}
	for k, v := range kt.Runes {
		c.Runes[k] = v
	}
	return c
}

// WithOverrides returns a copy of kt with the given bindings applied
// runes maps single characters (or aliases) to command names; keys maps special key names
// Binding a key to "none" removes it
func (kt *KeyTable) WithOverrides(runes, keys map[string]string) (*KeyTable, error) {
	result := kt.Clone()

	for keyStr, name := range runes {
		r, err := resolveRune(keyStr)
		if err != nil {
			return nil, fmt.Errorf("runes key %q: %w", keyStr, err)
		}
		c, err := ParseCommand(name)
		if err != nil {
			return nil, fmt.Errorf("runes key %q: %w", keyStr, err)
		}
		if c == CommandNone {
			delete(result.Runes, r)
		} else {
			result.Runes[r] = c
		}
	}

	for keyStr, name := range keys {
		k, ok := keyNames[strings.ToLower(keyStr)]
		if !ok {
			return nil, fmt.Errorf("unknown key name: %q", keyStr)
		}
		c, err := ParseCommand(name)
		if err != nil {
			return nil, fmt.Errorf("keys key %q: %w", keyStr, err)
		}
		if c == CommandNone {
			delete(result.SpecialKeys, k)
		} else {
			result.SpecialKeys[k] = c
		}
	}

	return result, nil
}

// resolveRune converts a config key string to a lowercase rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		r := runes[0]
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		return r, nil
	}

	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}
