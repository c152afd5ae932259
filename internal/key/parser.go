package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Parse errors.
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification string into an Event.
//
// Supported formats:
//   - Single character: "a", "A", "1", "@"
//   - Key names: "Enter", "Escape", "Tab", "Space"
//   - With modifiers: "Ctrl+S", "Alt+F4", "Ctrl+Shift+P"
//   - Vim-style: "<C-s>", "<A-f>", "<CR>", "<Esc>"
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	if strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseVimStyle(spec[1 : len(spec)-1])
	}

	if strings.Contains(spec, "+") && len(spec) > 1 {
		return parseModifierStyle(spec)
	}

	return parseKeyPart(spec, ModNone)
}

// MustParse parses a key specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Event {
	ev, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return ev
}

// parseVimStyle parses the inside of "<...>" notation: "C-s", "CR", "Esc".
func parseVimStyle(inner string) (Event, error) {
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return Event{}, ErrInvalidSpec
	}

	parts := strings.Split(inner, "-")
	keyPart := parts[len(parts)-1]

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		mod := ModifierFromName(strings.TrimSpace(p))
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}

	return parseKeyPart(keyPart, mods)
}

// parseModifierStyle parses "Ctrl+S" style notation.
func parseModifierStyle(spec string) (Event, error) {
	parts := strings.Split(spec, "+")

	// A trailing empty part means the key itself is '+' ("Ctrl++").
	keyPart := parts[len(parts)-1]
	if keyPart == "" {
		keyPart = "+"
		parts = parts[:len(parts)-1]
	}

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		mod := ModifierFromName(strings.TrimSpace(p))
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}

	return parseKeyPart(keyPart, mods)
}

// parseKeyPart parses the key name or character with known modifiers.
func parseKeyPart(keyPart string, mods Modifier) (Event, error) {
	keyPart = strings.TrimSpace(keyPart)
	if keyPart == "" {
		return Event{}, ErrInvalidSpec
	}

	if k := FromName(keyPart); k != KeyNone {
		return NewSpecialEvent(k, mods), nil
	}

	runes := []rune(keyPart)
	if len(runes) != 1 {
		return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
	}

	r := runes[0]
	switch {
	case mods.HasCtrl():
		// Ctrl chords are case-insensitive.
		r = unicode.ToLower(r)
	case unicode.IsUpper(r):
		// An uppercase letter carries implicit Shift.
		mods = mods.With(ModShift)
	}
	return NewRuneEvent(r, mods), nil
}
