package key

import (
	"strings"
	"unicode"
)

// Event represents a single physical key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{Key: key, Modifiers: mods}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsModified returns true if any modifier other than Shift is pressed.
// Shift alone changes the character itself and does not count for
// character events.
func (e Event) IsModified() bool {
	if e.IsRune() {
		return e.Modifiers&(ModCtrl|ModAlt|ModMeta) != 0
	}
	return e.Modifiers != ModNone
}

// Equals returns true if two events represent the same key press.
// Space is compared canonically: KeySpace and the ' ' rune are the
// same physical key.
func (e Event) Equals(other Event) bool {
	a, b := e.canonical(), other.canonical()
	return a.Key == b.Key && a.Rune == b.Rune && a.Modifiers == b.Modifiers
}

// canonical folds the two terminal representations of the space bar
// into one.
func (e Event) canonical() Event {
	if e.Key == KeyRune && e.Rune == ' ' {
		return Event{Key: KeySpace, Modifiers: e.Modifiers}
	}
	return e
}

// String returns a canonical representation like "a", "Ctrl+S", "Enter".
func (e Event) String() string {
	var parts []string

	if e.Modifiers.HasCtrl() {
		parts = append(parts, "Ctrl")
	}
	if e.Modifiers.HasAlt() {
		parts = append(parts, "Alt")
	}
	if e.Modifiers.HasMeta() {
		parts = append(parts, "Meta")
	}
	// Shift is implicit in the character for rune events.
	if e.Modifiers.HasShift() && !e.IsRune() {
		parts = append(parts, "Shift")
	}

	switch {
	case e.Key == KeyRune && e.Rune == ' ':
		parts = append(parts, "Space")
	case e.Key == KeyRune:
		parts = append(parts, string(e.Rune))
	default:
		parts = append(parts, e.Key.String())
	}

	return strings.Join(parts, "+")
}

// Press pairs a physical key event with the character the prompt will
// insert for it. A transform callback may rewrite the character (or the
// whole event) before any further processing.
type Press struct {
	// Event is the physical key event.
	Event Event

	// Ch is the resulting character, or 0 if the press inserts nothing.
	Ch rune
}

// NewPress creates a Press for an event, deriving the resulting
// character the way a terminal host would.
func NewPress(ev Event) Press {
	return Press{Event: ev, Ch: resultingRune(ev)}
}

// WithCh returns a copy of the press with the resulting character
// replaced.
func (p Press) WithCh(ch rune) Press {
	p.Ch = ch
	return p
}

// HasCh returns true if the press produces a character.
func (p Press) HasCh() bool {
	return p.Ch != 0
}

// IsControl returns true if the resulting character is a control
// character per Unicode classification, or if the press produces no
// character at all.
func (p Press) IsControl() bool {
	return p.Ch == 0 || unicode.IsControl(p.Ch)
}

// resultingRune derives the character a key event inserts.
// Ctrl/Alt/Meta chords produce no character; the host dispatches them
// instead of inserting.
func resultingRune(ev Event) rune {
	if ev.Modifiers&(ModCtrl|ModAlt|ModMeta) != 0 {
		return 0
	}
	switch ev.Key {
	case KeyRune:
		return ev.Rune
	case KeySpace:
		return ' '
	case KeyTab:
		return '\t'
	case KeyEnter:
		return '\n'
	default:
		return 0
	}
}
