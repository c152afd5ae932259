package key

import "strings"

// Pattern is a predicate over physical key events. A pattern matches an
// event when the key codes are equal and either AnyModifiers is set or
// the event's modifier set equals Modifiers exactly. A broader pattern
// never outranks a narrower one; resolution order is decided by whoever
// registers the patterns.
type Pattern struct {
	// Key is the key code to match.
	Key Key

	// Rune is the character to match for KeyRune patterns.
	Rune rune

	// Modifiers is the exact modifier set required, unless AnyModifiers.
	Modifiers Modifier

	// AnyModifiers makes the pattern match regardless of modifier state.
	AnyModifiers bool
}

// NewPattern creates a pattern matching exactly the given event.
func NewPattern(ev Event) Pattern {
	ev = ev.canonical()
	return Pattern{Key: ev.Key, Rune: ev.Rune, Modifiers: ev.Modifiers}
}

// NewAnyModPattern creates a pattern matching the given key under any
// modifier combination.
func NewAnyModPattern(k Key) Pattern {
	return Pattern{Key: k, AnyModifiers: true}
}

// Matches reports whether the event satisfies this pattern.
func (p Pattern) Matches(ev Event) bool {
	ev = ev.canonical()

	if p.Key != ev.Key {
		return false
	}
	if p.Key == KeyRune && p.Rune != ev.Rune {
		return false
	}
	if p.AnyModifiers {
		return true
	}
	return p.Modifiers == ev.Modifiers
}

// String returns the pattern in key-spec notation.
func (p Pattern) String() string {
	ev := Event{Key: p.Key, Rune: p.Rune, Modifiers: p.Modifiers}
	if p.AnyModifiers {
		return "*+" + Event{Key: p.Key, Rune: p.Rune}.String()
	}
	return ev.String()
}

// ParsePattern parses a pattern specification. The syntax is the key
// specification syntax of Parse, optionally prefixed with "*+" to make
// the pattern modifier-wildcard:
//
//	"Ctrl+Space"  exact chord
//	"<C-s>"       exact chord, Vim notation
//	"*+Tab"       Tab under any modifiers
func ParsePattern(spec string) (Pattern, error) {
	spec = strings.TrimSpace(spec)

	if rest, ok := strings.CutPrefix(spec, "*+"); ok {
		ev, err := Parse(rest)
		if err != nil {
			return Pattern{}, err
		}
		pat := NewPattern(ev)
		pat.Modifiers = ModNone
		pat.AnyModifiers = true
		return pat, nil
	}

	ev, err := Parse(spec)
	if err != nil {
		return Pattern{}, err
	}
	return NewPattern(ev), nil
}

// MustParsePattern parses a pattern specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParsePattern(spec string) Pattern {
	pat, err := ParsePattern(spec)
	if err != nil {
		panic("invalid key pattern: " + spec + ": " + err.Error())
	}
	return pat
}
