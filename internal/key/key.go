package key

import (
	"fmt"
	"strings"
)

// Key identifies a keyboard key.
// Character keys use KeyRune with the character in Event.Rune.
type Key uint16

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// Special keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// KeySpace is the space bar. Terminals report it both as a control
	// key and as the ' ' rune; patterns treat the two forms as equal.
	KeySpace

	// KeyRune is used for character keys. The character is stored in
	// Event.Rune.
	KeyRune
)

// keyNames maps keys to their canonical display names.
var keyNames = map[Key]string{
	KeyNone:      "None",
	KeyEscape:    "Escape",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyInsert:    "Insert",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyF1:        "F1",
	KeyF2:        "F2",
	KeyF3:        "F3",
	KeyF4:        "F4",
	KeyF5:        "F5",
	KeyF6:        "F6",
	KeyF7:        "F7",
	KeyF8:        "F8",
	KeyF9:        "F9",
	KeyF10:       "F10",
	KeyF11:       "F11",
	KeyF12:       "F12",
	KeySpace:     "Space",
	KeyRune:      "Rune",
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", k)
}

// IsSpecial returns true if this is a special (non-character) key.
func (k Key) IsSpecial() bool {
	return k != KeyNone && k != KeyRune
}

// IsFunctionKey returns true if this is a function key (F1-F12).
func (k Key) IsFunctionKey() bool {
	return k >= KeyF1 && k <= KeyF12
}

// IsArrowKey returns true if this is an arrow key.
func (k Key) IsArrowKey() bool {
	return k >= KeyUp && k <= KeyRight
}

// IsNavigationKey returns true if this key moves the caret.
func (k Key) IsNavigationKey() bool {
	return k.IsArrowKey() || k == KeyHome || k == KeyEnd || k == KeyPageUp || k == KeyPageDown
}

// keyNameMap maps key names (lowercase, with aliases) to Key values.
var keyNameMap = map[string]Key{
	"none":      KeyNone,
	"escape":    KeyEscape,
	"esc":       KeyEscape,
	"enter":     KeyEnter,
	"return":    KeyEnter,
	"cr":        KeyEnter,
	"tab":       KeyTab,
	"backspace": KeyBackspace,
	"bs":        KeyBackspace,
	"delete":    KeyDelete,
	"del":       KeyDelete,
	"insert":    KeyInsert,
	"ins":       KeyInsert,
	"home":      KeyHome,
	"end":       KeyEnd,
	"pageup":    KeyPageUp,
	"pgup":      KeyPageUp,
	"pagedown":  KeyPageDown,
	"pgdn":      KeyPageDown,
	"up":        KeyUp,
	"down":      KeyDown,
	"left":      KeyLeft,
	"right":     KeyRight,
	"f1":        KeyF1,
	"f2":        KeyF2,
	"f3":        KeyF3,
	"f4":        KeyF4,
	"f5":        KeyF5,
	"f6":        KeyF6,
	"f7":        KeyF7,
	"f8":        KeyF8,
	"f9":        KeyF9,
	"f10":       KeyF10,
	"f11":       KeyF11,
	"f12":       KeyF12,
	"space":     KeySpace,
}

// FromName returns the Key for a given name (case-insensitive).
// Returns KeyNone if the name is not recognized.
func FromName(name string) Key {
	name = strings.ToLower(strings.TrimSpace(name))
	if k, ok := keyNameMap[name]; ok {
		return k
	}
	return KeyNone
}
