package key

import "testing"

func TestEventEquals(t *testing.T) {
	tests := []struct {
		name string
		a, b Event
		want bool
	}{
		{"same rune", NewRuneEvent('x', ModNone), NewRuneEvent('x', ModNone), true},
		{"different rune", NewRuneEvent('x', ModNone), NewRuneEvent('y', ModNone), false},
		{"different modifiers", NewRuneEvent('x', ModCtrl), NewRuneEvent('x', ModNone), false},
		{"space forms", NewRuneEvent(' ', ModNone), NewSpecialEvent(KeySpace, ModNone), true},
		{"space forms with ctrl", NewRuneEvent(' ', ModCtrl), NewSpecialEvent(KeySpace, ModCtrl), true},
	}

	for _, tt := range tests {
		if got := tt.a.Equals(tt.b); got != tt.want {
			t.Errorf("%s: %v.Equals(%v) = %v, want %v", tt.name, tt.a, tt.b, got, tt.want)
		}
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{NewRuneEvent('a', ModNone), "a"},
		{NewRuneEvent('A', ModShift), "A"},
		{NewRuneEvent('s', ModCtrl), "Ctrl+s"},
		{NewSpecialEvent(KeyEnter, ModNone), "Enter"},
		{NewSpecialEvent(KeyTab, ModCtrl|ModShift), "Ctrl+Shift+Tab"},
		{NewRuneEvent(' ', ModNone), "Space"},
	}

	for _, tt := range tests {
		if got := tt.event.String(); got != tt.want {
			t.Errorf("Event.String() = %q, want %q", got, tt.want)
		}
	}
}

func TestNewPress(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  rune
	}{
		{"plain rune", NewRuneEvent('a', ModNone), 'a'},
		{"shifted rune", NewRuneEvent('A', ModShift), 'A'},
		{"ctrl chord", NewRuneEvent('a', ModCtrl), 0},
		{"enter", NewSpecialEvent(KeyEnter, ModNone), '\n'},
		{"tab", NewSpecialEvent(KeyTab, ModNone), '\t'},
		{"space key", NewSpecialEvent(KeySpace, ModNone), ' '},
		{"arrow", NewSpecialEvent(KeyLeft, ModNone), 0},
	}

	for _, tt := range tests {
		if got := NewPress(tt.event).Ch; got != tt.want {
			t.Errorf("%s: NewPress(%v).Ch = %q, want %q", tt.name, tt.event, got, tt.want)
		}
	}
}

func TestPressIsControl(t *testing.T) {
	tests := []struct {
		name  string
		press Press
		want  bool
	}{
		{"letter", NewPress(NewRuneEvent('a', ModNone)), false},
		{"newline", NewPress(NewSpecialEvent(KeyEnter, ModNone)), true},
		{"tab", NewPress(NewSpecialEvent(KeyTab, ModNone)), true},
		{"no char", NewPress(NewSpecialEvent(KeyLeft, ModNone)), true},
		{"rewritten", NewPress(NewSpecialEvent(KeyLeft, ModNone)).WithCh('h'), false},
	}

	for _, tt := range tests {
		if got := tt.press.IsControl(); got != tt.want {
			t.Errorf("%s: IsControl() = %v, want %v", tt.name, got, tt.want)
		}
	}
}
