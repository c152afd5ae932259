package key

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want Event
	}{
		{"a", NewRuneEvent('a', ModNone)},
		{"A", NewRuneEvent('A', ModShift)},
		{"@", NewRuneEvent('@', ModNone)},
		{"Enter", NewSpecialEvent(KeyEnter, ModNone)},
		{"esc", NewSpecialEvent(KeyEscape, ModNone)},
		{"Space", NewSpecialEvent(KeySpace, ModNone)},
		{"Ctrl+S", NewRuneEvent('s', ModCtrl)},
		{"Ctrl+Shift+P", NewRuneEvent('p', ModCtrl|ModShift)},
		{"Alt+F4", NewSpecialEvent(KeyF4, ModAlt)},
		{"Ctrl++", NewRuneEvent('+', ModCtrl)},
		{"<C-s>", NewRuneEvent('s', ModCtrl)},
		{"<CR>", NewSpecialEvent(KeyEnter, ModNone)},
		{"<C-S-p>", NewRuneEvent('p', ModCtrl|ModShift)},
		{"<Esc>", NewSpecialEvent(KeyEscape, ModNone)},
		{"<Tab>", NewSpecialEvent(KeyTab, ModNone)},
	}

	for _, tt := range tests {
		got, err := Parse(tt.spec)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", tt.spec, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %+v, want %+v", tt.spec, got, tt.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		spec    string
		wantErr error
	}{
		{"", ErrEmptySpec},
		{"   ", ErrEmptySpec},
		{"Bogus+s", ErrInvalidSpec},
		{"notakey", ErrInvalidSpec},
		{"<C->", ErrInvalidSpec},
	}

	for _, tt := range tests {
		_, err := Parse(tt.spec)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("Parse(%q) error = %v, want %v", tt.spec, err, tt.wantErr)
		}
	}
}

func TestModifierFromName(t *testing.T) {
	tests := []struct {
		name string
		want Modifier
	}{
		{"ctrl", ModCtrl},
		{"Control", ModCtrl},
		{"c", ModCtrl},
		{"alt", ModAlt},
		{"option", ModAlt},
		{"shift", ModShift},
		{"meta", ModMeta},
		{"cmd", ModMeta},
		{"d", ModMeta},
		{"bogus", ModNone},
	}

	for _, tt := range tests {
		if got := ModifierFromName(tt.name); got != tt.want {
			t.Errorf("ModifierFromName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
