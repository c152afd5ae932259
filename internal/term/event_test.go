package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/promptkit/internal/key"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want key.Event
	}{
		{
			"plain rune",
			tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone),
			key.NewRuneEvent('a', key.ModNone),
		},
		{
			"shifted rune",
			tcell.NewEventKey(tcell.KeyRune, 'A', tcell.ModShift),
			key.NewRuneEvent('A', key.ModShift),
		},
		{
			"enter",
			tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone),
			key.NewSpecialEvent(key.KeyEnter, key.ModNone),
		},
		{
			"ctrl+enter",
			tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModCtrl),
			key.NewSpecialEvent(key.KeyEnter, key.ModCtrl),
		},
		{
			"backspace legacy code",
			tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone),
			key.NewSpecialEvent(key.KeyBackspace, key.ModNone),
		},
		{
			"ctrl+s chord",
			tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl),
			key.NewRuneEvent('s', key.ModCtrl),
		},
		{
			"ctrl+space",
			tcell.NewEventKey(tcell.KeyCtrlSpace, 0, tcell.ModCtrl),
			key.NewSpecialEvent(key.KeySpace, key.ModCtrl),
		},
		{
			"function key",
			tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone),
			key.NewSpecialEvent(key.KeyF5, key.ModNone),
		},
		{
			"arrow",
			tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone),
			key.NewSpecialEvent(key.KeyLeft, key.ModNone),
		},
		{
			"alt modified rune",
			tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt),
			key.NewRuneEvent('x', key.ModAlt),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TranslateKey(tt.ev)
			if !got.Equals(tt.want) {
				t.Errorf("TranslateKey = %v, want %v", got, tt.want)
			}
			if got.Modifiers != tt.want.Modifiers {
				t.Errorf("modifiers = %v, want %v", got.Modifiers, tt.want.Modifiers)
			}
		})
	}
}

func TestTranslateKeyCtrlChordMatchesSpec(t *testing.T) {
	pattern := key.MustParsePattern("Ctrl+S")
	ev := TranslateKey(tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl))
	if !pattern.Matches(ev) {
		t.Errorf("Ctrl+S pattern does not match translated chord %v", ev)
	}
}
