package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/promptkit/internal/key"
)

// TranslateKey converts a tcell key event into an engine key event.
// Control-letter chords arrive from tcell as dedicated key codes; they
// come back as rune events carrying ModCtrl so patterns like "Ctrl+S"
// match them.
func TranslateKey(ev *tcell.EventKey) key.Event {
	mods := translateMods(ev.Modifiers())

	switch k := ev.Key(); k {
	case tcell.KeyRune:
		return key.NewRuneEvent(ev.Rune(), mods)
	case tcell.KeyEnter:
		return key.NewSpecialEvent(key.KeyEnter, mods)
	case tcell.KeyTab:
		return key.NewSpecialEvent(key.KeyTab, mods)
	case tcell.KeyEscape:
		return key.NewSpecialEvent(key.KeyEscape, mods)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.NewSpecialEvent(key.KeyBackspace, mods)
	case tcell.KeyDelete:
		return key.NewSpecialEvent(key.KeyDelete, mods)
	case tcell.KeyInsert:
		return key.NewSpecialEvent(key.KeyInsert, mods)
	case tcell.KeyHome:
		return key.NewSpecialEvent(key.KeyHome, mods)
	case tcell.KeyEnd:
		return key.NewSpecialEvent(key.KeyEnd, mods)
	case tcell.KeyPgUp:
		return key.NewSpecialEvent(key.KeyPageUp, mods)
	case tcell.KeyPgDn:
		return key.NewSpecialEvent(key.KeyPageDown, mods)
	case tcell.KeyUp:
		return key.NewSpecialEvent(key.KeyUp, mods)
	case tcell.KeyDown:
		return key.NewSpecialEvent(key.KeyDown, mods)
	case tcell.KeyLeft:
		return key.NewSpecialEvent(key.KeyLeft, mods)
	case tcell.KeyRight:
		return key.NewSpecialEvent(key.KeyRight, mods)
	case tcell.KeyCtrlSpace:
		return key.NewSpecialEvent(key.KeySpace, mods|key.ModCtrl)
	default:
		if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
			return key.NewSpecialEvent(key.KeyF1+key.Key(k-tcell.KeyF1), mods)
		}
		// tcell reports Ctrl+letter as key codes 1..26. Enter (Ctrl+M),
		// Tab (Ctrl+I) and a few others are handled above.
		if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			return key.NewRuneEvent('a'+rune(k-tcell.KeyCtrlA), mods|key.ModCtrl)
		}
		return key.NewSpecialEvent(key.KeyNone, mods)
	}
}

func translateMods(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModShift != 0 {
		mods |= key.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= key.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mods |= key.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mods |= key.ModMeta
	}
	return mods
}
