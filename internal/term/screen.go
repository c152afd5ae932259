package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/promptkit/internal/callback"
	"github.com/dshills/promptkit/internal/key"
)

// View is everything the screen draws for one frame.
type View struct {
	Prompt     string
	Text       string
	Caret      int
	Highlights []callback.FormatSpan
	Items      []callback.CompletionItem
	Selected   int
	Overloads  []callback.OverloadItem
	Status     string
}

// Screen draws prompt views on a terminal.
type Screen struct {
	screen tcell.Screen
}

// NewScreen creates and initializes a terminal screen.
func NewScreen() (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return &Screen{screen: screen}, nil
}

// Fini restores the terminal.
func (s *Screen) Fini() {
	s.screen.Fini()
}

// PollKey blocks until the next key event, translating it for the
// engine. It returns ok=false when the event stream ends. Resize events
// are consumed and redraw is left to the caller's next frame.
func (s *Screen) PollKey() (key.Event, bool) {
	for {
		switch ev := s.screen.PollEvent().(type) {
		case *tcell.EventKey:
			return TranslateKey(ev), true
		case *tcell.EventResize:
			s.screen.Sync()
		case *tcell.EventInterrupt, nil:
			return key.Event{}, false
		}
	}
}

// Interrupt wakes a blocked PollKey, making it return ok=false.
func (s *Screen) Interrupt() {
	_ = s.screen.PostEvent(tcell.NewEventInterrupt(nil)) // best-effort; queue may be full
}

// Render draws the view: the prompt line (with highlight spans applied
// by byte offset), the completion window below it, and signature help
// or status on the bottom row.
func (s *Screen) Render(v View) {
	s.screen.Clear()
	width, height := s.screen.Size()

	col := 0
	for _, r := range v.Prompt {
		s.screen.SetContent(col, 0, r, nil, tcell.StyleDefault.Bold(true))
		col++
	}
	indent := col

	row := 0
	curX, curY := col, 0
	for offset, r := range v.Text {
		if offset == v.Caret {
			curX, curY = col, row
		}
		if r == '\n' {
			row++
			col = indent
			continue
		}
		if col < width && row < height {
			s.screen.SetContent(col, row, r, nil, styleAt(v.Highlights, offset))
		}
		col++
	}
	if v.Caret >= len(v.Text) {
		curX, curY = col, row
	}

	popupRow := row + 1
	for i, item := range v.Items {
		style := tcell.StyleDefault
		if i == v.Selected {
			style = style.Reverse(true)
		}
		y := popupRow + i
		if y >= height-1 {
			break
		}
		x := indent
		for _, r := range item.Label {
			if x >= width {
				break
			}
			s.screen.SetContent(x, y, r, nil, style)
			x++
		}
	}

	bottom := ""
	switch {
	case len(v.Overloads) > 0:
		bottom = v.Overloads[0].Signature
	case v.Status != "":
		bottom = v.Status
	}
	x := 0
	for _, r := range bottom {
		if x >= width {
			break
		}
		s.screen.SetContent(x, height-1, r, nil, tcell.StyleDefault.Dim(true))
		x++
	}

	s.screen.ShowCursor(curX, curY)
	s.screen.Show()
}
