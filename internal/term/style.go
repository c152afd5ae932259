package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/promptkit/internal/callback"
)

// styleFor converts a callback format into a tcell style. Color names
// and #rrggbb values go through tcell's color table; unknown names fall
// back to the terminal default.
func styleFor(f callback.Format) tcell.Style {
	style := tcell.StyleDefault
	if f.Foreground != "" {
		style = style.Foreground(tcell.GetColor(string(f.Foreground)))
	}
	if f.Background != "" {
		style = style.Background(tcell.GetColor(string(f.Background)))
	}
	if f.Bold {
		style = style.Bold(true)
	}
	if f.Italic {
		style = style.Italic(true)
	}
	if f.Underline {
		style = style.Underline(true)
	}
	return style
}

// styleAt resolves the style for the rune starting at byte offset. The
// first span containing the offset wins.
func styleAt(spans []callback.FormatSpan, offset int) tcell.Style {
	for _, fs := range spans {
		if offset >= fs.Span.Start && offset < fs.Span.End() {
			return styleFor(fs.Format)
		}
	}
	return tcell.StyleDefault
}
