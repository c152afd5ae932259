package callback

import (
	"context"
	"unicode"
	"unicode/utf8"

	"github.com/dshills/promptkit/internal/key"
	"github.com/dshills/promptkit/internal/textspan"
)

// Default implements every Callbacks operation with a sensible
// heuristic. Hosts embed it and override only the operations they care
// about:
//
//	type myCallbacks struct {
//		callback.Default
//	}
//
//	func (myCallbacks) Highlight(ctx context.Context, text string) ([]callback.FormatSpan, error) { ... }
//
// The zero value is ready to use.
type Default struct {
	// IsWordRune is the word-character predicate used by
	// CompletionSpan. Nil means letter, digit, or underscore.
	IsWordRune func(rune) bool
}

var _ Callbacks = Default{}

func (d Default) wordRune(r rune) bool {
	if d.IsWordRune != nil {
		return d.IsWordRune(r)
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// Highlight returns no highlighting.
func (d Default) Highlight(ctx context.Context, text string) ([]FormatSpan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return nil, nil
}

// CompletionSpan returns the word surrounding the caret: it extends left
// from the caret while the preceding rune is a word rune, and right
// while the rune at the position is one. Between two non-word runes the
// span degenerates to the empty span at the caret.
func (d Default) CompletionSpan(ctx context.Context, text string, caret int) (textspan.Span, error) {
	if err := ctx.Err(); err != nil {
		return textspan.Span{}, err
	}

	start := caret
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:start])
		if !d.wordRune(r) {
			break
		}
		start -= size
	}

	end := caret
	for end < len(text) {
		r, size := utf8.DecodeRuneInString(text[end:])
		if !d.wordRune(r) {
			break
		}
		end += size
	}

	return textspan.FromBounds(start, end), nil
}

// CompletionItems returns no items.
func (d Default) CompletionItems(ctx context.Context, text string, caret int, replace textspan.Span) ([]CompletionItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return nil, nil
}

// ShouldOpenWindow applies three independent triggers; any one opens the
// popup:
//
//  1. the rune before the caret is '.' or '(' (member or argument
//     access);
//  2. the text before the caret is a single non-whitespace rune and the
//     rune after it, if any, is not alphanumeric (the first character
//     of a new word typed into an empty or symbol-continuing prompt);
//  3. the rune before the caret is a letter and the rune before that is
//     whitespace (the start of a new word after a space).
func (d Default) ShouldOpenWindow(ctx context.Context, text string, caret int, press key.Press) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if caret == 0 {
		return false, nil
	}

	prev, prevSize := utf8.DecodeLastRuneInString(text[:caret])

	// Rule 1: member/argument access.
	if prev == '.' || prev == '(' {
		return true, nil
	}

	// Rule 2: single new word character in an otherwise empty prompt.
	if caret == prevSize && !unicode.IsSpace(prev) {
		if caret == len(text) {
			return true, nil
		}
		next, _ := utf8.DecodeRuneInString(text[caret:])
		if !unicode.IsLetter(next) && !unicode.IsDigit(next) {
			return true, nil
		}
	}

	// Rule 3: new word after whitespace.
	if caret > prevSize && unicode.IsLetter(prev) {
		beforePrev, _ := utf8.DecodeLastRuneInString(text[:caret-prevSize])
		if unicode.IsSpace(beforePrev) {
			return true, nil
		}
	}

	return false, nil
}

// TransformPress returns the press unchanged.
func (d Default) TransformPress(ctx context.Context, text string, caret int, press key.Press) (key.Press, error) {
	if err := ctx.Err(); err != nil {
		return key.Press{}, err
	}
	return press, nil
}

// ConfirmCommit always confirms.
func (d Default) ConfirmCommit(ctx context.Context, text string, caret int, press key.Press) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return true, nil
}

// FormatInput returns the text and caret unchanged.
func (d Default) FormatInput(ctx context.Context, text string, caret int, press key.Press) (string, int, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}
	return text, caret, nil
}

// Overloads returns no signature help.
func (d Default) Overloads(ctx context.Context, text string, caret int) ([]OverloadItem, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	return nil, 0, nil
}

// IsControlPress reports whether the resulting character is a control
// character per Unicode classification. A press producing no character
// has nothing to insert and counts as control.
func (d Default) IsControlPress(ctx context.Context, press key.Press) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return press.IsControl(), nil
}
