package validate

import (
	"context"

	"github.com/dshills/promptkit/internal/callback"
	"github.com/dshills/promptkit/internal/key"
	"github.com/dshills/promptkit/internal/textspan"
)

// Guard wraps a Callbacks implementation and enforces the contract's
// invariants around every call. It holds no state of its own.
type Guard struct {
	inner callback.Callbacks
}

var _ callback.Callbacks = (*Guard)(nil)

// NewGuard wraps cb in contract validation.
func NewGuard(cb callback.Callbacks) *Guard {
	return &Guard{inner: cb}
}

// Unwrap returns the wrapped implementation.
func (g *Guard) Unwrap() callback.Callbacks {
	return g.inner
}

// checkCaret enforces 0 <= caret <= len(text).
func checkCaret(op, text string, caret int) error {
	if caret < 0 || caret > len(text) {
		return &ViolationError{
			Kind:      KindPrecondition,
			Op:        op,
			Invariant: "0 <= caret <= len(text)",
			Caret:     caret,
			TextLen:   len(text),
		}
	}
	return nil
}

// Highlight passes through; the operation takes no caret.
func (g *Guard) Highlight(ctx context.Context, text string) ([]callback.FormatSpan, error) {
	return g.inner.Highlight(ctx, text)
}

// CompletionSpan checks the caret precondition, then validates that the
// returned span lies within the document and contains the caret.
func (g *Guard) CompletionSpan(ctx context.Context, text string, caret int) (textspan.Span, error) {
	if err := checkCaret("CompletionSpan", text, caret); err != nil {
		return textspan.Span{}, err
	}

	span, err := g.inner.CompletionSpan(ctx, text, caret)
	if err != nil {
		return textspan.Span{}, err
	}

	doc := textspan.New(0, len(text))
	if !span.IsValid() || !doc.Contains(span) {
		return textspan.Span{}, &ViolationError{
			Kind:      KindPostcondition,
			Op:        "CompletionSpan",
			Invariant: "span within document bounds",
			Caret:     caret,
			TextLen:   len(text),
			Span:      span,
		}
	}
	if !span.ContainsOffset(caret) {
		return textspan.Span{}, &ViolationError{
			Kind:      KindPostcondition,
			Op:        "CompletionSpan",
			Invariant: "span contains caret",
			Caret:     caret,
			TextLen:   len(text),
			Span:      span,
		}
	}

	return span, nil
}

// CompletionItems checks the caret precondition and delegates.
func (g *Guard) CompletionItems(ctx context.Context, text string, caret int, replace textspan.Span) ([]callback.CompletionItem, error) {
	if err := checkCaret("CompletionItems", text, caret); err != nil {
		return nil, err
	}
	return g.inner.CompletionItems(ctx, text, caret, replace)
}

// ShouldOpenWindow checks the caret precondition and delegates.
func (g *Guard) ShouldOpenWindow(ctx context.Context, text string, caret int, press key.Press) (bool, error) {
	if err := checkCaret("ShouldOpenWindow", text, caret); err != nil {
		return false, err
	}
	return g.inner.ShouldOpenWindow(ctx, text, caret, press)
}

// TransformPress checks the caret precondition and delegates.
func (g *Guard) TransformPress(ctx context.Context, text string, caret int, press key.Press) (key.Press, error) {
	if err := checkCaret("TransformPress", text, caret); err != nil {
		return key.Press{}, err
	}
	return g.inner.TransformPress(ctx, text, caret, press)
}

// ConfirmCommit checks the caret precondition and delegates.
func (g *Guard) ConfirmCommit(ctx context.Context, text string, caret int, press key.Press) (bool, error) {
	if err := checkCaret("ConfirmCommit", text, caret); err != nil {
		return false, err
	}
	return g.inner.ConfirmCommit(ctx, text, caret, press)
}

// FormatInput checks the caret precondition and delegates.
func (g *Guard) FormatInput(ctx context.Context, text string, caret int, press key.Press) (string, int, error) {
	if err := checkCaret("FormatInput", text, caret); err != nil {
		return "", 0, err
	}
	return g.inner.FormatInput(ctx, text, caret, press)
}

// Overloads checks the caret precondition and delegates.
func (g *Guard) Overloads(ctx context.Context, text string, caret int) ([]callback.OverloadItem, int, error) {
	if err := checkCaret("Overloads", text, caret); err != nil {
		return nil, 0, err
	}
	return g.inner.Overloads(ctx, text, caret)
}

// IsControlPress passes through; the operation takes no caret.
func (g *Guard) IsControlPress(ctx context.Context, press key.Press) (bool, error) {
	return g.inner.IsControlPress(ctx, press)
}
