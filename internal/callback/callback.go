package callback

import (
	"context"

	"github.com/dshills/promptkit/internal/key"
	"github.com/dshills/promptkit/internal/textspan"
)

// Callbacks is the capability set a hosting application implements to
// customize prompt behavior. Every operation receives the full prompt
// text and, where relevant, the caret offset into it, both by value.
//
// Operations may suspend on work of their own (a network-backed
// completion provider, say) and must honor ctx: once cancelled they
// return promptly, without side effects, and their result is discarded
// by the host. Cancellation surfaces as ctx.Err(), which the host
// distinguishes from genuine extension failures.
//
// The host guarantees 0 <= caret <= len(text) on every call; see the
// validate package for how violations of that contract are reported.
type Callbacks interface {
	// Highlight returns syntax highlighting instructions for text.
	// Spans outside the document are ignored by the host.
	Highlight(ctx context.Context, text string) ([]FormatSpan, error)

	// CompletionSpan returns the range a chosen completion item will
	// replace. The result must lie within the document and contain the
	// caret.
	CompletionSpan(ctx context.Context, text string, caret int) (textspan.Span, error)

	// CompletionItems returns the items for the completion popup.
	// replace is the span CompletionSpan reported for the same state.
	CompletionItems(ctx context.Context, text string, caret int, replace textspan.Span) ([]CompletionItem, error)

	// ShouldOpenWindow decides whether a key press auto-opens the
	// completion popup.
	ShouldOpenWindow(ctx context.Context, text string, caret int, press key.Press) (bool, error)

	// TransformPress may rewrite a key press before normal handling.
	TransformPress(ctx context.Context, text string, caret int, press key.Press) (key.Press, error)

	// ConfirmCommit is the last chance to veto inserting the selected
	// completion item. The press is the key that triggered the commit.
	ConfirmCommit(ctx context.Context, text string, caret int, press key.Press) (bool, error)

	// FormatInput reformats the whole document, returning the new text
	// and caret.
	FormatInput(ctx context.Context, text string, caret int, press key.Press) (string, int, error)

	// Overloads returns signature-help items and the index of the
	// active argument.
	Overloads(ctx context.Context, text string, caret int) ([]OverloadItem, int, error)

	// IsControlPress reports whether the press should be treated as
	// non-printable rather than inserted literally.
	IsControlPress(ctx context.Context, press key.Press) (bool, error)
}
