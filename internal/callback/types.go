package callback

import "github.com/dshills/promptkit/internal/textspan"

// Color names a display color. The empty string means the host's
// default. The host's rendering backend decides what a name maps to;
// this package only carries it.
type Color string

// Format describes how a span of text should be displayed.
type Format struct {
	// Foreground is the text color.
	Foreground Color

	// Background is the background color.
	Background Color

	// Bold renders the span in bold.
	Bold bool

	// Italic renders the span in italics.
	Italic bool

	// Underline underlines the span.
	Underline bool
}

// FormatSpan is a single highlighting instruction: apply Format to Span.
type FormatSpan struct {
	Span   textspan.Span
	Format Format
}

// CompletionKind classifies a completion item for display.
type CompletionKind int

const (
	KindText CompletionKind = iota
	KindKeyword
	KindFunction
	KindMethod
	KindVariable
	KindField
	KindModule
	KindSnippet
	KindValue
)

// String returns the kind name.
func (k CompletionKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindKeyword:
		return "keyword"
	case KindFunction:
		return "function"
	case KindMethod:
		return "method"
	case KindVariable:
		return "variable"
	case KindField:
		return "field"
	case KindModule:
		return "module"
	case KindSnippet:
		return "snippet"
	case KindValue:
		return "value"
	default:
		return "unknown"
	}
}

// CompletionItem is a single completion suggestion.
type CompletionItem struct {
	// Label is the display text in the popup.
	Label string

	// InsertText is the text inserted on commit. Empty means Label.
	InsertText string

	// Kind classifies the item.
	Kind CompletionKind

	// Detail is a short annotation shown next to the label.
	Detail string

	// Documentation is extended documentation for the detail pane.
	Documentation string

	// Preselect marks the item initially selected when the popup opens.
	Preselect bool
}

// Insertion returns the text this item inserts on commit.
func (c CompletionItem) Insertion() string {
	if c.InsertText != "" {
		return c.InsertText
	}
	return c.Label
}

// OverloadItem is a single signature-help entry.
type OverloadItem struct {
	// Signature is the display form, e.g. "Add(x, y int) int".
	Signature string

	// Documentation describes the overload.
	Documentation string

	// Parameters are the parameter labels, in order, so the host can
	// highlight the active one.
	Parameters []string
}
