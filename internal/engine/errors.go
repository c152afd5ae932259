package engine

import "errors"

var (
	// ErrQuit signals that the session should terminate without a
	// submission. Bound actions return it to unwind the event loop.
	ErrQuit = errors.New("engine: quit requested")

	// ErrBadFormatResult reports a format_input result whose caret
	// falls outside the reformatted text. The input is left unchanged.
	ErrBadFormatResult = errors.New("engine: format result caret out of bounds")

	// ErrSessionClosed reports use of a session after Close.
	ErrSessionClosed = errors.New("engine: session closed")
)
