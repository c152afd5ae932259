package engine

import (
	"context"
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/dshills/promptkit/internal/callback"
	"github.com/dshills/promptkit/internal/callback/validate"
	"github.com/dshills/promptkit/internal/dispatch"
	"github.com/dshills/promptkit/internal/key"
	"github.com/dshills/promptkit/internal/textspan"
)

// popup holds the state of the open completion window.
type popup struct {
	open     bool
	span     textspan.Span
	items    []callback.CompletionItem
	selected int
}

// Session hosts a single prompt. It owns the text and caret, routes key
// presses through the dispatch table and the callback contract, and
// maintains completion and highlight state.
//
// Session methods are not safe for concurrent use; drive it from one
// event loop. Highlight results arrive asynchronously and are
// published under the session's highlight lock.
type Session struct {
	cb   *validate.Guard
	disp *dispatch.Dispatcher
	log  *Logger

	text  string
	caret int

	popup     popup
	overloads []callback.OverloadItem
	argIndex  int

	hlMu        sync.Mutex
	highlights  []callback.FormatSpan
	hlFor       string
	hlRequests  inflight
	highlightWG sync.WaitGroup

	closed bool
}

// Option configures a Session.
type Option func(*Session)

// WithCallbacks sets the extension callbacks. They are wrapped in the
// contract guard; violations surface as *validate.ViolationError.
func WithCallbacks(cb callback.Callbacks) Option {
	return func(s *Session) {
		s.cb = validate.NewGuard(cb)
	}
}

// WithDispatcher sets the key binding dispatcher.
func WithDispatcher(d *dispatch.Dispatcher) Option {
	return func(s *Session) { s.disp = d }
}

// WithLogger sets the session logger.
func WithLogger(log *Logger) Option {
	return func(s *Session) { s.log = log }
}

// WithText seeds the initial text with the caret at the end.
func WithText(text string) Option {
	return func(s *Session) {
		s.text = text
		s.caret = len(text)
	}
}

// NewSession creates a session. Without options it uses the built-in
// default callbacks and an empty dispatch table.
func NewSession(opts ...Option) *Session {
	s := &Session{
		cb:   validate.NewGuard(callback.Default{}),
		disp: dispatch.Static(nil),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetDispatcher replaces the key binding table, keeping the prompt
// state. Used when the configuration is reloaded.
func (s *Session) SetDispatcher(d *dispatch.Dispatcher) {
	if d != nil {
		s.disp = d
	}
}

// SetCallbacks replaces the extension callbacks, keeping the prompt
// state. The new callbacks are wrapped in the contract guard.
func (s *Session) SetCallbacks(cb callback.Callbacks) {
	s.cb = validate.NewGuard(cb)
}

// Text returns the current prompt text.
func (s *Session) Text() string { return s.text }

// Caret returns the current caret position as a byte offset.
func (s *Session) Caret() int { return s.caret }

// PopupOpen reports whether the completion window is showing.
func (s *Session) PopupOpen() bool { return s.popup.open }

// PopupItems returns the completion items on display and the index of
// the selected one. The slice must not be mutated.
func (s *Session) PopupItems() ([]callback.CompletionItem, int) {
	return s.popup.items, s.popup.selected
}

// Overloads returns the signature help on display and the active
// argument index, or nil when none is showing.
func (s *Session) Overloads() ([]callback.OverloadItem, int) {
	return s.overloads, s.argIndex
}

// Highlights returns the most recent highlight spans and the text they
// were computed for. The result may lag the current text by one pending
// request; stale requests never publish.
func (s *Session) Highlights() ([]callback.FormatSpan, string) {
	s.hlMu.Lock()
	defer s.hlMu.Unlock()
	return s.highlights, s.hlFor
}

// Close cancels any outstanding highlight request and waits for it to
// drain. The session must not be used afterwards.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.hlRequests.stop()
	s.highlightWG.Wait()
}

// Actions returns the built-in handlers available to key bindings.
// Config binding actions resolve against this map.
func (s *Session) Actions() map[string]dispatch.Handler {
	return map[string]dispatch.Handler{
		"submit": func(ctx context.Context, text string, caret int) (callback.Result, error) {
			return callback.Submit(text, caret), nil
		},
		"quit": func(ctx context.Context, text string, caret int) (callback.Result, error) {
			return callback.Continue(), ErrQuit
		},
		"format": func(ctx context.Context, text string, caret int) (callback.Result, error) {
			return callback.Continue(), s.formatInput(ctx, key.Press{})
		},
		"complete": func(ctx context.Context, text string, caret int) (callback.Result, error) {
			return callback.Continue(), s.openCompletion(ctx)
		},
	}
}

// ProcessKey handles one key event and returns the outcome: a submit
// result carries the final text, a continue result means the prompt
// stays active. ErrQuit signals session termination without a
// submission. Callback failures propagate; the text is left as it was
// before the failing operation.
func (s *Session) ProcessKey(ctx context.Context, ev key.Event) (callback.Result, error) {
	if s.closed {
		return callback.Continue(), ErrSessionClosed
	}

	press, err := s.cb.TransformPress(ctx, s.text, s.caret, key.NewPress(ev))
	if err != nil {
		return callback.Continue(), fmt.Errorf("transform press: %w", err)
	}

	if handler, ok := s.disp.TryGetHandler(press.Event); ok {
		res, err := s.invoke(ctx, handler)
		if err != nil {
			return callback.Continue(), err
		}
		if res.IsSubmit() {
			return res, nil
		}
		// A continue result falls through to normal editing.
	}

	if s.popup.open {
		if handled, res, err := s.handlePopupKey(ctx, press); handled {
			return res, err
		}
	}

	return s.edit(ctx, press)
}

// invoke runs a bound handler, converting panics into errors so a bad
// binding cannot take down the event loop.
func (s *Session) invoke(ctx context.Context, handler dispatch.Handler) (res callback.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("handler panic: %v", r)
			res = callback.Continue()
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()
	return handler(ctx, s.text, s.caret)
}

// handlePopupKey consumes navigation and acceptance keys while the
// completion window is open. It reports whether the press was consumed.
func (s *Session) handlePopupKey(ctx context.Context, press key.Press) (bool, callback.Result, error) {
	switch press.Event.Key {
	case key.KeyUp:
		if s.popup.selected > 0 {
			s.popup.selected--
		}
		return true, callback.Continue(), nil
	case key.KeyDown:
		if s.popup.selected < len(s.popup.items)-1 {
			s.popup.selected++
		}
		return true, callback.Continue(), nil
	case key.KeyEscape:
		s.closePopup()
		return true, callback.Continue(), nil
	case key.KeyTab, key.KeyEnter:
		err := s.acceptCompletion(ctx, press)
		return true, callback.Continue(), err
	default:
		return false, callback.Continue(), nil
	}
}

// edit applies default editing for a press the dispatcher and popup did
// not consume.
func (s *Session) edit(ctx context.Context, press key.Press) (callback.Result, error) {
	switch {
	case press.Event.Key == key.KeyEnter:
		return callback.Submit(s.text, s.caret), nil

	case press.Event.Key == key.KeyTab:
		return callback.Continue(), s.openCompletion(ctx)

	case press.Event.Key == key.KeyBackspace:
		s.deleteBackward()
		return callback.Continue(), s.afterEdit(ctx, press)

	case press.Event.Key == key.KeyDelete:
		s.deleteForward()
		return callback.Continue(), s.afterEdit(ctx, press)

	case press.Event.Key == key.KeyLeft:
		s.moveLeft()
		return callback.Continue(), nil

	case press.Event.Key == key.KeyRight:
		s.moveRight()
		return callback.Continue(), nil

	case press.Event.Key == key.KeyHome:
		s.caret = 0
		return callback.Continue(), nil

	case press.Event.Key == key.KeyEnd:
		s.caret = len(s.text)
		return callback.Continue(), nil

	case press.HasCh():
		control, err := s.cb.IsControlPress(ctx, press)
		if err != nil {
			return callback.Continue(), fmt.Errorf("is control press: %w", err)
		}
		if control {
			s.log.Debug("ignoring control press %s", press.Event)
			return callback.Continue(), nil
		}
		return callback.Continue(), s.insert(ctx, press, press.Ch)

	default:
		s.log.Debug("unhandled key %s", press.Event)
		return callback.Continue(), nil
	}
}

// insert places r at the caret and runs the post-edit flow.
func (s *Session) insert(ctx context.Context, press key.Press, r rune) error {
	s.text = s.text[:s.caret] + string(r) + s.text[s.caret:]
	s.caret += utf8.RuneLen(r)

	switch r {
	case '(':
		s.showOverloads(ctx)
	case ')':
		s.overloads = nil
		s.argIndex = 0
	}

	return s.afterEdit(ctx, press)
}

func (s *Session) deleteBackward() {
	if s.caret == 0 {
		return
	}
	_, size := utf8.DecodeLastRuneInString(s.text[:s.caret])
	s.text = s.text[:s.caret-size] + s.text[s.caret:]
	s.caret -= size
}

func (s *Session) deleteForward() {
	if s.caret >= len(s.text) {
		return
	}
	_, size := utf8.DecodeRuneInString(s.text[s.caret:])
	s.text = s.text[:s.caret] + s.text[s.caret+size:]
}

func (s *Session) moveLeft() {
	if s.caret == 0 {
		return
	}
	_, size := utf8.DecodeLastRuneInString(s.text[:s.caret])
	s.caret -= size
}

func (s *Session) moveRight() {
	if s.caret >= len(s.text) {
		return
	}
	_, size := utf8.DecodeRuneInString(s.text[s.caret:])
	s.caret += size
}

// afterEdit runs once the text has changed: refresh or auto-open the
// completion window, then kick off a highlight request. Auto-open and
// highlight failures are logged, not fatal; a contract violation from
// the completion span is.
func (s *Session) afterEdit(ctx context.Context, press key.Press) error {
	if s.popup.open {
		if err := s.refreshCompletion(ctx); err != nil {
			return err
		}
	} else {
		open, err := s.cb.ShouldOpenWindow(ctx, s.text, s.caret, press)
		if err != nil {
			s.log.Warn("should open window: %v", err)
		} else if open {
			if err := s.openCompletion(ctx); err != nil {
				return err
			}
		}
	}

	s.refreshHighlights(ctx)
	return nil
}

// openCompletion queries the completion span and items and shows the
// window. An empty item list leaves the window closed.
func (s *Session) openCompletion(ctx context.Context) error {
	span, err := s.cb.CompletionSpan(ctx, s.text, s.caret)
	if err != nil {
		return fmt.Errorf("completion span: %w", err)
	}
	items, err := s.cb.CompletionItems(ctx, s.text, s.caret, span)
	if err != nil {
		return fmt.Errorf("completion items: %w", err)
	}
	if len(items) == 0 {
		s.closePopup()
		return nil
	}

	selected := 0
	for i, item := range items {
		if item.Preselect {
			selected = i
			break
		}
	}
	s.popup = popup{open: true, span: span, items: items, selected: selected}
	return nil
}

// refreshCompletion recomputes the window contents after an edit,
// closing it when the caret leaves the completion span or no items
// remain.
func (s *Session) refreshCompletion(ctx context.Context) error {
	span, err := s.cb.CompletionSpan(ctx, s.text, s.caret)
	if err != nil {
		return fmt.Errorf("completion span: %w", err)
	}
	if !span.ContainsOffset(s.caret) {
		s.closePopup()
		return nil
	}
	items, err := s.cb.CompletionItems(ctx, s.text, s.caret, span)
	if err != nil {
		return fmt.Errorf("completion items: %w", err)
	}
	if len(items) == 0 {
		s.closePopup()
		return nil
	}
	s.popup.span = span
	s.popup.items = items
	if s.popup.selected >= len(items) {
		s.popup.selected = len(items) - 1
	}
	return nil
}

// acceptCompletion replaces the completion span with the selected item
// and closes the window. ConfirmCommit gets a last chance to veto the
// insertion; a false result aborts it and leaves the text unchanged.
func (s *Session) acceptCompletion(ctx context.Context, press key.Press) error {
	if !s.popup.open || len(s.popup.items) == 0 {
		s.closePopup()
		return nil
	}

	commit, err := s.cb.ConfirmCommit(ctx, s.text, s.caret, press)
	if err != nil {
		return fmt.Errorf("confirm commit: %w", err)
	}
	if !commit {
		s.closePopup()
		return nil
	}

	item := s.popup.items[s.popup.selected]
	span := s.popup.span
	insertion := item.Insertion()

	s.text = s.text[:span.Start] + insertion + s.text[span.End():]
	s.caret = span.Start + len(insertion)
	s.closePopup()

	s.refreshHighlights(ctx)
	return nil
}

func (s *Session) closePopup() {
	s.popup = popup{}
}

// showOverloads fetches signature help. Failures only clear the display.
func (s *Session) showOverloads(ctx context.Context) {
	items, argIndex, err := s.cb.Overloads(ctx, s.text, s.caret)
	if err != nil {
		s.log.Warn("overloads: %v", err)
		items, argIndex = nil, 0
	}
	s.overloads = items
	s.argIndex = argIndex
}

// formatInput reformats the whole prompt. A result whose caret falls
// outside the reformatted text is rejected and the text left unchanged.
func (s *Session) formatInput(ctx context.Context, press key.Press) error {
	formatted, caret, err := s.cb.FormatInput(ctx, s.text, s.caret, press)
	if err != nil {
		return fmt.Errorf("format input: %w", err)
	}
	if caret < 0 || caret > len(formatted) {
		return fmt.Errorf("%w: caret %d, text length %d", ErrBadFormatResult, caret, len(formatted))
	}
	s.text = formatted
	s.caret = caret
	s.closePopup()
	s.refreshHighlights(ctx)
	return nil
}

// refreshHighlights starts an asynchronous highlight request for the
// current text. A newer request supersedes this one: its context is
// cancelled and, if it completes anyway, its result is discarded.
// The callbacks are captured here, on the event-loop goroutine, so a
// concurrent SetCallbacks cannot race with the in-flight request.
func (s *Session) refreshHighlights(parent context.Context) {
	text := s.text
	cb := s.cb
	ctx, id := s.hlRequests.begin(parent)

	s.highlightWG.Add(1)
	go func() {
		defer s.highlightWG.Done()

		spans, err := cb.Highlight(ctx, text)
		if !s.hlRequests.settle(id) {
			return
		}
		if err != nil {
			if ctx.Err() == nil {
				s.log.Warn("highlight: %v", err)
			}
			return
		}

		s.hlMu.Lock()
		s.highlights = spans
		s.hlFor = text
		s.hlMu.Unlock()
	}()
}
