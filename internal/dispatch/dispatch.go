package dispatch

import (
	"context"
	"sync"

	"github.com/dshills/promptkit/internal/callback"
	"github.com/dshills/promptkit/internal/key"
)

// Handler is a key-press callback. It receives the current prompt text
// and caret and decides whether the prompt keeps editing or submits. A
// cancelled handler returns ctx.Err(); the host discards its result.
type Handler func(ctx context.Context, text string, caret int) (callback.Result, error)

// Binding pairs a pattern with the handler it triggers.
type Binding struct {
	// Pattern selects the key events this binding fires on.
	Pattern key.Pattern

	// Handler runs when the pattern matches.
	Handler Handler

	// Description documents the binding for help displays.
	Description string
}

// Dispatcher resolves key events to handlers. The binding table is
// enumerated once, on first lookup, and never changes afterwards.
type Dispatcher struct {
	enumerate func() []Binding

	once  sync.Once
	table []Binding
}

// New creates a dispatcher whose table is produced by enumerate on first
// use. enumerate runs at most once, even under concurrent first access.
func New(enumerate func() []Binding) *Dispatcher {
	return &Dispatcher{enumerate: enumerate}
}

// Static creates a dispatcher over a fixed binding list.
func Static(bindings []Binding) *Dispatcher {
	return New(func() []Binding { return bindings })
}

// TryGetHandler returns the handler of the first binding whose pattern
// matches the event, in registration order. A miss is a normal outcome:
// the host falls back to default key handling.
func (d *Dispatcher) TryGetHandler(ev key.Event) (Handler, bool) {
	for _, b := range d.bindings() {
		if b.Handler != nil && b.Pattern.Matches(ev) {
			return b.Handler, true
		}
	}
	return nil, false
}

// Bindings returns the full table, for help displays and tests.
func (d *Dispatcher) Bindings() []Binding {
	return d.bindings()
}

func (d *Dispatcher) bindings() []Binding {
	d.once.Do(func() {
		if d.enumerate != nil {
			d.table = d.enumerate()
		}
	})
	return d.table
}
