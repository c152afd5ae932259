package engine

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// inflight tracks the single outstanding highlight request. Starting a
// new request cancels the previous one; a completed request only
// publishes its result if it has not been superseded in the meantime.
type inflight struct {
	mu      sync.Mutex
	current uuid.UUID
	cancel  context.CancelFunc
}

// begin cancels any outstanding request and registers a new one derived
// from parent. The returned id identifies the request for settle.
func (f *inflight) begin(parent context.Context) (context.Context, uuid.UUID) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.cancel != nil {
		f.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	f.current = uuid.New()
	f.cancel = cancel
	return ctx, f.current
}

// settle reports whether id is still the current request, releasing the
// slot when it is. A superseded request gets false and its result must
// be discarded.
func (f *inflight) settle(id uuid.UUID) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if id != f.current {
		return false
	}
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	f.current = uuid.Nil
	return true
}

// stop cancels the outstanding request, if any.
func (f *inflight) stop() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	f.current = uuid.Nil
}
