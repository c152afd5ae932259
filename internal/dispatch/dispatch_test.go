package dispatch

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/dshills/promptkit/internal/callback"
	"github.com/dshills/promptkit/internal/key"
)

func namedHandler(name string, log *[]string) Handler {
	return func(ctx context.Context, text string, caret int) (callback.Result, error) {
		*log = append(*log, name)
		return callback.Continue(), nil
	}
}

func TestTryGetHandlerFirstMatchWins(t *testing.T) {
	var log []string

	// Both patterns match Tab; the earlier registration must win.
	d := Static([]Binding{
		{Pattern: key.NewAnyModPattern(key.KeyTab), Handler: namedHandler("broad", &log)},
		{Pattern: key.MustParsePattern("Tab"), Handler: namedHandler("narrow", &log)},
	})

	h, ok := d.TryGetHandler(key.NewSpecialEvent(key.KeyTab, key.ModNone))
	if !ok {
		t.Fatal("TryGetHandler returned no match")
	}
	if _, err := h(context.Background(), "", 0); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if len(log) != 1 || log[0] != "broad" {
		t.Errorf("dispatched to %v, want earlier-registered %q", log, "broad")
	}
}

func TestTryGetHandlerNoMatch(t *testing.T) {
	d := Static([]Binding{
		{Pattern: key.MustParsePattern("Ctrl+Space"), Handler: namedHandler("x", new([]string))},
	})

	// Plain Space must not trigger the Ctrl+Space binding.
	if _, ok := d.TryGetHandler(key.NewRuneEvent(' ', key.ModNone)); ok {
		t.Error("plain Space matched a Ctrl+Space binding")
	}
	if _, ok := d.TryGetHandler(key.NewSpecialEvent(key.KeySpace, key.ModCtrl)); !ok {
		t.Error("Ctrl+Space did not match its own binding")
	}
}

func TestTryGetHandlerEmptyTable(t *testing.T) {
	d := Static(nil)
	if _, ok := d.TryGetHandler(key.NewSpecialEvent(key.KeyEnter, key.ModNone)); ok {
		t.Error("empty table produced a match")
	}
}

func TestTryGetHandlerSkipsNilHandlers(t *testing.T) {
	var log []string
	d := Static([]Binding{
		{Pattern: key.MustParsePattern("Tab")},
		{Pattern: key.MustParsePattern("Tab"), Handler: namedHandler("real", &log)},
	})

	h, ok := d.TryGetHandler(key.NewSpecialEvent(key.KeyTab, key.ModNone))
	if !ok {
		t.Fatal("TryGetHandler returned no match")
	}
	_, _ = h(context.Background(), "", 0)
	if len(log) != 1 || log[0] != "real" {
		t.Errorf("dispatched to %v, want %q", log, "real")
	}
}

func TestEnumerateRunsOnce(t *testing.T) {
	var builds atomic.Int32

	d := New(func() []Binding {
		builds.Add(1)
		return []Binding{
			{Pattern: key.MustParsePattern("Enter"), Handler: namedHandler("enter", new([]string))},
		}
	})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.TryGetHandler(key.NewSpecialEvent(key.KeyEnter, key.ModNone))
		}()
	}
	wg.Wait()

	for i := 0; i < 4; i++ {
		d.TryGetHandler(key.NewSpecialEvent(key.KeyEnter, key.ModNone))
	}

	if got := builds.Load(); got != 1 {
		t.Errorf("enumerate ran %d times, want 1", got)
	}
}

// A handler cancelled mid-flight returns without a usable result; the
// host must not treat it as a submission.
func TestHandlerCancellation(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	h := Handler(func(ctx context.Context, text string, caret int) (callback.Result, error) {
		close(started)
		select {
		case <-ctx.Done():
			return callback.Result{}, ctx.Err()
		case <-release:
			return callback.Submit(text, caret), nil
		}
	})

	d := Static([]Binding{{Pattern: key.MustParsePattern("Ctrl+Enter"), Handler: h}})
	got, ok := d.TryGetHandler(key.NewSpecialEvent(key.KeyEnter, key.ModCtrl))
	if !ok {
		t.Fatal("TryGetHandler returned no match")
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	var res callback.Result
	var err error
	go func() {
		res, err = got(ctx, "text", 2)
		close(done)
	}()

	<-started
	cancel()
	<-done
	close(release)

	if err == nil {
		t.Fatal("cancelled handler returned nil error")
	}
	if res.IsSubmit() {
		t.Error("cancelled handler produced a submission")
	}
}
