package lua

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	lua "github.com/yuin/gopher-lua"
)

// ErrExecutorClosed is returned when using a closed executor.
var ErrExecutorClosed = errors.New("lua executor is closed")

// call is a single Lua operation and its result channel.
type call struct {
	fn     func(L *lua.LState) error
	result chan error
}

// executor serializes all LState operations through one goroutine.
type executor struct {
	L     *lua.LState
	queue chan *call

	closed    atomic.Bool
	closeOnce sync.Once
	done      chan struct{}
}

func newExecutor(L *lua.LState) *executor {
	return &executor{
		L:     L,
		queue: make(chan *call, 16),
		done:  make(chan struct{}),
	}
}

// run processes queued operations until close. It owns the LState: the
// state is only ever touched from this goroutine, and is closed here.
func (e *executor) run() {
	defer e.L.Close()
	for {
		select {
		case <-e.done:
			e.drain()
			return
		case c := <-e.queue:
			err := e.runCall(c)
			c.result <- err
			close(c.result)
		}
	}
}

// runCall executes one operation with panic recovery; a panicking
// script is an extension failure, not a host crash.
func (e *executor) runCall(c *call) (err error) {
	defer func() {
		if r := recover(); r != nil {
			switch v := r.(type) {
			case error:
				err = v
			default:
				err = errors.New("lua extension panic")
			}
		}
	}()
	return c.fn(e.L)
}

// drain fails any queued operations after close.
func (e *executor) drain() {
	for {
		select {
		case c := <-e.queue:
			c.result <- ErrExecutorClosed
			close(c.result)
		default:
			return
		}
	}
}

// execute queues fn and waits for it to finish. If ctx is cancelled
// while waiting, execute returns ctx.Err() immediately; the queued
// operation still runs to completion on the executor goroutine, but its
// result is discarded.
func (e *executor) execute(ctx context.Context, fn func(L *lua.LState) error) error {
	if e.closed.Load() {
		return ErrExecutorClosed
	}

	c := &call{fn: fn, result: make(chan error, 1)}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-e.done:
		return ErrExecutorClosed
	case e.queue <- c:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-c.result:
		return err
	}
}

// close stops the executor. Safe to call more than once.
func (e *executor) close() {
	e.closeOnce.Do(func() {
		e.closed.Store(true)
		close(e.done)
	})
}
