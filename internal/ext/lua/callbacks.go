package lua

import (
	"context"
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/promptkit/internal/callback"
	"github.com/dshills/promptkit/internal/key"
	"github.com/dshills/promptkit/internal/textspan"
)

// Script function names an extension may define.
const (
	fnHighlight        = "highlight"
	fnCompletionItems  = "completion_items"
	fnShouldOpenWindow = "should_open_window"
	fnConfirmCommit    = "confirm_commit"
	fnFormatInput      = "format_input"
	fnOverloads        = "overloads"
)

// Callbacks implements the callback contract by delegating to global
// functions in a Lua script. Operations the script does not define fall
// through to the embedded defaults. Caret offsets cross the boundary
// unchanged (zero-based byte offsets).
type Callbacks struct {
	callback.Default

	exec    *executor
	defined map[string]bool
}

var _ callback.Callbacks = (*Callbacks)(nil)

// Load compiles and runs the script at path and returns its callbacks.
// The caller must Close the result.
func Load(path string) (*Callbacks, error) {
	return load(func(L *lua.LState) error { return L.DoFile(path) })
}

// LoadString is Load for in-memory script source.
func LoadString(src string) (*Callbacks, error) {
	return load(func(L *lua.LState) error { return L.DoString(src) })
}

func load(run func(L *lua.LState) error) (*Callbacks, error) {
	L := lua.NewState()
	if err := run(L); err != nil {
		L.Close()
		return nil, fmt.Errorf("loading lua extension: %w", err)
	}

	defined := make(map[string]bool)
	for _, name := range []string{
		fnHighlight, fnCompletionItems, fnShouldOpenWindow,
		fnConfirmCommit, fnFormatInput, fnOverloads,
	} {
		if _, ok := L.GetGlobal(name).(*lua.LFunction); ok {
			defined[name] = true
		}
	}

	c := &Callbacks{
		exec:    newExecutor(L),
		defined: defined,
	}
	go c.exec.run()
	return c, nil
}

// Close shuts down the script's executor and state.
func (c *Callbacks) Close() {
	c.exec.close()
}

// Defines reports whether the script implements the named function.
func (c *Callbacks) Defines(name string) bool {
	return c.defined[name]
}

// callScript invokes a script function with args and hands the returned
// values to collect, all on the executor goroutine.
func (c *Callbacks) callScript(ctx context.Context, name string, nret int, collect func(L *lua.LState), args ...lua.LValue) error {
	return c.exec.execute(ctx, func(L *lua.LState) error {
		L.Push(L.GetGlobal(name))
		for _, a := range args {
			L.Push(a)
		}
		if err := L.PCall(len(args), nret, nil); err != nil {
			return fmt.Errorf("lua %s: %w", name, err)
		}
		collect(L)
		L.Pop(nret)
		return nil
	})
}

// Highlight delegates to the script's highlight(text).
func (c *Callbacks) Highlight(ctx context.Context, text string) ([]callback.FormatSpan, error) {
	if !c.defined[fnHighlight] {
		return c.Default.Highlight(ctx, text)
	}

	var spans []callback.FormatSpan
	err := c.callScript(ctx, fnHighlight, 1, func(L *lua.LState) {
		spans = toFormatSpans(L.Get(-1))
	}, lua.LString(text))
	if err != nil {
		return nil, err
	}
	return spans, nil
}

// CompletionItems delegates to the script's
// completion_items(text, caret, start, length).
func (c *Callbacks) CompletionItems(ctx context.Context, text string, caret int, replace textspan.Span) ([]callback.CompletionItem, error) {
	if !c.defined[fnCompletionItems] {
		return c.Default.CompletionItems(ctx, text, caret, replace)
	}

	var items []callback.CompletionItem
	err := c.callScript(ctx, fnCompletionItems, 1, func(L *lua.LState) {
		items = toCompletionItems(L.Get(-1))
	}, lua.LString(text), lua.LNumber(caret), lua.LNumber(replace.Start), lua.LNumber(replace.Length))
	if err != nil {
		return nil, err
	}
	return items, nil
}

// ShouldOpenWindow delegates to the script's
// should_open_window(text, caret, ch).
func (c *Callbacks) ShouldOpenWindow(ctx context.Context, text string, caret int, press key.Press) (bool, error) {
	if !c.defined[fnShouldOpenWindow] {
		return c.Default.ShouldOpenWindow(ctx, text, caret, press)
	}

	var open bool
	err := c.callScript(ctx, fnShouldOpenWindow, 1, func(L *lua.LState) {
		open = lua.LVAsBool(L.Get(-1))
	}, lua.LString(text), lua.LNumber(caret), lua.LString(pressString(press)))
	if err != nil {
		return false, err
	}
	return open, nil
}

// ConfirmCommit delegates to the script's confirm_commit(text, caret, ch).
func (c *Callbacks) ConfirmCommit(ctx context.Context, text string, caret int, press key.Press) (bool, error) {
	if !c.defined[fnConfirmCommit] {
		return c.Default.ConfirmCommit(ctx, text, caret, press)
	}

	var commit bool
	err := c.callScript(ctx, fnConfirmCommit, 1, func(L *lua.LState) {
		commit = lua.LVAsBool(L.Get(-1))
	}, lua.LString(text), lua.LNumber(caret), lua.LString(pressString(press)))
	if err != nil {
		return false, err
	}
	return commit, nil
}

// FormatInput delegates to the script's format_input(text, caret), which
// returns the new text and caret.
func (c *Callbacks) FormatInput(ctx context.Context, text string, caret int, press key.Press) (string, int, error) {
	if !c.defined[fnFormatInput] {
		return c.Default.FormatInput(ctx, text, caret, press)
	}

	newText, newCaret := text, caret
	err := c.callScript(ctx, fnFormatInput, 2, func(L *lua.LState) {
		if s, ok := L.Get(-2).(lua.LString); ok {
			newText = string(s)
		}
		if n, ok := L.Get(-1).(lua.LNumber); ok {
			newCaret = int(n)
		}
	}, lua.LString(text), lua.LNumber(caret))
	if err != nil {
		return "", 0, err
	}
	return newText, newCaret, nil
}

// Overloads delegates to the script's overloads(text, caret), which
// returns the overload list and the active argument index.
func (c *Callbacks) Overloads(ctx context.Context, text string, caret int) ([]callback.OverloadItem, int, error) {
	if !c.defined[fnOverloads] {
		return c.Default.Overloads(ctx, text, caret)
	}

	var items []callback.OverloadItem
	var active int
	err := c.callScript(ctx, fnOverloads, 2, func(L *lua.LState) {
		items = toOverloads(L.Get(-2))
		if n, ok := L.Get(-1).(lua.LNumber); ok {
			active = int(n)
		}
	}, lua.LString(text), lua.LNumber(caret))
	if err != nil {
		return nil, 0, err
	}
	return items, active, nil
}

// pressString is the character a press produces, or "" for none; scripts
// only care about printable input.
func pressString(press key.Press) string {
	if !press.HasCh() {
		return ""
	}
	return string(press.Ch)
}
