package lua

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/promptkit/internal/callback"
	"github.com/dshills/promptkit/internal/textspan"
)

// tableString reads a string field from a Lua table.
func tableString(t *lua.LTable, field string) string {
	if s, ok := t.RawGetString(field).(lua.LString); ok {
		return string(s)
	}
	return ""
}

// tableInt reads an integer field from a Lua table.
func tableInt(t *lua.LTable, field string) int {
	if n, ok := t.RawGetString(field).(lua.LNumber); ok {
		return int(n)
	}
	return 0
}

// tableBool reads a boolean field from a Lua table.
func tableBool(t *lua.LTable, field string) bool {
	if b, ok := t.RawGetString(field).(lua.LBool); ok {
		return bool(b)
	}
	return false
}

// toFormatSpans converts a Lua array of span tables:
//
//	{ {start=0, length=5, fg="cyan", bold=true}, ... }
func toFormatSpans(lv lua.LValue) []callback.FormatSpan {
	t, ok := lv.(*lua.LTable)
	if !ok {
		return nil
	}

	var spans []callback.FormatSpan
	t.ForEach(func(_, v lua.LValue) {
		entry, ok := v.(*lua.LTable)
		if !ok {
			return
		}
		spans = append(spans, callback.FormatSpan{
			Span: textspan.New(tableInt(entry, "start"), tableInt(entry, "length")),
			Format: callback.Format{
				Foreground: callback.Color(tableString(entry, "fg")),
				Background: callback.Color(tableString(entry, "bg")),
				Bold:       tableBool(entry, "bold"),
				Italic:     tableBool(entry, "italic"),
				Underline:  tableBool(entry, "underline"),
			},
		})
	})
	return spans
}

// completionKinds maps script kind names to CompletionKind.
var completionKinds = map[string]callback.CompletionKind{
	"text":     callback.KindText,
	"keyword":  callback.KindKeyword,
	"function": callback.KindFunction,
	"method":   callback.KindMethod,
	"variable": callback.KindVariable,
	"field":    callback.KindField,
	"module":   callback.KindModule,
	"snippet":  callback.KindSnippet,
	"value":    callback.KindValue,
}

// toCompletionItems converts a Lua array of item tables:
//
//	{ {label="print", insert="print(", kind="function", detail="builtin"}, ... }
//
// A plain string entry is shorthand for {label=...}.
func toCompletionItems(lv lua.LValue) []callback.CompletionItem {
	t, ok := lv.(*lua.LTable)
	if !ok {
		return nil
	}

	var items []callback.CompletionItem
	t.ForEach(func(_, v lua.LValue) {
		switch entry := v.(type) {
		case lua.LString:
			items = append(items, callback.CompletionItem{Label: string(entry)})
		case *lua.LTable:
			items = append(items, callback.CompletionItem{
				Label:         tableString(entry, "label"),
				InsertText:    tableString(entry, "insert"),
				Kind:          completionKinds[tableString(entry, "kind")],
				Detail:        tableString(entry, "detail"),
				Documentation: tableString(entry, "doc"),
				Preselect:     tableBool(entry, "preselect"),
			})
		}
	})
	return items
}

// toOverloads converts a Lua array of overload tables:
//
//	{ {signature="max(a, b)", doc="...", params={"a", "b"}}, ... }
func toOverloads(lv lua.LValue) []callback.OverloadItem {
	t, ok := lv.(*lua.LTable)
	if !ok {
		return nil
	}

	var overloads []callback.OverloadItem
	t.ForEach(func(_, v lua.LValue) {
		entry, ok := v.(*lua.LTable)
		if !ok {
			return
		}
		item := callback.OverloadItem{
			Signature:     tableString(entry, "signature"),
			Documentation: tableString(entry, "doc"),
		}
		if params, ok := entry.RawGetString("params").(*lua.LTable); ok {
			params.ForEach(func(_, p lua.LValue) {
				if s, ok := p.(lua.LString); ok {
					item.Parameters = append(item.Parameters, string(s))
				}
			})
		}
		overloads = append(overloads, item)
	})
	return overloads
}
