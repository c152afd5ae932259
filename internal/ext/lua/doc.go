// Package lua hosts prompt extensions written in Lua.
//
// A script implements any subset of the callback contract by defining
// global functions (highlight, completion_items, should_open_window,
// confirm_commit, format_input, overloads); operations the script does
// not define fall through to the built-in defaults.
//
// gopher-lua's LState is not goroutine-safe, so every Lua operation is
// serialized through a single executor goroutine. Cancellation is
// observed at call boundaries: a cancelled context abandons the wait,
// and the host discards whatever the script eventually returns.
package lua
